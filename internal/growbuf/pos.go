package growbuf

// Pos names a slot offset inside one storage block.
type Pos struct {
	off int
	id  uint64
}

// Offset returns the element index the position refers to.
func (p Pos) Offset() int { return p.off }

// Next returns the position one element further.
func (p Pos) Next() Pos { return Pos{off: p.off + 1, id: p.id} }

// Prev returns the position one element back.
func (p Pos) Prev() Pos { return Pos{off: p.off - 1, id: p.id} }

// Add returns the position d elements away.
func (p Pos) Add(d int) Pos { return Pos{off: p.off + d, id: p.id} }

// Sub returns the signed element distance p - q.
func (p Pos) Sub(q Pos) int { return p.off - q.off }

// Less reports whether p precedes q.
func (p Pos) Less(q Pos) bool { return p.off < q.off }

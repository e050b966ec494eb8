package replay

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/lzt/list"
	"github.com/joshuapare/lzt/str"
	"github.com/joshuapare/lzt/vector"
)

// NotFound is the Finds entry for a search that found nothing.
const NotFound = -1

// Result is the state of a container after a script ran.
type Result struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Ops      int    `json:"ops"`
	Len      int    `json:"len"`
	Cap      int    `json:"cap,omitempty"`
	Contents string `json:"contents"`
	Finds    []int  `json:"finds,omitempty"`
}

// target is one container under replay.
type target interface {
	apply(op *Op, res *Result) error
	fill(res *Result)
}

// Run replays s on a fresh container. It stops at the first failing
// operation or when ctx is done.
func Run(ctx context.Context, s *Script) (*Result, error) {
	var t target
	switch s.Kind {
	case KindVector:
		t = &vectorTarget{v: vector.New[int]()}
	case KindString:
		t = &stringTarget{s: str.New[byte]()}
	case KindList:
		t = &listTarget{l: list.New[int]()}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, s.Kind)
	}

	res := &Result{Name: s.Name, Kind: s.Kind}
	for i := range s.Ops {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		op := &s.Ops[i]
		if err := t.apply(op, res); err != nil {
			return nil, fmt.Errorf("%s: op %d (%s): %w", s.Name, i, op.Op, err)
		}
		res.Ops++
	}
	t.fill(res)
	return res, nil
}

type vectorTarget struct {
	v *vector.Vector[int]
}

func (t *vectorTarget) apply(op *Op, _ *Result) error {
	v := t.v
	switch op.Op {
	case "push_back":
		return v.PushBack(op.Value)
	case "pop_back":
		v.PopBack()
	case "insert":
		_, err := v.InsertSlice(v.PosAt(op.Index), insertValues(op)...)
		return err
	case "erase":
		_, err := v.EraseRange(v.PosAt(op.Index), v.PosAt(op.Index+op.count(1)))
		return err
	case "append":
		_, err := v.InsertSlice(v.End(), op.Values...)
		return err
	case "clear":
		v.Clear()
	case "reserve":
		return v.Reserve(op.count(0))
	case "resize":
		return v.ResizeWith(op.count(0), op.Value)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, KindVector)
	}
	return nil
}

func (t *vectorTarget) fill(res *Result) {
	res.Len = t.v.Len()
	res.Cap = t.v.Cap()
	res.Contents = joinInts(t.v.Data())
}

type listTarget struct {
	l *list.List[int]
}

func (t *listTarget) apply(op *Op, _ *Result) error {
	l := t.l
	switch op.Op {
	case "push_back":
		return l.PushBack(op.Value)
	case "push_front":
		return l.PushFront(op.Value)
	case "pop_back":
		l.PopBack()
	case "pop_front":
		l.PopFront()
	case "insert":
		p, err := l.PosAt(op.Index)
		if err != nil {
			return err
		}
		for _, x := range insertValues(op) {
			if _, err := l.Insert(p, x); err != nil {
				return err
			}
		}
	case "erase":
		p, err := l.PosAt(op.Index)
		if err != nil {
			return err
		}
		for range op.count(1) {
			if p, err = l.Erase(p); err != nil {
				return err
			}
		}
	case "append":
		for _, x := range op.Values {
			if err := l.PushBack(x); err != nil {
				return err
			}
		}
	case "clear":
		l.Clear()
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, KindList)
	}
	return nil
}

func (t *listTarget) fill(res *Result) {
	res.Len = t.l.Len()
	var vals []int
	for x := range t.l.Values() {
		vals = append(vals, x)
	}
	res.Contents = joinInts(vals)
}

type stringTarget struct {
	s *str.Bytes
}

func (t *stringTarget) apply(op *Op, res *Result) error {
	s := t.s
	switch op.Op {
	case "push_back":
		for i := range len(op.Text) {
			if err := s.PushBack(op.Text[i]); err != nil {
				return err
			}
		}
	case "pop_back":
		s.PopBack()
	case "insert":
		return s.InsertUnits(op.Index, []byte(op.Text)...)
	case "erase":
		return s.Erase(op.Index, op.count(str.NPos))
	case "append":
		return s.AppendString(op.Text)
	case "find":
		res.Finds = append(res.Finds, found(s.FindUnits([]byte(op.Text), op.pos(0))))
	case "rfind":
		res.Finds = append(res.Finds, found(s.RFindUnits([]byte(op.Text), op.pos(str.NPos))))
	case "clear":
		s.Clear()
	case "reserve":
		return s.Reserve(op.count(0))
	case "resize":
		var fill byte
		if op.Text != "" {
			fill = op.Text[0]
		}
		return s.ResizeWith(op.count(0), fill)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupported, KindString)
	}
	return nil
}

func (t *stringTarget) fill(res *Result) {
	res.Len = t.s.Len()
	res.Cap = t.s.Cap()
	res.Contents = t.s.String()
}

// insertValues returns Values, or the single Value when Values is empty.
func insertValues(op *Op) []int {
	if len(op.Values) > 0 {
		return op.Values
	}
	return []int{op.Value}
}

func found(i int) int {
	if i == str.NPos {
		return NotFound
	}
	return i
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

package lzt

import "fmt"

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindOutOfRange ErrKind = iota // index or position outside the valid range
	ErrKindLength                    // requested size exceeds the maximum representable size
	ErrKindStale                     // position invalidated by reallocation or removal
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOutOfRange:
		return "out of range"
	case ErrKindLength:
		return "length error"
	case ErrKindStale:
		return "stale position"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind, so call-site
// errors carrying positional detail still match the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels returned (wrapped with call-site detail) by every container.
var (
	// ErrOutOfRange indicates a checked access or positional operation outside the container.
	ErrOutOfRange = &Error{Kind: ErrKindOutOfRange, Msg: "lzt: out of range"}
	// ErrLength indicates a size beyond MaxLen or an overflowing size computation.
	ErrLength = &Error{Kind: ErrKindLength, Msg: "lzt: maximum size exceeded"}
	// ErrStalePosition indicates a position that no longer names a live slot.
	ErrStalePosition = &Error{Kind: ErrKindStale, Msg: "lzt: stale position"}
)

// OutOfRange builds an ErrOutOfRange error with a formatted message.
func OutOfRange(format string, args ...any) error {
	return &Error{Kind: ErrKindOutOfRange, Msg: fmt.Sprintf(format, args...)}
}

// Length builds an ErrLength error with a formatted message.
func Length(format string, args ...any) error {
	return &Error{Kind: ErrKindLength, Msg: fmt.Sprintf(format, args...)}
}

// Stale builds an ErrStalePosition error with a formatted message.
func Stale(format string, args ...any) error {
	return &Error{Kind: ErrKindStale, Msg: fmt.Sprintf(format, args...)}
}

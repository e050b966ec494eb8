package lzt

import "reflect"

// Destroyer is implemented by element types that need to observe the end of
// their lifetime inside a container.
//
// Destroy is called once per constructed value when the value is removed
// from the container. Values relocated by growth or shifting are moved, not
// destroyed.
type Destroyer interface {
	Destroy()
}

// Destroy runs the Destroyer hook of v when it has one.
func Destroy[T any](v T) {
	if d, ok := any(v).(Destroyer); ok {
		d.Destroy()
	}
}

// CanDestroy reports whether values of type T may carry a Destroyer hook.
// Interface types always report true since the dynamic type decides.
// Containers cache the answer so the per-element check is skipped for plain
// value types.
func CanDestroy[T any]() bool {
	t := reflect.TypeFor[T]()
	if t.Kind() == reflect.Interface {
		return true
	}
	return t.Implements(destroyerType)
}

var destroyerType = reflect.TypeFor[Destroyer]()

package rawmem

import "errors"

// ErrExhausted indicates that an allocation would exceed the allocator's budget.
var ErrExhausted = errors.New("rawmem: allocation budget exhausted")

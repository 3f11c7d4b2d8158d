package substrate

import "errors"

// ErrResourceExhausted is never returned to a caller performing a search
// step; it exists for components that choose to surface exhaustion as an
// error at configuration time. No function in this module returns it
// (BoundedResource.TryReserve reports exhaustion as false). Runtime
// exhaustion during a hot path is always the "disable and continue"
// discipline described in doc.go, not this error.
var ErrResourceExhausted = errors.New("substrate: resource exhausted")

package store

import "errors"

// ErrUnknownEngine indicates an engine name outside the supported set.
// Config validation rejects such names earlier, so seeing this error means
// the store was constructed from an unvalidated value.
var ErrUnknownEngine = errors.New("unknown storage engine")

package repository

import "errors"

// ErrNotFound is returned by single-entity lookups that miss. Batched
// lookups never return it: missing ids are simply absent from the result.
var ErrNotFound = errors.New("not found")

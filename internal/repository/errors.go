package repository

import "errors"

// ErrNotFound is returned by every repository when a record does not
// exist, regardless of backing store.
var ErrNotFound = errors.New("record not found")

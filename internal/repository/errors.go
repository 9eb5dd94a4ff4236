package repository

import "errors"

// ErrNotFound is returned when a lookup or mutation matches no row.
var ErrNotFound = errors.New("not found")

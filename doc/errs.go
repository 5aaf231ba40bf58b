package doc

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrNotArray     = errors.New("not an array")
	ErrNotValue     = errors.New("not a value")
)

package store

import "errors"

var (
	ErrNotFound       = errors.New("record not found")
	ErrShortURLTaken  = errors.New("short URL already taken")
	ErrDuplicateEntry = errors.New("record already exists")
)

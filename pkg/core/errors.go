package core

import "errors"

// Common errors.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrInvalidInput  = errors.New("invalid input")
	ErrLastWorkspace = errors.New("cannot delete the last workspace")
	ErrReadOnly      = errors.New("repository is in read-only mode")
)

package repository

import "errors"

var (
	ErrInvalidStatus   = errors.New("invalid complaint status")
	ErrInvalidCategory = errors.New("invalid complaint category")
	ErrMissingField    = errors.New("missing required field")
	ErrInvalidSession  = errors.New("invalid session")
)

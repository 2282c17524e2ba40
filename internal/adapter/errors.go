package adapter

import "errors"

var (
	ErrUnauthorized      = errors.New("client unauthorized")
	ErrNotFound          = errors.New("record not found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrServerUnavailable = errors.New("server unavailable")
)

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials deliberately covers both "no such user" and
	// "wrong password" so that login responses do not reveal which part
	// of the credential pair was wrong. Inactive accounts map here too.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)

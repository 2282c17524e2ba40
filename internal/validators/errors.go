package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyBrand        = errors.New("brand is required")
	ErrEmptyModel        = errors.New("model is required")
	ErrEmptyType         = errors.New("type is required")
	ErrEmptyFilmFormat   = errors.New("film format is required")
	ErrInvalidYear       = errors.New("year manufactured must be between 1800 and the current year")
	ErrInvalidCondition  = errors.New("invalid condition value")
	ErrNegativePrice     = errors.New("acquisition price cannot be negative")
	ErrNegativeValue     = errors.New("estimated value cannot be negative")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
	ErrInvalidUsername   = errors.New("username must be between 3 and 50 characters")
	ErrInvalidEmail      = errors.New("invalid email address")
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters")
	ErrEmptyIdentifier   = errors.New("username or email is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrEmptyRefreshToken = errors.New("refresh token is required")
)

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// TokenKind discriminates the two token flavours issued by the auth
// service. It is a closed set: any other value fails validation.
type TokenKind string

const (
	// AccessToken is the short-lived credential authorizing individual
	// requests. Only this kind is accepted by the auth middleware.
	AccessToken TokenKind = "access"

	// RefreshToken is the longer-lived credential accepted only by the
	// token refresh operation to mint a new pair.
	RefreshToken TokenKind = "refresh"
)

// Valid reports whether the kind is one of the two known token kinds.
func (k TokenKind) Valid() bool {
	return k == AccessToken || k == RefreshToken
}

// TokenClaims is the JWT claim set carried by every issued token:
// the registered claims (sub, iss, iat, exp) plus the kind discriminator.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Kind marks the token as access or refresh. A token is accepted
	// only where its kind matches the expected use.
	Kind TokenKind `json:"knd"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [TokenClaims] for claim access.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID is a cached, parsed copy of the "sub" (subject) claim converted to
// int64, populated during generation and validation to avoid repeated
// string-to-int parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// TokenClaims provides access to the claim set (sub, exp, iat, iss, knd).
	TokenClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	// Excluded from JSON serialization; it is an internal server-side cache.
	UserID int64 `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject)
// claim, parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenPair is the result of a successful login or refresh: one access
// token and one refresh token, each with its own expiry.
type TokenPair struct {
	Access  Token `json:"-"`
	Refresh Token `json:"-"`
}

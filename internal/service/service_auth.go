package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/camera-collector/internal/config"
	"github.com/MKhiriev/camera-collector/internal/logger"
	"github.com/MKhiriev/camera-collector/internal/store"
	"github.com/MKhiriev/camera-collector/internal/utils"
	"github.com/MKhiriev/camera-collector/internal/validators"
	"github.com/MKhiriev/camera-collector/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator checks the auth request payloads before any work is done.
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// accessTokenTTL controls how long a newly issued access token remains
	// valid; refreshTokenTTL does the same for refresh tokens and is
	// expected to be the longer of the two.
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration

	// bcryptCost is the bcrypt work factor applied when hashing passwords.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:  userRepository,
		validator:       validator,
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		accessTokenTTL:  cfg.AccessTokenTTL,
		refreshTokenTTL: cfg.RefreshTokenTTL,
		bcryptCost:      cfg.BcryptCost,
		logger:          logger,
	}
}

// RegisterUser creates a new user account.
//
// The username and email are normalised to lower case before storage so
// that lookups and uniqueness are case-insensitive. The password is hashed
// with bcrypt at the configured cost; the plain text never reaches the
// repository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - A wrapped ErrInvalidDataProvided if the payload fails validation.
//   - A wrapped storage error if the repository call fails (e.g. username or
//     email already taken — see store.ErrUserAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Str("username", request.Username).Msg("invalid registration data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:     strings.ToLower(strings.TrimSpace(request.Username)),
		Email:        strings.ToLower(strings.TrimSpace(request.Email)),
		PasswordHash: string(passwordHash),
		IsActive:     true,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a fresh token pair.
//
// The identifier may be a username or an email address. The stored bcrypt
// hash is compared in constant time via bcrypt.CompareHashAndPassword, and
// both the "no such user" and "wrong password" outcomes collapse into
// ErrInvalidCredentials so responses do not leak which one occurred.
// Deactivated accounts are rejected the same way.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Error().Err(err).Msg("invalid login data provided")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByLoginOrEmail(ctx, strings.TrimSpace(request.Username))
	if err != nil {
		log.Err(err).Msg("user search by identifier failed")

		// an unknown identifier is a credential failure, but a storage
		// outage must stay distinguishable from one
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.TokenPair{}, ErrInvalidCredentials
		}
		return models.TokenPair{}, fmt.Errorf("user search by identifier failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(request.Password)); err != nil {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.TokenPair{}, ErrInvalidCredentials
	}

	if !foundUser.IsActive {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("login attempt for deactivated account")
		return models.TokenPair{}, ErrInvalidCredentials
	}

	return a.issueTokenPair(ctx, foundUser.UserID)
}

// Refresh exchanges a valid refresh token for a fresh token pair.
//
// Only tokens carrying the refresh kind are accepted; presenting an access
// token here fails with ErrTokenIsExpiredOrInvalid. A new refresh token is
// issued alongside the access token, so clients rotate on every call.
func (a *authService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(refreshToken, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		log.Error().Err(err).Msg("refresh token rejected")
		return models.TokenPair{}, ErrTokenIsExpiredOrInvalid
	}

	if token.Kind != models.RefreshToken {
		log.Error().Str("kind", string(token.Kind)).Msg("wrong token kind presented for refresh")
		return models.TokenPair{}, ErrTokenIsExpiredOrInvalid
	}

	return a.issueTokenPair(ctx, token.UserID)
}

// ValidateAccess validates a raw JWT string as an access token.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim, and expiry, then checks the kind discriminator. Any
// validation failure (expired, wrong issuer, wrong kind, malformed) is
// normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ValidateAccess(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	if token.Kind != models.AccessToken {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// issueTokenPair mints one access and one refresh token for the user.
func (a *authService) issueTokenPair(ctx context.Context, userID int64) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	access, err := utils.GenerateJWTToken(a.tokenIssuer, userID, models.AccessToken, a.accessTokenTTL, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("access token generation failed")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	refresh, err := utils.GenerateJWTToken(a.tokenIssuer, userID, models.RefreshToken, a.refreshTokenTTL, a.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("refresh token generation failed")
		return models.TokenPair{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return models.TokenPair{Access: access, Refresh: refresh}, nil
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/camera-collector/internal/logger"
	"github.com/MKhiriev/camera-collector/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account. Uniqueness of username and
// email is enforced case-insensitively by functional indexes on the lowered
// values; the caller is still expected to pass lower-cased identifiers.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped in [ErrStoreUnavailable].
//   - Scan failure → wrapped in [ErrStoreUnavailable] and [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Email, user.PasswordHash, user.IsActive)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error: user insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrUserAlreadyExists
		default:
			return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	}

	// scan saved user from db
	if err := row.Scan(&user.UserID, &user.Username, &user.Email, &user.PasswordHash, &user.IsActive, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUserAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRow, err)
	}

	return user, nil
}

// FindUserByLoginOrEmail retrieves an account whose username or email
// matches the identifier. The match is case-insensitive on both fields.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped in [ErrStoreUnavailable].
func (r *userRepository) FindUserByLoginOrEmail(ctx context.Context, identifier string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByLoginOrEmail, identifier)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByLoginOrEmail").Msg("error: user lookup failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	// scan found user from db
	if err := row.Scan(&foundUser.UserID, &foundUser.Username, &foundUser.Email, &foundUser.PasswordHash, &foundUser.IsActive, &foundUser.CreatedAt, &foundUser.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByLoginOrEmail").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRow, err)
	}

	return foundUser, nil
}

// UpdatePasswordHash replaces the stored bcrypt hash for the given user and
// bumps updated_at in the same statement.
//
// Error handling:
//   - Zero rows affected → [ErrNoUserWasFound].
//   - Any driver-level error → wrapped in [ErrStoreUnavailable].
func (r *userRepository) UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updatePasswordHash, userID, passwordHash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePasswordHash").Int64("user_id", userID).Msg("error: hash update failed")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}

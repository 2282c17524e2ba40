package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/camera-collector/models"
)

// UserRepository is the credential store: it persists collector accounts
// and their bcrypt password hashes.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields. Returns ErrUserAlreadyExists when the username or email is
	// already taken (case-insensitive).
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLoginOrEmail looks up an account whose username or email
	// matches the identifier, case-insensitively.
	// Returns ErrNoUserWasFound when nothing matches.
	FindUserByLoginOrEmail(ctx context.Context, identifier string) (models.User, error)

	// UpdatePasswordHash replaces the stored hash for the given user and
	// bumps updated_at. Returns ErrNoUserWasFound for an unknown id.
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
}

// CameraRepository persists camera records and answers both filtered
// listing queries and full-collection statistics.
type CameraRepository interface {
	// CreateCamera inserts a fully populated record (id and timestamps
	// already assigned by the caller).
	CreateCamera(ctx context.Context, camera models.Camera) (models.Camera, error)

	// GetCameraByID returns the record or ErrCameraNotFound.
	GetCameraByID(ctx context.Context, id string) (models.Camera, error)

	// ListCameras returns one page of records matching the filter plus the
	// total match count computed with the same WHERE clause.
	ListCameras(ctx context.Context, filter models.CameraFilter) ([]models.Camera, int64, error)

	// UpdateCamera applies the partial update as a single atomic UPDATE
	// statement and returns the merged record.
	// Returns ErrCameraNotFound when the id does not exist.
	UpdateCamera(ctx context.Context, id string, update models.CameraUpdate) (models.Camera, error)

	// DeleteCamera removes the record. The bool reports whether a record
	// existed; deleting a missing id is (false, nil), not an error.
	DeleteCamera(ctx context.Context, id string) (bool, error)

	// CountByBrand groups the whole collection by brand,
	// descending by count, ties broken by brand ascending.
	CountByBrand(ctx context.Context) ([]models.BrandCount, error)

	// CountByType groups the whole collection by camera type,
	// descending by count, ties broken by type ascending.
	CountByType(ctx context.Context) ([]models.TypeCount, error)

	// CountByDecade groups by manufacture decade, ascending.
	// Decades with no cameras are omitted.
	CountByDecade(ctx context.Context) ([]models.DecadeCount, error)

	// ValueSummary sums and averages estimated_value over cameras that
	// have one; cameras without an estimate are excluded entirely.
	ValueSummary(ctx context.Context) (models.ValueSummary, error)
}

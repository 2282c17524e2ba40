package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/camera-collector/models"
)

// AuthService covers the account and token lifecycle: registration, login,
// refresh token rotation, and access token validation for the middleware.
type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error)
	ValidateAccess(ctx context.Context, tokenString string) (models.Token, error)
}

// CameraService covers the camera collection: filtered listing, CRUD, and
// partial updates. All methods operate on the shared collection; record
// ownership is not tracked.
type CameraService interface {
	List(ctx context.Context, filter models.CameraFilter) (models.CameraPage, error)
	Create(ctx context.Context, camera models.Camera) (models.Camera, error)
	GetByID(ctx context.Context, id string) (models.Camera, error)
	Update(ctx context.Context, id string, update models.CameraUpdate) (models.Camera, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// StatsService covers read-only collection aggregates.
type StatsService interface {
	CountByBrand(ctx context.Context) ([]models.BrandCount, error)
	CountByType(ctx context.Context) ([]models.TypeCount, error)
	CountByDecade(ctx context.Context) ([]models.DecadeCount, error)
	ValueSummary(ctx context.Context) (models.ValueSummary, error)
}

package service

import (
	"github.com/MKhiriev/camera-collector/internal/config"
	"github.com/MKhiriev/camera-collector/internal/logger"
	"github.com/MKhiriev/camera-collector/internal/store"
	"github.com/MKhiriev/camera-collector/internal/validators"
)

// Services bundles every service the transport layer depends on.
type Services struct {
	AuthService   AuthService
	CameraService CameraService
	StatsService  StatsService
}

// NewServices wires the service layer over the repositories. One shared
// validator instance serves both auth and camera payloads.
func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewCameraValidator()

	return &Services{
		AuthService:   NewAuthService(repositories.UserRepository, validator, cfg.App, logger),
		CameraService: NewCameraService(repositories.CameraRepository, validator, cfg.App, logger),
		StatsService:  NewStatsService(repositories.CameraRepository, logger),
	}
}

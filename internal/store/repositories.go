package store

import "github.com/MKhiriev/camera-collector/internal/logger"

// Repositories bundles every repository the service layer depends on.
type Repositories struct {
	UserRepository   UserRepository
	CameraRepository CameraRepository
}

// NewRepositories wires all PostgreSQL-backed repositories onto one shared
// database connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:   NewUserRepository(db, logger),
		CameraRepository: NewCameraRepository(db, logger),
	}
}

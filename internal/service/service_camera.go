package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/camera-collector/internal/config"
	"github.com/MKhiriev/camera-collector/internal/logger"
	"github.com/MKhiriev/camera-collector/internal/store"
	"github.com/MKhiriev/camera-collector/internal/utils"
	"github.com/MKhiriev/camera-collector/internal/validators"
	"github.com/MKhiriev/camera-collector/models"
)

// cameraService is the concrete implementation of CameraService. It owns
// the business rules around camera records: payload validation, identifier
// and timestamp assignment, and listing page clamps. Persistence is
// delegated to a CameraRepository.
type cameraService struct {
	cameraRepository store.CameraRepository
	validator        validators.Validator
	uuidGenerator    *utils.UUIDGenerator

	// defaultPageSize applies when a listing request carries no limit;
	// maxPageSize caps whatever the request asks for.
	defaultPageSize int
	maxPageSize     int

	logger *logger.Logger
}

// NewCameraService constructs a CameraService over the given repository,
// with page size limits taken from cfg.
func NewCameraService(cameraRepository store.CameraRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) CameraService {
	return &cameraService{
		cameraRepository: cameraRepository,
		validator:        validator,
		uuidGenerator:    utils.NewUUIDGenerator(),
		defaultPageSize:  cfg.DefaultPageSize,
		maxPageSize:      cfg.MaxPageSize,
		logger:           logger,
	}
}

// List returns one page of cameras matching the filter plus the total match
// count. The page parameters are normalised before hitting the store: a
// negative offset becomes 0, a missing limit becomes the configured
// default, and anything above the configured maximum is clamped down.
// An out-of-range page is not an error; it returns an empty page with the
// correct total.
func (s *cameraService) List(ctx context.Context, filter models.CameraFilter) (models.CameraPage, error) {
	log := logger.FromContext(ctx)

	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.Limit <= 0 {
		filter.Limit = s.defaultPageSize
	}
	if filter.Limit > s.maxPageSize {
		filter.Limit = s.maxPageSize
	}

	cameras, total, err := s.cameraRepository.ListCameras(ctx, filter)
	if err != nil {
		log.Err(err).Msg("camera listing failed")
		return models.CameraPage{}, fmt.Errorf("camera listing failed: %w", err)
	}

	return models.CameraPage{
		Cameras: cameras,
		Total:   total,
		Offset:  filter.Offset,
		Limit:   filter.Limit,
	}, nil
}

// Create validates the record, assigns a fresh UUID identifier and both
// timestamps, and persists it. Client-supplied id and timestamps are
// ignored; the server is authoritative for all three.
func (s *cameraService) Create(ctx context.Context, camera models.Camera) (models.Camera, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, camera); err != nil {
		log.Error().Err(err).Str("brand", camera.Brand).Str("model", camera.Model).Msg("invalid camera data provided")
		return models.Camera{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := time.Now().UTC()
	camera.ID = s.uuidGenerator.Generate()
	camera.CreatedAt = now
	camera.UpdatedAt = now

	if camera.SpecialFeatures == nil {
		camera.SpecialFeatures = []string{}
	}
	if camera.Images == nil {
		camera.Images = []string{}
	}

	created, err := s.cameraRepository.CreateCamera(ctx, camera)
	if err != nil {
		log.Err(err).Str("camera_id", camera.ID).Msg("camera creation ended with error")
		return models.Camera{}, fmt.Errorf("camera creation ended with error: %w", err)
	}

	return created, nil
}

// GetByID retrieves one camera record. Missing records surface as
// store.ErrCameraNotFound for the transport layer to map.
func (s *cameraService) GetByID(ctx context.Context, id string) (models.Camera, error) {
	camera, err := s.cameraRepository.GetCameraByID(ctx, id)
	if err != nil {
		return models.Camera{}, fmt.Errorf("camera lookup failed: %w", err)
	}

	return camera, nil
}

// Update applies a partial mutation to an existing record. The update must
// carry at least one field and every supplied field must be valid; the
// store applies the merge atomically and returns the resulting record.
func (s *cameraService) Update(ctx context.Context, id string, update models.CameraUpdate) (models.Camera, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, update); err != nil {
		log.Error().Err(err).Str("camera_id", id).Msg("invalid camera update provided")
		return models.Camera{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := s.cameraRepository.UpdateCamera(ctx, id, update)
	if err != nil {
		log.Err(err).Str("camera_id", id).Msg("camera update ended with error")
		return models.Camera{}, fmt.Errorf("camera update ended with error: %w", err)
	}

	return updated, nil
}

// Delete removes a record by id. The returned bool reports whether a record
// existed; deleting an already-deleted id is (false, nil), not an error.
func (s *cameraService) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	deleted, err := s.cameraRepository.DeleteCamera(ctx, id)
	if err != nil {
		log.Err(err).Str("camera_id", id).Msg("camera deletion ended with error")
		return false, fmt.Errorf("camera deletion ended with error: %w", err)
	}

	return deleted, nil
}

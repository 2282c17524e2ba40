package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/camera-collector/internal/logger"
	"github.com/MKhiriev/camera-collector/internal/store"
	"github.com/MKhiriev/camera-collector/models"
)

// statsService is the concrete implementation of StatsService. The heavy
// lifting happens in SQL aggregates; this layer only adds logging and
// error wrapping so the transport can map storage failures.
type statsService struct {
	cameraRepository store.CameraRepository
	logger           *logger.Logger
}

// NewStatsService constructs a StatsService over the camera repository.
func NewStatsService(cameraRepository store.CameraRepository, logger *logger.Logger) StatsService {
	return &statsService{
		cameraRepository: cameraRepository,
		logger:           logger,
	}
}

// CountByBrand returns per-brand camera counts, most numerous brand first,
// ties broken alphabetically. An empty collection yields an empty slice.
func (s *statsService) CountByBrand(ctx context.Context) ([]models.BrandCount, error) {
	stats, err := s.cameraRepository.CountByBrand(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("brand statistics failed")
		return nil, fmt.Errorf("brand statistics failed: %w", err)
	}

	return stats, nil
}

// CountByType returns per-type camera counts with the same ordering rules
// as CountByBrand.
func (s *statsService) CountByType(ctx context.Context) ([]models.TypeCount, error) {
	stats, err := s.cameraRepository.CountByType(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("type statistics failed")
		return nil, fmt.Errorf("type statistics failed: %w", err)
	}

	return stats, nil
}

// CountByDecade buckets the collection by manufacturing decade, earliest
// decade first. Empty decades do not appear.
func (s *statsService) CountByDecade(ctx context.Context) ([]models.DecadeCount, error) {
	stats, err := s.cameraRepository.CountByDecade(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("decade statistics failed")
		return nil, fmt.Errorf("decade statistics failed: %w", err)
	}

	return stats, nil
}

// ValueSummary aggregates estimated values across the collection. Cameras
// without an estimate are excluded from the total and from the average's
// denominator; CamerasCounted reports how many contributed.
func (s *statsService) ValueSummary(ctx context.Context) (models.ValueSummary, error) {
	summary, err := s.cameraRepository.ValueSummary(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("value summary failed")
		return models.ValueSummary{}, fmt.Errorf("value summary failed: %w", err)
	}

	return summary, nil
}

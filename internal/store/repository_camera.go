package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/camera-collector/internal/logger"
	"github.com/MKhiriev/camera-collector/models"
)

// stringSlice stores []string columns (special_features, images) as JSONB.
// A nil slice round-trips as an empty JSON array so that records never carry
// SQL NULLs in these columns.
type stringSlice []string

// Value implements [driver.Valuer].
func (s stringSlice) Value() (driver.Value, error) {
	if s == nil {
		s = stringSlice{}
	}
	return json.Marshal(s)
}

// Scan implements [sql.Scanner].
func (s *stringSlice) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*s = stringSlice{}
		return nil
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return fmt.Errorf("cannot scan %T into stringSlice", src)
	}
}

// cameraRepository is the PostgreSQL-backed implementation of
// [CameraRepository]. It executes all camera CRUD, listing, and statistics
// operations directly against the "cameras" table using the embedded [*DB]
// connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (camera id, filter attributes, etc.).
type cameraRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCameraRepository constructs a [CameraRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewCameraRepository(db *DB, logger *logger.Logger) CameraRepository {
	logger.Debug().Msg("creating camera repository")
	return &cameraRepository{
		db:     db,
		logger: logger,
	}
}

// scanCamera reads one row in [cameraColumns] order into a fresh record.
func scanCamera(row interface{ Scan(...any) error }) (models.Camera, error) {
	var camera models.Camera
	var features, images stringSlice

	err := row.Scan(
		&camera.ID,
		&camera.Brand,
		&camera.Model,
		&camera.YearManufactured,
		&camera.Type,
		&camera.FilmFormat,
		&camera.Condition,
		&features,
		&camera.Notes,
		&camera.AcquisitionDate,
		&camera.AcquisitionPrice,
		&camera.EstimatedValue,
		&images,
		&camera.CreatedAt,
		&camera.UpdatedAt,
	)
	if err != nil {
		return models.Camera{}, err
	}

	camera.SpecialFeatures = features
	camera.Images = images
	return camera, nil
}

// CreateCamera inserts a fully populated record. The caller (the camera
// service) assigns the id and both timestamps before persisting.
//
// Error handling:
//   - Any driver-level error → wrapped in [ErrStoreUnavailable].
func (r *cameraRepository) CreateCamera(ctx context.Context, camera models.Camera) (models.Camera, error) {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, createCamera,
		camera.ID,
		camera.Brand,
		camera.Model,
		camera.YearManufactured,
		camera.Type,
		camera.FilmFormat,
		camera.Condition,
		stringSlice(camera.SpecialFeatures),
		camera.Notes,
		camera.AcquisitionDate,
		camera.AcquisitionPrice,
		camera.EstimatedValue,
		stringSlice(camera.Images),
		camera.CreatedAt,
		camera.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "cameraRepository.CreateCamera").
			Str("camera_id", camera.ID).
			Msg("failed to insert camera")
		return models.Camera{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return camera, nil
}

// GetCameraByID retrieves one record by its identifier.
//
// Error handling:
//   - No matching row → [ErrCameraNotFound].
//   - Any other driver-level error → wrapped in [ErrStoreUnavailable].
func (r *cameraRepository) GetCameraByID(ctx context.Context, id string) (models.Camera, error) {
	log := logger.FromContext(ctx)

	camera, err := scanCamera(r.db.QueryRowContext(ctx, getCameraByID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Camera{}, ErrCameraNotFound
		}

		log.Err(err).
			Str("func", "cameraRepository.GetCameraByID").
			Str("camera_id", id).
			Msg("failed to get camera")
		return models.Camera{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return camera, nil
}

// ListCameras returns one page of records matching the filter plus the total
// match count. Both queries are built from the same filter value, so the
// WHERE clause is identical and the total is independent of offset/limit.
func (r *cameraRepository) ListCameras(ctx context.Context, filter models.CameraFilter) ([]models.Camera, int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCamerasQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "cameraRepository.ListCameras").
			Msg("failed to build list query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "cameraRepository.ListCameras").
			Msg("failed to execute list query")
		return nil, 0, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingQuery, err)
	}
	defer rows.Close()

	cameras := make([]models.Camera, 0, filter.Limit)

	for rows.Next() {
		camera, scanErr := scanCamera(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "cameraRepository.ListCameras").
				Msg("failed to scan camera row")
			return nil, 0, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRow, scanErr)
		}

		cameras = append(cameras, camera)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "cameraRepository.ListCameras").
			Msg("error occurred during rows iteration")
		return nil, 0, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRows, rowsErr)
	}

	total, err := r.countCameras(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return cameras, total, nil
}

// countCameras executes the companion COUNT(*) query for a filter.
func (r *cameraRepository) countCameras(ctx context.Context, filter models.CameraFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountCamerasQuery(filter)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		log.Err(err).
			Str("func", "cameraRepository.countCameras").
			Msg("failed to count cameras")
		return 0, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingQuery, err)
	}

	return total, nil
}

// UpdateCamera applies a partial update as one atomic UPDATE … RETURNING
// statement. Fields absent from the update are never touched, so concurrent
// updates to disjoint fields do not clobber each other; updates to the same
// field are last-write-wins at the store's isolation level.
//
// Error handling:
//   - No matching row → [ErrCameraNotFound].
//   - Any other driver-level error → wrapped in [ErrStoreUnavailable].
func (r *cameraRepository) UpdateCamera(ctx context.Context, id string, update models.CameraUpdate) (models.Camera, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCameraQuery(id, update, time.Now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "cameraRepository.UpdateCamera").
			Str("camera_id", id).
			Msg("failed to build update query")
		return models.Camera{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	camera, err := scanCamera(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Camera{}, ErrCameraNotFound
		}

		log.Err(err).
			Str("func", "cameraRepository.UpdateCamera").
			Str("camera_id", id).
			Msg("failed to update camera")
		return models.Camera{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return camera, nil
}

// DeleteCamera removes one record by id. The returned bool reports whether
// a record actually existed; deleting a missing id is (false, nil) so the
// operation is idempotent for callers.
func (r *cameraRepository) DeleteCamera(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCamera, id)
	if err != nil {
		log.Err(err).
			Str("func", "cameraRepository.DeleteCamera").
			Str("camera_id", id).
			Msg("failed to delete camera")
		return false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return affected > 0, nil
}

// CountByBrand groups the whole collection by brand, descending by count
// with ties broken by brand name ascending for deterministic output.
func (r *cameraRepository) CountByBrand(ctx context.Context) ([]models.BrandCount, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, countCamerasByBrand)
	if err != nil {
		log.Err(err).
			Str("func", "cameraRepository.CountByBrand").
			Msg("failed to execute brand stats query")
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingQuery, err)
	}
	defer rows.Close()

	stats := make([]models.BrandCount, 0, 16)
	for rows.Next() {
		var row models.BrandCount
		if scanErr := rows.Scan(&row.Brand, &row.Count); scanErr != nil {
			return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRow, scanErr)
		}
		stats = append(stats, row)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRows, rowsErr)
	}

	return stats, nil
}

// CountByType groups the whole collection by camera type, descending by
// count with ties broken by type name ascending.
func (r *cameraRepository) CountByType(ctx context.Context) ([]models.TypeCount, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, countCamerasByType)
	if err != nil {
		log.Err(err).
			Str("func", "cameraRepository.CountByType").
			Msg("failed to execute type stats query")
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingQuery, err)
	}
	defer rows.Close()

	stats := make([]models.TypeCount, 0, 16)
	for rows.Next() {
		var row models.TypeCount
		if scanErr := rows.Scan(&row.Type, &row.Count); scanErr != nil {
			return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRow, scanErr)
		}
		stats = append(stats, row)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRows, rowsErr)
	}

	return stats, nil
}

// CountByDecade buckets the collection by (year_manufactured / 10) * 10,
// ascending. Decades with no cameras simply do not appear.
func (r *cameraRepository) CountByDecade(ctx context.Context) ([]models.DecadeCount, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, countCamerasByDecade)
	if err != nil {
		log.Err(err).
			Str("func", "cameraRepository.CountByDecade").
			Msg("failed to execute decade stats query")
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingQuery, err)
	}
	defer rows.Close()

	stats := make([]models.DecadeCount, 0, 16)
	for rows.Next() {
		var row models.DecadeCount
		if scanErr := rows.Scan(&row.Decade, &row.Count); scanErr != nil {
			return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRow, scanErr)
		}
		stats = append(stats, row)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRows, rowsErr)
	}

	return stats, nil
}

// ValueSummary aggregates estimated_value over cameras that carry one.
func (r *cameraRepository) ValueSummary(ctx context.Context) (models.ValueSummary, error) {
	log := logger.FromContext(ctx)

	var summary models.ValueSummary
	err := r.db.QueryRowContext(ctx, camerasValueSummary).
		Scan(&summary.TotalValue, &summary.AverageValue, &summary.CamerasCounted)
	if err != nil {
		log.Err(err).
			Str("func", "cameraRepository.ValueSummary").
			Msg("failed to execute value summary query")
		return models.ValueSummary{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingQuery, err)
	}

	return summary, nil
}

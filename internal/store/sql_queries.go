package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/camera-collector/models"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash, is_active)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, username, email, password_hash, is_active, created_at, updated_at;`

	findUserByLoginOrEmail = `SELECT user_id, username, email, password_hash, is_active, created_at, updated_at
    FROM users
    WHERE lower(username) = lower($1) OR lower(email) = lower($1);`

	updatePasswordHash = `UPDATE users
    SET password_hash = $2, updated_at = NOW()
    WHERE user_id = $1;`

	createCamera = `INSERT INTO cameras (
			id,
			brand,
			model,
			year_manufactured,
			type,
			film_format,
			condition,
			special_features,
			notes,
			acquisition_date,
			acquisition_price,
			estimated_value,
			images,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);`

	getCameraByID = `SELECT id, brand, model, year_manufactured, type, film_format, condition,
		special_features, notes, acquisition_date, acquisition_price, estimated_value, images,
		created_at, updated_at
    FROM cameras
    WHERE id = $1;`

	deleteCamera = `DELETE FROM cameras WHERE id = $1;`

	countCamerasByBrand = `SELECT brand, COUNT(*) AS cnt
    FROM cameras
    GROUP BY brand
    ORDER BY cnt DESC, brand ASC;`

	countCamerasByType = `SELECT type, COUNT(*) AS cnt
    FROM cameras
    GROUP BY type
    ORDER BY cnt DESC, type ASC;`

	countCamerasByDecade = `SELECT (year_manufactured / 10) * 10 AS decade, COUNT(*) AS cnt
    FROM cameras
    GROUP BY decade
    ORDER BY decade ASC;`

	// Cameras without an estimated value do not participate at all: they are
	// excluded from the sum and from the average's denominator.
	camerasValueSummary = `SELECT COALESCE(SUM(estimated_value), 0), COALESCE(AVG(estimated_value), 0), COUNT(*)
    FROM cameras
    WHERE estimated_value IS NOT NULL;`
)

// cameraColumns is the canonical column order used by every camera SELECT
// and RETURNING clause; scan order must match.
var cameraColumns = []string{
	"id",
	"brand",
	"model",
	"year_manufactured",
	"type",
	"film_format",
	"condition",
	"special_features",
	"notes",
	"acquisition_date",
	"acquisition_price",
	"estimated_value",
	"images",
	"created_at",
	"updated_at",
}

// conditionRankExpr orders condition values on the poor..mint scale instead
// of alphabetically, matching [models.Condition.Rank].
const conditionRankExpr = "CASE condition" +
	" WHEN 'poor' THEN 1" +
	" WHEN 'fair' THEN 2" +
	" WHEN 'good' THEN 3" +
	" WHEN 'excellent' THEN 4" +
	" WHEN 'mint' THEN 5" +
	" ELSE 0 END"

// cameraSortColumns whitelists the sort keys a listing request may use and
// maps each to its ORDER BY expression. Requests naming any other key
// silently fall back to defaultCameraSort; an unknown sort key is a
// tolerated client typo, not an error.
var cameraSortColumns = map[string]string{
	"brand":             "brand",
	"model":             "model",
	"year":              "year_manufactured",
	"year_manufactured": "year_manufactured",
	"condition":         conditionRankExpr,
	"acquisition_date":  "acquisition_date",
	"estimated_value":   "estimated_value",
	"created_at":        "created_at",
	"updated_at":        "updated_at",
}

const defaultCameraSort = "created_at ASC"

// psql builds all dynamic camera queries with PostgreSQL $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// cameraFilterConjunction translates the filter's optional fields into an
// AND-combined WHERE conjunction. Absent fields contribute nothing, so an
// empty filter matches the whole collection.
func cameraFilterConjunction(filter models.CameraFilter) sq.And {
	conj := sq.And{}

	if filter.Brand != "" {
		conj = append(conj, sq.Eq{"brand": filter.Brand})
	}
	if filter.Type != "" {
		conj = append(conj, sq.Eq{"type": filter.Type})
	}
	if filter.FilmFormat != "" {
		conj = append(conj, sq.Eq{"film_format": filter.FilmFormat})
	}
	if filter.Condition != "" {
		conj = append(conj, sq.Eq{"condition": filter.Condition})
	}
	if filter.YearMin != 0 {
		conj = append(conj, sq.GtOrEq{"year_manufactured": filter.YearMin})
	}
	if filter.YearMax != 0 {
		conj = append(conj, sq.LtOrEq{"year_manufactured": filter.YearMax})
	}

	return conj
}

// cameraOrderBy resolves the filter's sort key and direction against the
// whitelist. Unknown keys fall back to creation time ascending.
func cameraOrderBy(filter models.CameraFilter) string {
	column, ok := cameraSortColumns[filter.SortBy]
	if !ok {
		return defaultCameraSort
	}

	direction := "ASC"
	if strings.EqualFold(filter.SortDir, models.SortDesc) {
		direction = "DESC"
	}

	return column + " " + direction
}

// buildListCamerasQuery produces the paged SELECT for one listing call.
// The caller is expected to have clamped Offset and Limit already.
func buildListCamerasQuery(filter models.CameraFilter) (string, []any, error) {
	builder := psql.
		Select(cameraColumns...).
		From("cameras").
		OrderBy(cameraOrderBy(filter)).
		Offset(uint64(filter.Offset))

	if conj := cameraFilterConjunction(filter); len(conj) > 0 {
		builder = builder.Where(conj)
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}

	return builder.ToSql()
}

// buildCountCamerasQuery produces the total-count query for the same WHERE
// clause as buildListCamerasQuery, ignoring sort and pagination, so the
// reported total can never disagree with the page.
func buildCountCamerasQuery(filter models.CameraFilter) (string, []any, error) {
	builder := psql.
		Select("COUNT(*)").
		From("cameras")

	if conj := cameraFilterConjunction(filter); len(conj) > 0 {
		builder = builder.Where(conj)
	}

	return builder.ToSql()
}

// buildUpdateCameraQuery produces a single UPDATE statement carrying every
// supplied field plus updated_at, with a RETURNING clause for the merged
// record. Executing the merge inside one statement keeps partial updates
// atomic: no read-modify-write round trip exists to race against.
func buildUpdateCameraQuery(id string, update models.CameraUpdate, updatedAt time.Time) (string, []any, error) {
	builder := psql.
		Update("cameras").
		Set("updated_at", updatedAt)

	if update.Brand != nil {
		builder = builder.Set("brand", *update.Brand)
	}
	if update.Model != nil {
		builder = builder.Set("model", *update.Model)
	}
	if update.YearManufactured != nil {
		builder = builder.Set("year_manufactured", *update.YearManufactured)
	}
	if update.Type != nil {
		builder = builder.Set("type", *update.Type)
	}
	if update.FilmFormat != nil {
		builder = builder.Set("film_format", *update.FilmFormat)
	}
	if update.Condition != nil {
		builder = builder.Set("condition", *update.Condition)
	}
	if update.SpecialFeatures != nil {
		builder = builder.Set("special_features", stringSlice(*update.SpecialFeatures))
	}
	if update.Notes != nil {
		builder = builder.Set("notes", *update.Notes)
	}
	if update.AcquisitionDate != nil {
		builder = builder.Set("acquisition_date", *update.AcquisitionDate)
	}
	if update.AcquisitionPrice != nil {
		builder = builder.Set("acquisition_price", *update.AcquisitionPrice)
	}
	if update.EstimatedValue != nil {
		builder = builder.Set("estimated_value", *update.EstimatedValue)
	}
	if update.Images != nil {
		builder = builder.Set("images", stringSlice(*update.Images))
	}

	return builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(cameraColumns, ", ")).
		ToSql()
}

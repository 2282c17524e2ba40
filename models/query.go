package models

// Sort directions accepted by CameraFilter. Anything other than
// SortDesc is treated as ascending.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

// CameraFilter is the declarative description of one listing call:
// zero or more equality/range filters, a sort key with direction, and an
// offset/limit page. The same value drives both the page query and the
// total count, so the two can never disagree on the WHERE clause.
//
// All filter fields are optional; an absent field matches everything.
// Filters combine with logical AND. An unrecognized SortBy falls back to
// creation time ascending rather than failing the request; listing stays
// usable when a client sends a misspelled sort key.
type CameraFilter struct {
	// Brand filters by exact manufacturer name.
	Brand string `json:"brand,omitempty"`

	// Type filters by exact camera type.
	Type string `json:"type,omitempty"`

	// FilmFormat filters by exact film format.
	FilmFormat string `json:"film_format,omitempty"`

	// Condition filters by exact condition value.
	Condition Condition `json:"condition,omitempty"`

	// YearMin/YearMax bound year_manufactured inclusively.
	// Zero means unbounded on that side.
	YearMin int `json:"year_min,omitempty"`
	YearMax int `json:"year_max,omitempty"`

	// SortBy names the camera column to order by; unknown values fall
	// back to created_at. SortDir is "asc" or "desc" (default asc).
	SortBy  string `json:"sort_by,omitempty"`
	SortDir string `json:"sort_dir,omitempty"`

	// Offset is the number of matching records to skip; negative values
	// are treated as 0.
	Offset int `json:"offset,omitempty"`

	// Limit is the maximum page size. Zero means "use the configured
	// default"; the service clamps it to the configured maximum.
	Limit int `json:"limit,omitempty"`
}

// CameraPage is one page of listing results plus the total number of
// records matching the filter, independent of offset/limit.
type CameraPage struct {
	Cameras []Camera `json:"items"`
	Total   int64    `json:"total"`
	Offset  int      `json:"offset"`
	Limit   int      `json:"limit"`
}

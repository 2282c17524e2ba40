package models

import "time"

// Condition is the ordered qualitative state of a camera body,
// from worst to best: poor < fair < good < excellent < mint.
type Condition string

const (
	ConditionPoor      Condition = "poor"
	ConditionFair      Condition = "fair"
	ConditionGood      Condition = "good"
	ConditionExcellent Condition = "excellent"
	ConditionMint      Condition = "mint"
)

// conditionRank orders Condition values for comparison and validation.
// Unknown values rank as zero and are rejected by the validator.
var conditionRank = map[Condition]int{
	ConditionPoor:      1,
	ConditionFair:      2,
	ConditionGood:      3,
	ConditionExcellent: 4,
	ConditionMint:      5,
}

// Rank returns the position of the condition on the poor..mint scale,
// or 0 for an unknown value.
func (c Condition) Rank() int {
	return conditionRank[c]
}

// Valid reports whether the condition is one of the known scale values.
func (c Condition) Valid() bool {
	return conditionRank[c] != 0
}

// Camera represents a single vintage camera record in the collection.
//
// Optional attributes (notes, acquisition data, estimated value) are
// pointers so that "absent" is distinguishable from a zero value; this
// matters both for partial updates and for value statistics, where a
// camera without an estimated value is excluded rather than counted as 0.
type Camera struct {
	// ID is the record identifier, a UUID string assigned at creation.
	ID string `json:"id"`

	// Brand is the manufacturer name, e.g. "Nikon" or "Leica".
	Brand string `json:"brand"`

	// Model is the manufacturer's model designation.
	Model string `json:"model"`

	// YearManufactured is the 4-digit year the camera was produced.
	YearManufactured int `json:"year_manufactured"`

	// Type is the camera type, e.g. "SLR", "TLR", "rangefinder".
	// Free text by design; new types appear without schema changes.
	Type string `json:"type"`

	// FilmFormat is the film size, e.g. "35mm", "120", "4x5".
	FilmFormat string `json:"film_format"`

	// Condition is the qualitative state on the poor..mint scale.
	Condition Condition `json:"condition"`

	// SpecialFeatures lists notable mechanisms or variants.
	SpecialFeatures []string `json:"special_features"`

	// Notes holds optional free-form remarks from the collector.
	Notes *string `json:"notes,omitempty"`

	// AcquisitionDate is the optional date the camera was acquired.
	AcquisitionDate *time.Time `json:"acquisition_date,omitempty"`

	// AcquisitionPrice is the optional price paid, non-negative.
	AcquisitionPrice *float64 `json:"acquisition_price,omitempty"`

	// EstimatedValue is the optional current value estimate, non-negative.
	EstimatedValue *float64 `json:"estimated_value,omitempty"`

	// Images lists references to stored photographs of the camera.
	Images []string `json:"images"`

	// CreatedAt is set once when the record is created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is bumped on every record mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Camera model.
func (c Camera) TableName() string {
	return "cameras"
}

// CameraUpdate carries a partial camera mutation. Nil fields are left
// untouched by Update; non-nil fields replace the stored value. The whole
// merge is applied as one atomic UPDATE statement in the store.
type CameraUpdate struct {
	Brand            *string    `json:"brand,omitempty"`
	Model            *string    `json:"model,omitempty"`
	YearManufactured *int       `json:"year_manufactured,omitempty"`
	Type             *string    `json:"type,omitempty"`
	FilmFormat       *string    `json:"film_format,omitempty"`
	Condition        *Condition `json:"condition,omitempty"`
	SpecialFeatures  *[]string  `json:"special_features,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	AcquisitionDate  *time.Time `json:"acquisition_date,omitempty"`
	AcquisitionPrice *float64   `json:"acquisition_price,omitempty"`
	EstimatedValue   *float64   `json:"estimated_value,omitempty"`
	Images           *[]string  `json:"images,omitempty"`
}

// Empty reports whether the update carries no fields at all.
func (u CameraUpdate) Empty() bool {
	return u.Brand == nil && u.Model == nil && u.YearManufactured == nil &&
		u.Type == nil && u.FilmFormat == nil && u.Condition == nil &&
		u.SpecialFeatures == nil && u.Notes == nil && u.AcquisitionDate == nil &&
		u.AcquisitionPrice == nil && u.EstimatedValue == nil && u.Images == nil
}

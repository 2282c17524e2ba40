// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/camera-collector/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldBrand targets the camera manufacturer name.
	FieldBrand = "brand"

	// FieldModel targets the camera model name.
	FieldModel = "model"

	// FieldYear targets the year of manufacture.
	FieldYear = "year_manufactured"

	// FieldType targets the camera type (SLR, TLR, rangefinder, ...).
	FieldType = "type"

	// FieldFilmFormat targets the film format (35mm, 120, 4x5, ...).
	FieldFilmFormat = "film_format"

	// FieldCondition targets the physical condition grade.
	FieldCondition = "condition"

	// FieldAcquisitionPrice targets the price paid for the camera.
	FieldAcquisitionPrice = "acquisition_price"

	// FieldEstimatedValue targets the current estimated value.
	FieldEstimatedValue = "estimated_value"
)

// minYearManufactured is the earliest accepted year of manufacture.
// Commercial photography does not predate it.
const minYearManufactured = 1800

// CameraValidator validates camera records, partial camera updates, and the
// credential payloads of the auth endpoints.
type CameraValidator struct {
}

// NewCameraValidator returns a stateless [Validator] for camera and
// credential payloads.
func NewCameraValidator() Validator {
	return &CameraValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Camera / *models.Camera
//   - models.CameraUpdate / *models.CameraUpdate
//   - models.RegisterRequest / *models.RegisterRequest
//   - models.LoginRequest / *models.LoginRequest
//   - models.RefreshRequest / *models.RefreshRequest
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// every field of the model is validated.
func (v *CameraValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Camera:
		return v.validateCamera(ctx, value, fields...)
	case *models.Camera:
		return v.validateCamera(ctx, *value, fields...)

	case models.CameraUpdate:
		return v.validateCameraUpdate(ctx, value)
	case *models.CameraUpdate:
		return v.validateCameraUpdate(ctx, *value)

	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value)

	case models.RefreshRequest:
		return v.validateRefreshRequest(ctx, value)
	case *models.RefreshRequest:
		return v.validateRefreshRequest(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

// yearInRange reports whether year falls within the accepted manufacturing
// window. The upper bound moves with the wall clock so next year's records
// become valid without a release.
func yearInRange(year int) bool {
	return year >= minYearManufactured && year <= time.Now().Year()
}

// validateCamera validates a full camera record.
//
// Default validated fields (when none specified): Brand, Model, Year,
// Type, FilmFormat, Condition, AcquisitionPrice, EstimatedValue.
//
// Returns the first encountered validation error or nil.
func (v *CameraValidator) validateCamera(_ context.Context, camera models.Camera, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldBrand, FieldModel, FieldYear, FieldType, FieldFilmFormat, FieldCondition, FieldAcquisitionPrice, FieldEstimatedValue}
	}

	for _, f := range fields {
		switch f {
		case FieldBrand:
			if strings.TrimSpace(camera.Brand) == "" {
				return ErrEmptyBrand
			}
		case FieldModel:
			if strings.TrimSpace(camera.Model) == "" {
				return ErrEmptyModel
			}
		case FieldYear:
			if !yearInRange(camera.YearManufactured) {
				return ErrInvalidYear
			}
		case FieldType:
			if strings.TrimSpace(camera.Type) == "" {
				return ErrEmptyType
			}
		case FieldFilmFormat:
			if strings.TrimSpace(camera.FilmFormat) == "" {
				return ErrEmptyFilmFormat
			}
		case FieldCondition:
			if !camera.Condition.Valid() {
				return ErrInvalidCondition
			}
		case FieldAcquisitionPrice:
			if camera.AcquisitionPrice != nil && *camera.AcquisitionPrice < 0 {
				return ErrNegativePrice
			}
		case FieldEstimatedValue:
			if camera.EstimatedValue != nil && *camera.EstimatedValue < 0 {
				return ErrNegativeValue
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCameraUpdate validates a partial update. The update must carry at
// least one field, and every supplied field must satisfy the same rules as
// on creation. Absent fields are not validated.
func (v *CameraValidator) validateCameraUpdate(_ context.Context, update models.CameraUpdate) error {
	if update.Empty() {
		return ErrNoFieldsToUpdate
	}

	if update.Brand != nil && strings.TrimSpace(*update.Brand) == "" {
		return ErrEmptyBrand
	}
	if update.Model != nil && strings.TrimSpace(*update.Model) == "" {
		return ErrEmptyModel
	}
	if update.YearManufactured != nil && !yearInRange(*update.YearManufactured) {
		return ErrInvalidYear
	}
	if update.Type != nil && strings.TrimSpace(*update.Type) == "" {
		return ErrEmptyType
	}
	if update.FilmFormat != nil && strings.TrimSpace(*update.FilmFormat) == "" {
		return ErrEmptyFilmFormat
	}
	if update.Condition != nil && !update.Condition.Valid() {
		return ErrInvalidCondition
	}
	if update.AcquisitionPrice != nil && *update.AcquisitionPrice < 0 {
		return ErrNegativePrice
	}
	if update.EstimatedValue != nil && *update.EstimatedValue < 0 {
		return ErrNegativeValue
	}

	return nil
}

// validateRegisterRequest validates a registration payload. The email check
// is deliberately shallow; delivery failures are the real validator, this
// only rejects obvious garbage.
func (v *CameraValidator) validateRegisterRequest(_ context.Context, request models.RegisterRequest) error {
	username := strings.TrimSpace(request.Username)
	if len(username) < 3 || len(username) > 50 {
		return ErrInvalidUsername
	}

	email := strings.TrimSpace(request.Email)
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 {
		return ErrInvalidEmail
	}

	if len(request.Password) < 8 {
		return ErrPasswordTooShort
	}

	return nil
}

func (v *CameraValidator) validateLoginRequest(_ context.Context, request models.LoginRequest) error {
	if strings.TrimSpace(request.Username) == "" {
		return ErrEmptyIdentifier
	}
	if request.Password == "" {
		return ErrEmptyPassword
	}
	return nil
}

func (v *CameraValidator) validateRefreshRequest(_ context.Context, request models.RefreshRequest) error {
	if strings.TrimSpace(request.RefreshToken) == "" {
		return ErrEmptyRefreshToken
	}
	return nil
}

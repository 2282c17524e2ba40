// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a transport-layer client for the camera-collector
// server.
//
// The primary abstraction is [ServerAdapter], which decouples callers from
// the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/camera-collector/models"
)

// ServerAdapter defines transport-agnostic communication with the
// camera-collector server. Implementations are responsible for
// serialisation, authentication header management, and mapping
// transport-level errors to the sentinel values defined in this package.
type ServerAdapter interface {
	// SetTokens stores the access and refresh tokens attached to all
	// subsequent authenticated requests. Called automatically after a
	// successful Login or Refresh.
	SetTokens(access, refresh string)

	// AccessToken returns the bearer token currently stored in the adapter,
	// or an empty string if no token has been set yet.
	AccessToken() string

	// Register creates a new collector account.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login authenticates with a username or email plus password, stores the
	// returned token pair, and returns it.
	Login(ctx context.Context, req models.LoginRequest) (models.TokenResponse, error)

	// Refresh exchanges the stored refresh token for a fresh pair and stores
	// the new tokens. Returns [ErrUnauthorized] if the refresh token was
	// rejected.
	Refresh(ctx context.Context) (models.TokenResponse, error)

	// ListCameras fetches one page of cameras matching the filter.
	ListCameras(ctx context.Context, filter models.CameraFilter) (models.CameraPage, error)

	// CreateCamera adds a camera to the collection and returns the stored
	// record with its server-assigned id and timestamps.
	CreateCamera(ctx context.Context, camera models.Camera) (models.Camera, error)

	// GetCamera fetches a single camera by id. Returns [ErrNotFound] if no
	// such record exists.
	GetCamera(ctx context.Context, id string) (models.Camera, error)

	// UpdateCamera applies a partial update and returns the record after the
	// merge. Returns [ErrNotFound] if no such record exists.
	UpdateCamera(ctx context.Context, id string, update models.CameraUpdate) (models.Camera, error)

	// DeleteCamera removes a camera. Deleting an id that is already gone is
	// not an error; the returned bool reports whether this call removed
	// anything.
	DeleteCamera(ctx context.Context, id string) (bool, error)

	// CountByBrand fetches the per-brand camera counts.
	CountByBrand(ctx context.Context) ([]models.BrandCount, error)

	// CountByType fetches the per-type camera counts.
	CountByType(ctx context.Context) ([]models.TypeCount, error)

	// CountByDecade fetches the per-decade camera counts.
	CountByDecade(ctx context.Context) ([]models.DecadeCount, error)

	// ValueSummary fetches the estimated-value aggregate of the collection.
	ValueSummary(ctx context.Context) (models.ValueSummary, error)
}

package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/camera-collector/internal/config"
	"github.com/MKhiriev/camera-collector/internal/handler"
	"github.com/MKhiriev/camera-collector/internal/logger"
)

func TestNewServer_HTTPAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}
	handlers, err := handler.NewHandlers(nil, cfg, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(handlers, nil, cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestNewServer_NoAddress(t *testing.T) {
	handlers := &handler.Handlers{}

	srv, err := NewServer(handlers, nil, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, srv)
}

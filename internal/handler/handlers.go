package handler

import (
	"github.com/MKhiriev/camera-collector/internal/config"
	"github.com/MKhiriev/camera-collector/internal/handler/http"
	"github.com/MKhiriev/camera-collector/internal/logger"
	"github.com/MKhiriev/camera-collector/internal/service"
)

// Handlers is the container for all transport handlers of the application.
// Only HTTP is served today; the container keeps the wiring point stable if
// another transport is ever added.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}

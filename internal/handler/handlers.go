package handler

import (
	"github.com/dsemenko/notesage/internal/config"
	"github.com/dsemenko/notesage/internal/handler/http"
	"github.com/dsemenko/notesage/internal/logger"
	"github.com/dsemenko/notesage/internal/service"
)

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

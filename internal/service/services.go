package service

import (
	"github.com/dsemenko/notesage/internal/ai"
	"github.com/dsemenko/notesage/internal/config"
	"github.com/dsemenko/notesage/internal/logger"
	"github.com/dsemenko/notesage/internal/store"
)

// Services bundles all application services for injection into transport
// handlers.
type Services struct {
	AuthService      AuthService
	NoteService      NoteService
	AssistantService AssistantService
}

// NewServices wires every service to its dependencies.
func NewServices(storages *store.Storages, chatModel ai.ChatModel, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.Auth, logger),
		NoteService:      NewNoteService(storages.NoteRepository, logger),
		AssistantService: NewAssistantService(storages.NoteRepository, chatModel, logger),
	}
}

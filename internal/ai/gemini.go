package ai

import (
	"context"
	"fmt"

	"github.com/dsemenko/notesage/internal/config"
	"github.com/dsemenko/notesage/internal/logger"
	"github.com/dsemenko/notesage/models"
	"google.golang.org/genai"
)

// GeminiModel is the Gemini-backed implementation of [ChatModel].
//
// One configured instance is constructed at process start from explicit
// configuration (API key, model name) and injected into the assistant
// service, so tests can substitute a fake model.
type GeminiModel struct {
	client *genai.Client
	model  string
	logger *logger.Logger
}

// NewGeminiModel constructs a [GeminiModel] from the AI configuration.
func NewGeminiModel(ctx context.Context, cfg config.AI, log *logger.Logger) (*GeminiModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating gemini client: %w", err)
	}

	log.Info().Str("model", cfg.Model).Msg("gemini client created")

	return &GeminiModel{
		client: client,
		model:  cfg.Model,
		logger: log,
	}, nil
}

// StartChat creates a chat session seeded with the given turn history.
func (g *GeminiModel) StartChat(ctx context.Context, history []models.Turn) (ChatSession, error) {
	chat, err := g.client.Chats.Create(ctx, g.model, nil, turnsToContents(history))
	if err != nil {
		return nil, fmt.Errorf("error starting chat session: %w", err)
	}

	return &geminiChatSession{chat: chat}, nil
}

type geminiChatSession struct {
	chat *genai.Chat
}

// SendMessage submits one fresh message to the seeded session and returns the
// model's text reply. An empty reply is returned as-is; the caller decides
// what an empty answer means.
func (s *geminiChatSession) SendMessage(ctx context.Context, text string) (string, error) {
	result, err := s.chat.SendMessage(ctx, genai.Part{Text: text})
	if err != nil {
		return "", fmt.Errorf("error sending message to model: %w", err)
	}

	return result.Text(), nil
}

// turnsToContents maps the transport-agnostic turn history onto the genai
// wire representation. RoleAsking maps to the user role, RoleAnswering to
// the model role.
func turnsToContents(history []models.Turn) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		role := genai.RoleUser
		if turn.Role == models.RoleAnswering {
			role = genai.RoleModel
		}

		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: turn.Text}},
		})
	}

	return contents
}

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dsemenko/notesage/internal/utils"
	"github.com/dsemenko/notesage/models"
	"github.com/go-resty/resty/v2"
)

// HTTPClientConfig configures the REST server adapter.
type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter creates a [ServerAdapter] that talks to the notesage
// server over HTTP/JSON.
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("register parse user id: %w", err)
	}

	h.SetToken(token)
	return models.User{UserID: userID, Login: user.Login}, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

func (h *httpServerAdapter) CreateNote(ctx context.Context, noteID string) (models.Note, error) {
	resp, err := h.authedRequest(ctx).
		Post("/api/notes/" + noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("create note request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Note{}, err
	}

	var note models.Note
	if err = json.Unmarshal(resp.Body(), &note); err != nil {
		return models.Note{}, fmt.Errorf("decode create note response: %w", err)
	}

	return note, nil
}

func (h *httpServerAdapter) UpdateNote(ctx context.Context, noteID string, text string) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.UpdateNoteRequest{Text: text}).
		Put("/api/notes/" + noteID)
	if err != nil {
		return fmt.Errorf("update note request: %w", err)
	}

	// success is a bare 200 with no body
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteNote(ctx context.Context, noteID string) error {
	resp, err := h.authedRequest(ctx).
		Delete("/api/notes/" + noteID)
	if err != nil {
		return fmt.Errorf("delete note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListNotes(ctx context.Context) ([]models.Note, error) {
	resp, err := h.authedRequest(ctx).Get("/api/notes")
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var notes []models.Note
	if err = json.Unmarshal(resp.Body(), &notes); err != nil {
		return nil, fmt.Errorf("decode list notes response: %w", err)
	}

	return notes, nil
}

func (h *httpServerAdapter) Ask(ctx context.Context, questions []string, responses []string) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AskRequest{Questions: questions, Responses: responses}).
		Post("/api/assistant/ask")
	if err != nil {
		return "", fmt.Errorf("ask request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var answer models.AskResponse
	if err = json.Unmarshal(resp.Body(), &answer); err != nil {
		return "", fmt.Errorf("decode ask response: %w", err)
	}

	return answer.Answer, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

package service

import (
	"context"
	"fmt"

	"github.com/dsemenko/notesage/internal/ai"
	"github.com/dsemenko/notesage/internal/logger"
	"github.com/dsemenko/notesage/internal/store"
	"github.com/dsemenko/notesage/models"
)

// Fixed answers returned without (or despite) a model call.
const (
	// NoNotesAnswer is returned when the user has no notes at all; the model
	// is never invoked in that case.
	NoNotesAnswer = "You don't have any notes yet."

	// FallbackAnswer is returned when the model call succeeds but yields an
	// empty text response.
	FallbackAnswer = "A problem has occurred"
)

// assistantService is the concrete implementation of [AssistantService].
//
// Each Ask call is stateless: the caller supplies the entire prior
// back-and-forth and the service reconstructs the conversation from scratch,
// seeding the model with an instruction turn (behavioral rules plus the
// user's notes as grounding context) followed by the strictly alternating
// question/answer history. The newest question is then sent as the live
// message.
type assistantService struct {
	noteRepository store.NoteRepository
	chatModel      ai.ChatModel
	logger         *logger.Logger
}

// NewAssistantService constructs an [AssistantService] over the given note
// repository and chat model. The model is injected rather than constructed
// here so tests can substitute a fake.
func NewAssistantService(noteRepository store.NoteRepository, chatModel ai.ChatModel, logger *logger.Logger) AssistantService {
	return &assistantService{
		noteRepository: noteRepository,
		chatModel:      chatModel,
		logger:         logger,
	}
}

// Ask answers the newest question in questions using only the user's notes.
//
// The responses sequence must contain exactly one answer per prior question:
// len(responses) == len(questions)-1. Violations fail fast with
// [ErrHistoryMismatch] instead of silently producing a non-alternating
// history; an empty questions sequence fails with [ErrNoQuestionsProvided].
//
// When the user has no notes the fixed [NoNotesAnswer] literal is returned
// and the model is never invoked. When the model returns an empty text,
// [FallbackAnswer] is returned instead.
func (s *assistantService) Ask(ctx context.Context, userID int64, questions []string, responses []string) (string, error) {
	log := logger.FromContext(ctx)

	if len(questions) == 0 {
		return "", ErrNoQuestionsProvided
	}
	if len(responses) != len(questions)-1 {
		log.Error().
			Int("questions", len(questions)).
			Int("responses", len(responses)).
			Msg("conversation history mismatch")
		return "", ErrHistoryMismatch
	}

	noteTexts, err := s.noteRepository.GetNoteTexts(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("loading note texts ended with error")
		return "", fmt.Errorf("loading note texts ended with error: %w", err)
	}

	if len(noteTexts) == 0 {
		return NoNotesAnswer, nil
	}

	history := buildHistory(noteTexts, questions, responses)

	session, err := s.chatModel.StartChat(ctx, history)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("starting chat session ended with error")
		return "", fmt.Errorf("starting chat session ended with error: %w", err)
	}

	lastQuestion := questions[len(questions)-1]
	answer, err := session.SendMessage(ctx, lastQuestion)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("model call ended with error")
		return "", fmt.Errorf("model call ended with error: %w", err)
	}

	if answer == "" {
		return FallbackAnswer, nil
	}

	return answer, nil
}

// buildHistory seeds the conversation: one instruction turn carrying the
// rules and the formatted notes, then the prior dialogue as alternating
// asking/answering pairs. The newest question is excluded — it is sent as
// the live message on top of this history.
func buildHistory(noteTexts []string, questions []string, responses []string) []models.Turn {
	history := make([]models.Turn, 0, 1+2*len(responses))
	history = append(history, models.AskingTurn(ai.BuildInstruction(noteTexts)))

	for i, response := range responses {
		history = append(history, models.AskingTurn(questions[i]))
		history = append(history, models.AnsweringTurn(response))
	}

	return history
}

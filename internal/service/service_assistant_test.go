// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dsemenko/notesage/internal/ai"
	"github.com/dsemenko/notesage/internal/logger"
	"github.com/dsemenko/notesage/internal/mock"
	"github.com/dsemenko/notesage/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAssistantSvc(
	t *testing.T,
	ctrl *gomock.Controller,
	repo *mockNoteRepository,
) (*assistantService, *mock.MockChatModel) {
	t.Helper()
	chatModel := mock.NewMockChatModel(ctrl)

	svc := &assistantService{
		noteRepository: repo,
		chatModel:      chatModel,
		logger:         logger.Nop(),
	}

	return svc, chatModel
}

// ─────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────

func TestAssistantService_Ask_NoQuestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAssistantSvc(t, ctrl, &mockNoteRepository{})

	_, err := svc.Ask(context.Background(), 1, nil, nil)

	require.ErrorIs(t, err, ErrNoQuestionsProvided)
}

func TestAssistantService_Ask_HistoryMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAssistantSvc(t, ctrl, &mockNoteRepository{})

	tests := []struct {
		name      string
		questions []string
		responses []string
	}{
		{
			name:      "too many responses",
			questions: []string{"q1"},
			responses: []string{"a1"},
		},
		{
			name:      "too few responses",
			questions: []string{"q1", "q2", "q3"},
			responses: []string{"a1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Ask(context.Background(), 1, tt.questions, tt.responses)
			require.ErrorIs(t, err, ErrHistoryMismatch)
		})
	}
}

// ─────────────────────────────────────────────
// Fixed answers
// ─────────────────────────────────────────────

func TestAssistantService_Ask_NoNotes_ModelNeverCalled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := &mockNoteRepository{
		getNoteTextsFn: func(_ context.Context, userID int64) ([]string, error) {
			assert.Equal(t, int64(1), userID)
			return nil, nil
		},
	}
	svc, _ := newTestAssistantSvc(t, ctrl, repo)
	// no StartChat expectation: touching the model would fail the test

	answer, err := svc.Ask(context.Background(), 1, []string{"what do I have?"}, nil)

	require.NoError(t, err)
	assert.Equal(t, NoNotesAnswer, answer)
}

func TestAssistantService_Ask_EmptyModelReply_Fallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := &mockNoteRepository{
		getNoteTextsFn: func(_ context.Context, _ int64) ([]string, error) {
			return []string{"buy milk"}, nil
		},
	}
	svc, chatModel := newTestAssistantSvc(t, ctrl, repo)

	session := mock.NewMockChatSession(ctrl)
	chatModel.EXPECT().StartChat(gomock.Any(), gomock.Any()).Return(session, nil)
	session.EXPECT().SendMessage(gomock.Any(), "q1").Return("", nil)

	answer, err := svc.Ask(context.Background(), 1, []string{"q1"}, nil)

	require.NoError(t, err)
	assert.Equal(t, FallbackAnswer, answer)
}

// ─────────────────────────────────────────────
// Conversation shape
// ─────────────────────────────────────────────

func TestAssistantService_Ask_HistoryShape(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	noteTexts := []string{"buy milk", "call mom"}
	repo := &mockNoteRepository{
		getNoteTextsFn: func(_ context.Context, _ int64) ([]string, error) {
			return noteTexts, nil
		},
	}
	svc, chatModel := newTestAssistantSvc(t, ctrl, repo)

	session := mock.NewMockChatSession(ctrl)
	chatModel.EXPECT().
		StartChat(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, history []models.Turn) (ai.ChatSession, error) {
			// [instruction, Q1, A1] — the live question is not part of the history
			require.Len(t, history, 3)

			assert.Equal(t, models.RoleAsking, history[0].Role)
			assert.Equal(t, ai.BuildInstruction(noteTexts), history[0].Text)
			assert.Contains(t, history[0].Text, "- buy milk")
			assert.Contains(t, history[0].Text, "- call mom")

			assert.Equal(t, models.AskingTurn("Q1"), history[1])
			assert.Equal(t, models.AnsweringTurn("A1"), history[2])

			return session, nil
		})
	session.EXPECT().SendMessage(gomock.Any(), "Q2").Return("<p>answer</p>", nil)

	answer, err := svc.Ask(context.Background(), 1, []string{"Q1", "Q2"}, []string{"A1"})

	require.NoError(t, err)
	assert.Equal(t, "<p>answer</p>", answer)
}

func TestAssistantService_Ask_SingleQuestion_InstructionOnlyHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := &mockNoteRepository{
		getNoteTextsFn: func(_ context.Context, _ int64) ([]string, error) {
			return []string{"buy milk"}, nil
		},
	}
	svc, chatModel := newTestAssistantSvc(t, ctrl, repo)

	session := mock.NewMockChatSession(ctrl)
	chatModel.EXPECT().
		StartChat(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, history []models.Turn) (ai.ChatSession, error) {
			require.Len(t, history, 1)
			assert.Equal(t, models.RoleAsking, history[0].Role)
			return session, nil
		})
	session.EXPECT().SendMessage(gomock.Any(), "what do I have?").Return("milk", nil)

	answer, err := svc.Ask(context.Background(), 1, []string{"what do I have?"}, nil)

	require.NoError(t, err)
	assert.Equal(t, "milk", answer)
}

// ─────────────────────────────────────────────
// Failure propagation
// ─────────────────────────────────────────────

func TestAssistantService_Ask_NoteLoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wantErr := errors.New("storage error")
	repo := &mockNoteRepository{
		getNoteTextsFn: func(_ context.Context, _ int64) ([]string, error) {
			return nil, wantErr
		},
	}
	svc, _ := newTestAssistantSvc(t, ctrl, repo)

	_, err := svc.Ask(context.Background(), 1, []string{"q1"}, nil)

	require.ErrorIs(t, err, wantErr)
}

func TestAssistantService_Ask_StartChatError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := &mockNoteRepository{
		getNoteTextsFn: func(_ context.Context, _ int64) ([]string, error) {
			return []string{"buy milk"}, nil
		},
	}
	svc, chatModel := newTestAssistantSvc(t, ctrl, repo)

	wantErr := errors.New("model unavailable")
	chatModel.EXPECT().StartChat(gomock.Any(), gomock.Any()).Return(nil, wantErr)

	_, err := svc.Ask(context.Background(), 1, []string{"q1"}, nil)

	require.ErrorIs(t, err, wantErr)
}

func TestAssistantService_Ask_SendMessageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := &mockNoteRepository{
		getNoteTextsFn: func(_ context.Context, _ int64) ([]string, error) {
			return []string{"buy milk"}, nil
		},
	}
	svc, chatModel := newTestAssistantSvc(t, ctrl, repo)

	wantErr := errors.New("model call failed")
	session := mock.NewMockChatSession(ctrl)
	chatModel.EXPECT().StartChat(gomock.Any(), gomock.Any()).Return(session, nil)
	session.EXPECT().SendMessage(gomock.Any(), "q1").Return("", wantErr)

	_, err := svc.Ask(context.Background(), 1, []string{"q1"}, nil)

	require.ErrorIs(t, err, wantErr)
}

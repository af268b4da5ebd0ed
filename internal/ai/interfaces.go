// Package ai wraps the hosted generative model behind a small chat-oriented
// interface so the assistant service can be tested against a fake model.
package ai

import (
	"context"

	"github.com/dsemenko/notesage/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/chat_model_mock.go -package=mock

// ChatSession is one seeded conversation with the model. SendMessage submits
// a fresh message on top of the seeded history and returns the model's text
// reply.
type ChatSession interface {
	SendMessage(ctx context.Context, text string) (string, error)
}

// ChatModel creates chat sessions seeded with a role-tagged turn history.
//
// The client is treated as a black box: no retry, timeout, or rate-limit
// handling is layered on top. Any fault from a model call propagates to the
// caller as an error.
type ChatModel interface {
	StartChat(ctx context.Context, history []models.Turn) (ChatSession, error)
}

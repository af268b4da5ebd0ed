package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrValidationNoNoteID = errors.New("no note id provided")

	// ErrNoQuestionsProvided is returned by Ask when the question sequence is
	// empty: there is no live question to send to the model.
	ErrNoQuestionsProvided = errors.New("no questions provided")

	// ErrHistoryMismatch is returned by Ask when the responses sequence does
	// not contain exactly one answer per prior question
	// (len(responses) != len(questions)-1), which would produce a
	// non-alternating conversation history.
	ErrHistoryMismatch = errors.New("conversation history mismatch")
)

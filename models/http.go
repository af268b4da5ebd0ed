package models

// UpdateNoteRequest is the JSON body of PUT /api/notes/{id}.
type UpdateNoteRequest struct {
	// Text fully replaces the note body; partial edits are a client concern.
	Text string `json:"text"`
}

// AskRequest is the JSON body of POST /api/assistant/ask.
//
// Questions holds every question the user has asked in this conversation, in
// order, including the newest one. Responses holds the model's answers to all
// but the last question, so a valid request always satisfies
// len(Responses) == len(Questions)-1.
type AskRequest struct {
	Questions []string `json:"questions"`
	Responses []string `json:"responses"`
}

// AskResponse is the JSON body returned by POST /api/assistant/ask.
type AskResponse struct {
	Answer string `json:"answer"`
}

// ErrorResponse is the uniform JSON error envelope returned by every
// endpoint. A successful operation never carries this shape; clients detect
// failure from the HTTP status code and read the message from here.
type ErrorResponse struct {
	ErrorMessage string `json:"error_message"`
}

// Package http contains the REST API of the notesage server.
//
// Public surface:
//
//	POST   /api/user/register     — create an account, returns a bearer token
//	POST   /api/user/login        — authenticate, returns a bearer token
//
// Authenticated surface (JWT bearer token required):
//
//	GET    /api/notes             — list the caller's notes, newest first
//	POST   /api/notes/{id}        — create an empty note under a client-supplied id
//	PUT    /api/notes/{id}        — replace the note's text
//	DELETE /api/notes/{id}        — delete the note
//	POST   /api/assistant/ask     — answer a question using the caller's notes
//
// Every failure is reported through the same JSON envelope
// {"error_message": "..."} with a status code derived from the sentinel
// error table in errors_mapper.go.
package http

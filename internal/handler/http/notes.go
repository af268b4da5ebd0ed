package http

import (
	"encoding/json"
	"net/http"

	"github.com/dsemenko/notesage/internal/logger"
	"github.com/dsemenko/notesage/internal/utils"
	"github.com/dsemenko/notesage/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID := chi.URLParam(r, "id")

	note, err := h.services.NoteService.Create(ctx, userID, noteID)
	if err != nil {
		log.Err(err).Str("note_id", noteID).Msg("error creating note")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID := chi.URLParam(r, "id")

	var body models.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.NoteService.Update(ctx, userID, noteID, body.Text); err != nil {
		log.Err(err).Str("note_id", noteID).Msg("error updating note")
		writeMappedError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID := chi.URLParam(r, "id")

	if err := h.services.NoteService.Delete(ctx, userID, noteID); err != nil {
		log.Err(err).Str("note_id", noteID).Msg("error deleting note")
		writeMappedError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.List(ctx, userID)
	if err != nil {
		log.Err(err).Msg("error listing notes")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/dsemenko/notesage/internal/logger"
	"github.com/dsemenko/notesage/internal/utils"
	"github.com/dsemenko/notesage/models"
)

func (h *Handler) ask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var body models.AskRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	answer, err := h.services.AssistantService.Ask(ctx, userID, body.Questions, body.Responses)
	if err != nil {
		log.Err(err).Msg("error asking assistant")
		writeMappedError(w, err)
		return
	}

	utils.WriteJSON(w, models.AskResponse{Answer: answer}, http.StatusOK)
}

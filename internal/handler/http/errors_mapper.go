package http

import (
	"errors"
	"net/http"

	"github.com/dsemenko/notesage/internal/service"
	"github.com/dsemenko/notesage/internal/store"
	"github.com/dsemenko/notesage/internal/utils"
	"github.com/dsemenko/notesage/models"
)

// errorStatusMap is the single place where service and storage sentinel
// errors are translated into HTTP status codes. Every endpoint funnels its
// failures through this table, so clients see one uniform error contract.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrValidationNoNoteID:      http.StatusBadRequest,
	service.ErrNoQuestionsProvided:     http.StatusBadRequest,
	service.ErrHistoryMismatch:         http.StatusBadRequest,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusUnauthorized,
	store.ErrNoteAlreadyExists:  http.StatusConflict,
	store.ErrNoteNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError unwraps err to the mapped sentinel's message when one
// matches, hiding wrapped low-level details from clients. Unmapped errors
// collapse to the generic 500 text.
func messageFromError(err error) string {
	for target := range errorStatusMap {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}

// writeError writes the uniform JSON error envelope with the given message
// and status code.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{ErrorMessage: message}, statusCode)
}

// writeMappedError maps err through the sentinel table and writes the
// uniform JSON error envelope.
func writeMappedError(w http.ResponseWriter, err error) {
	writeError(w, messageFromError(err), statusFromError(err))
}

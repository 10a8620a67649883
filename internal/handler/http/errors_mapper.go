package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-board/internal/service"
	"github.com/MKhiriev/go-task-board/internal/store"
	"github.com/MKhiriev/go-task-board/internal/utils"
	"github.com/MKhiriev/go-task-board/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:        http.StatusBadRequest,
	service.ErrWrongPassword:              http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:    http.StatusUnauthorized,
	service.ErrTokenCreationFailed:        http.StatusInternalServerError,
	service.ErrValidationEmptyEmail:       http.StatusBadRequest,
	service.ErrValidationMalformedEmail:   http.StatusBadRequest,
	service.ErrValidationEmptyPassword:    http.StatusBadRequest,
	service.ErrValidationEmptyName:        http.StatusBadRequest,
	service.ErrValidationEmptyTaskName:    http.StatusBadRequest,
	service.ErrValidationEmptyDescription: http.StatusBadRequest,
	service.ErrValidationNoDueDate:        http.StatusBadRequest,
	service.ErrValidationBadProgress:      http.StatusBadRequest,

	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusUnauthorized,
	store.ErrTaskNotFound:          http.StatusNotFound,
	store.ErrTaskNameAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError sends the uniform JSON error body.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}


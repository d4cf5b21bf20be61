package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"relay/internal/entities"
	"relay/internal/generated/dto"
	"relay/pkg/logger"
)

type errorLogger interface {
	Error(msg string, fields ...logger.Field)
}

func JSON(w http.ResponseWriter, log errorLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(body)
	if err != nil {
		log.Error("encode JSON response", logger.NewField("error", err))
	}
}

// Error пишет ошибку сервиса с кодом из StatusCode. Текст 500 наружу не уходит.
func Error(w http.ResponseWriter, log errorLogger, err error) {
	status := StatusCode(err)
	body := dto.Error{Message: err.Error()}

	var validationErr *entities.ValidationError
	if errors.As(err, &validationErr) {
		violations := validationErr.Violations
		body.Violations = &violations
	}

	if status == http.StatusInternalServerError {
		log.Error("request failed", logger.NewField("error", err))
		body = dto.Error{Message: http.StatusText(status)}
	}

	JSON(w, log, status, body)
}

func BadRequest(w http.ResponseWriter, log errorLogger, message string) {
	JSON(w, log, http.StatusBadRequest, dto.Error{Message: message})
}

func StatusCode(err error) int {
	switch {
	case errors.Is(err, entities.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, entities.ErrSegmentNotFound),
		errors.Is(err, entities.ErrDeliveryNotFound),
		errors.Is(err, entities.ErrHandoverNotFound),
		errors.Is(err, entities.ErrProposalNotFound),
		errors.Is(err, entities.ErrCourierPositionNotFound):
		return http.StatusNotFound
	case errors.Is(err, entities.ErrSegmentNotOpen),
		errors.Is(err, entities.ErrSegmentAlreadyAssigned),
		errors.Is(err, entities.ErrInvalidTransition),
		errors.Is(err, entities.ErrInvalidCancellation):
		return http.StatusConflict
	case errors.Is(err, entities.ErrNotParticipant),
		errors.Is(err, entities.ErrVerificationCodeMismatch):
		return http.StatusForbidden
	case errors.Is(err, entities.ErrGeocode):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

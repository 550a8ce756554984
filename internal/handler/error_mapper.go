package handler

import (
	"errors"
	"log/slog"

	"github.com/forgo/shows/api/internal/model"
	"github.com/forgo/shows/api/internal/service"
)

// MapServiceError converts a service error to an APIError.
// notFoundMessage is reported when the error means the show does not exist;
// each route words that differently.
func MapServiceError(err error, notFoundMessage string) *model.APIError {
	if err == nil {
		return nil
	}

	var verr *service.ValidationError
	switch {
	// ===== Validation Errors → 422 =====
	case errors.As(err, &verr):
		return model.NewValidationError(verr.Error())
	case errors.Is(err, service.ErrValidation):
		return model.NewValidationError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrShowNotFound):
		return model.NewNotFoundError(notFoundMessage)

	// ===== Default → 500 =====
	default:
		slog.Error("unhandled service error", slog.String("error", err.Error()))
		return model.NewInternalError(err.Error())
	}
}

package helpers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"eventbooking/internal/domain"
)

// WriteServiceError maps a service error to its status and error code.
// Server-side failures are logged with the request method and path.
func WriteServiceError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		WriteJSONError(w, http.StatusBadRequest, ErrCodeBadRequest, verr.Error())
	case errors.Is(err, domain.ErrNotFound):
		WriteJSONError(w, http.StatusNotFound, ErrCodeNotFound, notFoundMessage(err))
	case errors.Is(err, domain.ErrDuplicateName):
		WriteJSONError(w, http.StatusConflict, ErrCodeConflict, domain.ErrDuplicateName.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		WriteJSONError(w, http.StatusUnauthorized, ErrCodeUnauthorized, domain.ErrInvalidCredentials.Error())
	case errors.Is(err, domain.ErrPeerUnavailable):
		logger.Error("request failed", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
		WriteJSONError(w, http.StatusBadGateway, ErrCodeBadGateway, err.Error())
	default:
		logger.Error("request failed", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.Error(err))
		WriteJSONError(w, http.StatusInternalServerError, ErrCodeInternalError, err.Error())
	}
}

func notFoundMessage(err error) string {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}
	return err.Error()
}

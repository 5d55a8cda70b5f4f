package handlers

import (
	"errors"
	"net/http"

	"github.com/Skale-Club/xtimator/internal/domain/lifecycle"
	"github.com/Skale-Club/xtimator/internal/infrastructure/logging"
	"github.com/Skale-Club/xtimator/internal/store"
	"github.com/Skale-Club/xtimator/internal/usecase"
	"github.com/Skale-Club/xtimator/internal/usecase/interfaces"
	"github.com/Skale-Club/xtimator/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
)

// mapCommonError covers the errors every use case can return.
func mapCommonError(err error) *pkg.AppError {
	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", ve.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrValidation):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, store.ErrPersistence):
		return pkg.NewDomainError("PERSISTENCE_ERROR", "Could not persist the data", err, http.StatusServiceUnavailable)
	case errors.Is(err, interfaces.ErrShareUnavailable):
		return pkg.NewDomainError("SHARE_UNAVAILABLE", "Share is not available", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logging.LogError(logging.GetLogger(), "http", c.FullPath(), c.Request.Method, appErr.Code, appErr)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

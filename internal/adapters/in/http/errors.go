package http

import (
	"errors"
	"net/http"

	"laundry/internal/core/domain/model/pricing"
	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps a use case error to an HTTP status.
func statusOf(err error) int {
	switch {
	case errors.Is(err, pricing.ErrInvalidWeightRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrPersistence):
		return http.StatusServiceUnavailable
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an Error body. Internal errors are logged and their
// text is not exposed.
func (s *Server) fail(ctx echo.Context, err error) error {
	code := statusOf(err)
	message := err.Error()
	switch {
	case code == http.StatusServiceUnavailable:
		s.logger.WarnContext(ctx.Request().Context(), "Store unavailable",
			"path", ctx.Path(), "error", err)
		message = "store unavailable, retry later"
	case code >= http.StatusInternalServerError:
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			"path", ctx.Path(), "error", err)
		message = http.StatusText(code)
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

package http

import (
	"errors"
	"log/slog"
	"net/http"

	"foodorder/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps domain errors onto HTTP status codes. Not-found is checked
// first: an order with an unreadable status is reported as missing.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrIllegalTransition), errors.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "Request failed",
			slog.String("method", ctx.Request().Method),
			slog.String("route", ctx.Path()),
			slog.Any("error", err))
		message = "Internal server error"
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError translates application errors into HTTP status codes.
// Validation failures map to 400, missing aggregates to 404, lifecycle
// violations to 409 and stock shortages to 422. Anything unrecognized
// is reported as a 500 without the internal message.
func respondError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, order.ErrOrderHasNoLines):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrInvalidTransition):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrInsufficientStock):
		code = http.StatusUnprocessableEntity
		message = err.Error()
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// badRequest reports a malformed request before any command is built.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

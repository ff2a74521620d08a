package api

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/greeter/internal/common"
	"github.com/labstack/echo/v4"
)

// statusFor maps a service error to an HTTP status and client-facing message.
func statusFor(err error) (int, string) {
	var he *echo.HTTPError
	switch {
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest, common.MessageCredentialsRequired
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusConflict, common.MessageUsernameTaken
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized, common.MessageInvalidCredentials
	case errors.As(err, &he) && he.Code < http.StatusInternalServerError:
		return he.Code, http.StatusText(he.Code)
	default:
		return http.StatusInternalServerError, common.MessageInternal
	}
}

func (s *HTTPServer) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code, msg := statusFor(err)
	if code >= http.StatusInternalServerError {
		s.logger.Error(c.Request().Context(), "request failed",
			"error", err,
			"route", c.Path(),
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		)
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, errorResponse{Message: msg})
	}
	if err != nil {
		s.logger.Error(c.Request().Context(), "writing error response", "error", err)
	}
}

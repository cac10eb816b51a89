package middleware

import (
	"errors"
	"log"
	"net/http"

	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/dto"
	"github.com/Eursukkul/booking-microservice/dockmate-service/internal/service"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as {"message": ..., "field": ...}.
// Internal errors are logged and their detail is not sent to the client.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	}

	resp := dto.ErrorResponse{Message: msg}
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		resp.Field = ve.Field
		if he == nil {
			code = http.StatusBadRequest
			resp.Message = ve.Error()
		}
	}

	if code >= http.StatusInternalServerError {
		log.Printf("[HTTP] %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
		resp.Message = http.StatusText(code)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.JSON(code, resp)
}

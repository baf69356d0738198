package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/hexplay/internal/common"
	"github.com/dmitrijs2005/hexplay/internal/logging"
	"github.com/labstack/echo/v4"
)

// errorResponse is the error envelope for every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler renders errors as {"error": "<message>"}. Use-case
// errors get their own status codes; anything unexpected is logged and
// reported as a bare 500.
func NewHTTPErrorHandler(log logging.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log logging.Logger, c echo.Context) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var ve *common.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest, ve.Error()
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, common.ErrVersionConflict):
		return http.StatusConflict, "version conflict"
	case errors.Is(err, common.ErrConflict):
		return http.StatusConflict, "conflict"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timed out"
	case errors.Is(err, context.Canceled):
		log.Debug(c.Request().Context(), "client closed request", "path", c.Path())
		return common.StatusClientClosedRequest, "client closed request"
	}

	log.Error(c.Request().Context(), "unhandled error",
		"method", c.Request().Method,
		"path", c.Path(),
		"error", err.Error(),
	)
	return http.StatusInternalServerError, "internal server error"
}

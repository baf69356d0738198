package httpserver

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/hexplay/internal/common"
	"github.com/dmitrijs2005/hexplay/internal/server/metrics"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *HTTPServer) newRouter() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = newValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(s.logger)

	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		TargetHeader: http.CanonicalHeaderKey(common.RequestIDHeaderName),
	}))
	e.Use(s.observe)
	// Recover runs inside observe and hands the panic back as an error, so
	// panicking requests are counted and logged like any other failure.
	e.Use(echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{DisableErrorHandler: true}))

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	g := e.Group("/api/v1/users")
	g.POST("", s.CreateUser)
	g.GET("", s.ListUsers)
	g.GET("/by-token/:token", s.GetUserByToken)
	g.GET("/by-email/:email", s.GetUserByEmail)
	g.GET("/:id", s.GetUser)
	g.PATCH("/:id", s.UpdateUser)
	g.DELETE("/:id", s.DeleteUser)

	return e
}

// observe logs each request and records its metrics. Errors are rendered
// here so the final status code is known.
func (s *HTTPServer) observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		if err := next(c); err != nil {
			c.Error(err)
		}
		elapsed := time.Since(start)

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		code := c.Response().Status
		metrics.ObserveRequest("http", c.Request().Method+" "+route, metrics.HTTPOutcome(code), elapsed.Seconds())

		args := []any{
			"method", c.Request().Method,
			"path", route,
			"status", code,
			"duration", elapsed,
		}
		if id := c.Response().Header().Get(common.RequestIDHeaderName); id != "" {
			args = append(args, "request_id", id)
		}
		s.logger.Info(c.Request().Context(), "HTTP request", args...)
		return nil
	}
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves the operational endpoints of the scheduled mode.
type Server struct {
	gatherer prometheus.Gatherer
}

// NewServer creates a server exposing metrics collected by gatherer.
func NewServer(gatherer prometheus.Gatherer) *Server {
	return &Server{gatherer: gatherer}
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// RegisterHandlers binds the endpoints to e.
func (s *Server) RegisterHandlers(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
}

// NewEcho returns an echo instance with the server's handlers registered.
func NewEcho(s *Server) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	s.RegisterHandlers(e)
	return e
}

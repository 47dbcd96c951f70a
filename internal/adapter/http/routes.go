package http

import "github.com/labstack/echo/v4"

// RegisterRoutes configures the HTTP routes on the Echo instance.
func RegisterRoutes(e *echo.Echo, h *DashboardHandler) {
	// Health check at the root level for load balancers
	e.GET("/health", h.Health)

	api := e.Group("/api")
	api.GET("/flights", h.GetFlights)
	api.GET("/dashboard", h.GetDashboard)
}

package http

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	middleware "github.com/Zzz-puppy/working-calendar/internal/http/middlewares"
)

// Register wires the API surface. Every route sits behind the owner
// extractor; there is no endpoint that operates without an owner scope.
func Register(e *echo.Echo, h *Handler, logger zerolog.Logger, rateLimiter echo.MiddlewareFunc) {
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler(logger)
	e.Use(echomw.RequestID())
	e.Use(middleware.OwnerExtractor())
	e.Use(rateLimiter)

	e.POST("/tasks", h.CreateTask)
	e.GET("/tasks", h.ListTasks)
	e.GET("/tasks/range", h.ListTasksByRange)
	e.GET("/tasks/:id", h.GetTask)
	e.PATCH("/tasks/:id", h.UpdateTask)
	e.PATCH("/tasks/:id/progress", h.UpdateProgress)
	e.DELETE("/tasks/:id", h.DeleteTask)

	e.GET("/stats/monthly", h.MonthlyStats)
	e.GET("/stats/daily", h.DailyCompletionStats)
}

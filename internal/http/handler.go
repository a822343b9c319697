package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Zzz-puppy/working-calendar/internal/errors"
	dto "github.com/Zzz-puppy/working-calendar/internal/http/dto"
	middleware "github.com/Zzz-puppy/working-calendar/internal/http/middlewares"
	"github.com/Zzz-puppy/working-calendar/internal/http/validators"
	"github.com/Zzz-puppy/working-calendar/internal/services"
)

type Handler struct {
	taskService  *services.TaskService
	statsService *services.StatsService
}

func NewHandler(taskService *services.TaskService, statsService *services.StatsService) *Handler {
	return &Handler{
		taskService:  taskService,
		statsService: statsService,
	}
}

// ownerID returns the opaque owner identifier placed into the context by
// the owner middleware. Routes are registered behind that middleware, so
// the value is always present here.
func ownerID(c echo.Context) string {
	owner, _ := c.Get(middleware.OwnerContextKey).(string)
	return owner
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.CreateTask(c.Request().Context(), ownerID(c), services.CreateTaskInput{
		Date:     req.Date,
		Title:    req.Title,
		Progress: req.Progress,
		Category: req.Category,
		Priority: req.Priority,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return apperrors.NewValidation(apperrors.Field("id", "is required"))
	}

	task, err := h.taskService.GetTask(c.Request().Context(), ownerID(c), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

// ListTasks serves both the unfiltered listing and the single-day listing,
// depending on whether a date query parameter is supplied.
func (h *Handler) ListTasks(c echo.Context) error {
	ctx := c.Request().Context()
	owner := ownerID(c)

	var err error
	var tasks interface{}
	if date := c.QueryParam("date"); date != "" {
		tasks, err = h.taskService.ListTasksByDate(ctx, owner, date)
	} else {
		tasks, err = h.taskService.ListTasks(ctx, owner)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"tasks": tasks})
}

func (h *Handler) ListTasksByRange(c echo.Context) error {
	start := c.QueryParam("start")
	end := c.QueryParam("end")
	if err := validators.ValidateRangeQuery(start, end); err != nil {
		return err
	}

	tasks, err := h.taskService.ListTasksByRange(c.Request().Context(), ownerID(c), start, end)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"tasks": tasks})
}

func (h *Handler) UpdateTask(c echo.Context) error {
	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}

	task, err := h.taskService.UpdateTask(c.Request().Context(), ownerID(c), c.Param("id"), services.UpdateTaskInput{
		Date:     req.Date,
		Title:    req.Title,
		Progress: req.Progress,
		Category: req.Category,
		Priority: req.Priority,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateProgress(c echo.Context) error {
	var req dto.UpdateProgressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateProgressRequest(&req); err != nil {
		return err
	}

	task, err := h.taskService.UpdateProgress(c.Request().Context(), ownerID(c), c.Param("id"), *req.Progress)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c echo.Context) error {
	if err := h.taskService.DeleteTask(c.Request().Context(), ownerID(c), c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"deleted": true})
}

func (h *Handler) MonthlyStats(c echo.Context) error {
	year, month, err := validators.ParseMonthlyStatsQuery(c.QueryParam("year"), c.QueryParam("month"))
	if err != nil {
		return err
	}

	stats, err := h.statsService.Monthly(c.Request().Context(), ownerID(c), year, month)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *Handler) DailyCompletionStats(c echo.Context) error {
	rollups, err := h.statsService.DailyCompletion(c.Request().Context(), ownerID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"daily": rollups})
}

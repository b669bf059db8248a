package tasks

import (
	"errors"
	"net/http"
	"strconv"

	"taskhub/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

func (c *Controller) Create(ctx *gin.Context) {
	var req CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, validationMessage(err))
		return
	}

	task, err := c.service.Create(ctx.Request.Context(), &req)
	if err != nil {
		if msg, ok := enumMessage(err); ok {
			response.Error(ctx, http.StatusBadRequest, msg)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to create task")
		return
	}

	response.Success(ctx, http.StatusCreated, task, "Task created successfully")
}

func (c *Controller) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	task, err := c.service.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			response.Error(ctx, http.StatusNotFound, "Task not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to retrieve task")
		return
	}

	response.Success(ctx, http.StatusOK, task, "Task found")
}

func (c *Controller) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, validationMessage(err))
		return
	}

	task, err := c.service.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			response.Error(ctx, http.StatusNotFound, "Task not found")
			return
		}
		if msg, ok := enumMessage(err); ok {
			response.Error(ctx, http.StatusBadRequest, msg)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to update task")
		return
	}

	response.Success(ctx, http.StatusOK, task, "Task updated successfully")
}

func (c *Controller) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			response.Error(ctx, http.StatusNotFound, "Task not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to delete task")
		return
	}

	response.Success(ctx, http.StatusOK, nil, "Task deleted successfully")
}

func (c *Controller) List(ctx *gin.Context) {
	var query TaskQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	list, err := c.service.List(ctx.Request.Context(), query)
	if err != nil {
		if msg, ok := enumMessage(err); ok {
			response.Error(ctx, http.StatusBadRequest, msg)
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to retrieve tasks")
		return
	}

	response.Success(ctx, http.StatusOK, list, "Tasks retrieved successfully")
}

func parseID(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		response.Error(ctx, http.StatusBadRequest, "Invalid task id")
		return 0, false
	}
	return id, true
}

func enumMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrInvalidStatus):
		return "Status must be one of ToDo, InProgress, Done", true
	case errors.Is(err, ErrInvalidPriority):
		return "Priority level must be one of Low, Medium, High", true
	default:
		return "", false
	}
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Field() {
		case "Title":
			return "Title cannot be empty"
		case "AssignedTo":
			return "Assignee id must be positive"
		}
	}
	return "Validation failed"
}

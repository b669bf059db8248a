package employees

import (
	"errors"
	"net/http"
	"strconv"

	"taskhub/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

func (c *Controller) List(ctx *gin.Context) {
	var query EmployeeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	list, err := c.service.List(ctx.Request.Context(), query)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to retrieve employees")
		return
	}

	response.Success(ctx, http.StatusOK, list, "Employees retrieved successfully")
}

func (c *Controller) Get(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		response.Error(ctx, http.StatusBadRequest, "Invalid employee id")
		return
	}

	employee, err := c.service.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrEmployeeNotFound) {
			response.Error(ctx, http.StatusNotFound, "Employee not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to retrieve employee")
		return
	}

	response.Success(ctx, http.StatusOK, employee, "Employee found")
}

package objects

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
	var req CreateObjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, validationMessage(err))
		return
	}

	object, err := c.service.Create(ctx.Request.Context(), &req)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to create object")
		return
	}

	response.Success(ctx, http.StatusCreated, object, "Object created successfully")
}

func (c *Controller) Get(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	object, err := c.service.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			response.Error(ctx, http.StatusNotFound, "Object not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to retrieve object")
		return
	}

	response.Success(ctx, http.StatusOK, object, "Object found")
}

func (c *Controller) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req UpdateObjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, validationMessage(err))
		return
	}

	object, err := c.service.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			response.Error(ctx, http.StatusNotFound, "Object not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to update object")
		return
	}

	response.Success(ctx, http.StatusOK, object, "Object updated successfully")
}

func (c *Controller) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			response.Error(ctx, http.StatusNotFound, "Object not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to delete object")
		return
	}

	response.Success(ctx, http.StatusOK, nil, "Object deleted successfully")
}

func (c *Controller) List(ctx *gin.Context) {
	var query ObjectQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	list, err := c.service.List(ctx.Request.Context(), query)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to retrieve objects")
		return
	}

	response.Success(ctx, http.StatusOK, list, "Objects retrieved successfully")
}

func (c *Controller) Profile(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	profile, err := c.service.Profile(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrObjectNotFound) {
			response.Error(ctx, http.StatusNotFound, "Object not found")
			return
		}
		response.Error(ctx, http.StatusInternalServerError, "Failed to retrieve profile")
		return
	}

	response.Success(ctx, http.StatusOK, profile, "Profile retrieved")
}

func (c *Controller) Stats(ctx *gin.Context) {
	stats, err := c.service.Stats(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to retrieve statistics")
		return
	}

	response.Success(ctx, http.StatusOK, stats, "Statistics retrieved")
}

func parseID(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || id <= 0 {
		response.Error(ctx, http.StatusBadRequest, "Invalid object id")
		return 0, false
	}
	return id, true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch {
		case fe.Field() == "Name":
			return "Name cannot be empty"
		case fe.Field() == "Email":
			return "Invalid email format"
		case fe.Field() == "Age":
			return "Age must be realistic"
		}
	}
	return "Validation failed"
}

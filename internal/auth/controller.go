package auth

import (
	"errors"
	"net/http"

	"taskhub/internal/shared/middleware"
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

func (c *Controller) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Username and password are required")
		return
	}

	pair, err := c.service.Authenticate(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(ctx, http.StatusBadRequest, "Invalid credentials")
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to create token")
		}
		return
	}

	response.Success(ctx, http.StatusOK, pair, "Login successful")
}

func (c *Controller) Refresh(ctx *gin.Context) {
	var req RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Refresh token is required")
		return
	}

	pair, err := c.service.Refresh(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrTokenExpired):
			response.Error(ctx, http.StatusUnauthorized, "Invalid or expired refresh token")
		case errors.Is(err, ErrPrincipalNotFound):
			response.Error(ctx, http.StatusUnauthorized, "User not found")
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to refresh token")
		}
		return
	}

	response.Success(ctx, http.StatusOK, pair, "Token refreshed successfully")
}

// Me echoes the verified claims attached by the request gate
func (c *Controller) Me(ctx *gin.Context) {
	claims, ok := middleware.CurrentClaims(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "Not authenticated")
		return
	}

	response.Success(ctx, http.StatusOK, gin.H{
		"username": claims.Subject,
		"role":     claims.Role,
	}, "User data retrieved successfully")
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/openday/backend/internal/app/models/dto"
	"github.com/openday/backend/internal/app/services"
	"github.com/openday/backend/internal/middleware"
	"github.com/openday/backend/internal/pkg/auth"
)

// AuthController handles authentication related operations
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register handles user registration
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	user, accessToken, refreshToken, err := c.authService.Register(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AuthResponse{
		Message:      "User registered successfully",
		User:         dto.NewUserResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Login handles user login
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Missing email or password"})
		return
	}

	user, accessToken, refreshToken, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		Message:      "Login successful",
		User:         dto.NewUserResponse(user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

// Refresh exchanges a bearer refresh token for a new access token
func (c *AuthController) Refresh(ctx *gin.Context) {
	tokenString, err := auth.ExtractBearerToken(ctx.GetHeader("Authorization"))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	accessToken, err := c.authService.Refresh(ctx.Request.Context(), tokenString)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}

// Me returns the authenticated user's profile
func (c *AuthController) Me(ctx *gin.Context) {
	userID := middleware.GetUserID(ctx)

	user, err := c.authService.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": dto.NewUserResponse(user)})
}

package auth

import (
	"errors"
	"net/http"

	"buyerleads/internal/pkg/response"
	"buyerleads/internal/pkg/session"
	"buyerleads/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
	cookies session.CookieOptions
}

func NewHandler(service *Service, cookies session.CookieOptions) *Handler {
	return &Handler{
		service: service,
		cookies: cookies,
	}
}

func (h *Handler) RegisterRoutes(v1 *gin.RouterGroup) {
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if fieldErrors := validator.Collect(&req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Registration failed validation", fieldErrors)
		return
	}

	result, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register")
		return
	}

	session.SetCookie(c, result.Identity, h.cookies)
	response.Success(c, http.StatusCreated, gin.H{
		"account": AccountPublic{
			ID:      result.Account.ID,
			Name:    result.Account.Name,
			OwnerID: result.Account.OwnerID,
		},
		"token": result.AccessToken,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if fieldErrors := validator.Collect(&req); fieldErrors != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Login failed validation", fieldErrors)
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Name or password is incorrect")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		return
	}

	session.SetCookie(c, result.Identity, h.cookies)
	response.Success(c, http.StatusOK, gin.H{
		"account": AccountPublic{
			ID:      result.Account.ID,
			Name:    result.Account.Name,
			OwnerID: result.Account.OwnerID,
		},
		"token": result.AccessToken,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	session.ClearCookie(c, h.cookies)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

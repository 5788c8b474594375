package handlers

import (
	"net/http"

	"eventra/middleware"
	"eventra/services/user"
	"eventra/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes registration and login.
type AuthHandler struct {
	Users user.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users user.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req user.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, token, err := h.Users.Register(c.Request.Context(), req)
	if err != nil {
		if err == user.ErrEmailTaken {
			utils.JSONError(c, http.StatusConflict, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "registration failed", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": u, "token": token})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	u, token, err := h.Users.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if err == user.ErrInvalidCredentials {
			utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "login failed", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u, "token": token})
}

// SetFCMToken handles PUT /api/auth/fcm-token. It stores the device token
// push notifications are delivered to.
func (h *AuthHandler) SetFCMToken(c *gin.Context) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "")
		return
	}

	var input struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Users.SetFCMToken(c.Request.Context(), actor.ID, input.Token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update device token", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "device token updated"})
}

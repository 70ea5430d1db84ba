package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-ops/models"
	"restaurant-ops/services"
	"restaurant-ops/utils"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register -> create a user account
func (ac *AuthController) Register(c *gin.Context) {
	var req struct {
		Username string          `json:"username" binding:"required"`
		Email    string          `json:"email" binding:"required,email"`
		Password string          `json:"password" binding:"required"`
		Role     models.UserRole `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := ac.auth.Register(req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		utils.RespondAppError(c, err)
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Username, user.Role)
	utils.RespondJSON(c, http.StatusCreated, "User registered", gin.H{"user_id": user.ID})
}

// Login -> verify credentials, return a JWT
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	user, err := ac.auth.Login(req.Username, req.Password)
	switch {
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondError(c, http.StatusUnauthorized, err)
		return
	case errors.Is(err, services.ErrAccountLocked):
		utils.RespondError(c, http.StatusLocked, err)
		return
	case err != nil:
		utils.RespondAppError(c, err)
		return
	}

	token, err := utils.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("User %s logged in", user.Username)
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Logout -> drop the active session
func (ac *AuthController) Logout(c *gin.Context) {
	userID := c.GetString("userID")
	ac.auth.Logout(userID)
	utils.RespondJSON(c, http.StatusOK, "Logged out", nil)
}

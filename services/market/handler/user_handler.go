package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	model "meme-market/internal/models"
	"meme-market/services/market/helpers"
	"meme-market/utils"
)

type UserServiceInterface interface {
	ListUsers() ([]model.User, error)
	GetUser(userID string) (model.User, error)
	SetCredits(userID string, credits int64) (model.User, error)
}

type UserHandler struct {
	service UserServiceInterface
}

func NewUserHandler(service UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsersHandler handles GET /users
func (h *UserHandler) ListUsersHandler(c *gin.Context) {
	usersList, err := h.service.ListUsers()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListUsersHandler: error listing users", map[string]any{"error": err.Error()})
		return
	}

	if usersList == nil {
		usersList = []model.User{}
	}
	utils.JSONResponse(c, http.StatusOK, usersList, "users retrieved successfully")
}

// GetUserHandler handles GET /users/:id
func (h *UserHandler) GetUserHandler(c *gin.Context) {
	userID := c.Param("id")
	user, err := h.service.GetUser(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetUserHandler: error retrieving user", map[string]any{"user_id": userID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "user retrieved successfully")
}

// UpdateCreditsHandler handles PATCH /users/:id/credits
func (h *UserHandler) UpdateCreditsHandler(c *gin.Context) {
	userID := c.Param("id")

	var req helpers.UpdateCreditsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateCreditsHandler", err)
		return
	}

	user, err := h.service.SetCredits(userID, *req.Credits)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("UpdateCreditsHandler: failed to update credits", map[string]any{
			"handler": "UpdateCreditsHandler",
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, user, "credits updated successfully")
	helpers.LogSuccess("UpdateCreditsHandler", "credits updated successfully", map[string]any{
		"user_id": user.UserID,
		"credits": user.Credits,
	})
}

package handlers

import (
	"errors"
	"net/http"

	"powerbank-rental/api/logger"
	"powerbank-rental/api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type registerUserRequest struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// HandleRegisterUser is idempotent: registering an existing userId is a
// no-op that does not update name or email.
func (a *API) HandleRegisterUser(c *gin.Context) {
	var req registerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.UserID == "" || req.Name == "" || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId, name and email are required"})
		return
	}

	user := &models.User{
		UserID: req.UserID,
		Name:   req.Name,
		Email:  req.Email,
		Role:   models.UserRoleUser,
	}

	created, err := a.Users.Insert(c.Request.Context(), user)
	if err != nil {
		logger.Get().Error("failed to register user",
			zap.String("user_id", req.UserID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error registering user"})
		return
	}

	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "User already registered"})
		return
	}

	logger.Get().Info("user registered", zap.String("user_id", req.UserID))
	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
}

func (a *API) HandleGetUser(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	user, err := a.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		logger.Get().Error("failed to fetch user",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (a *API) HandleCheckBan(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId is required"})
		return
	}

	user, err := a.Users.FindByID(c.Request.Context(), userID)
	if err != nil {
		logger.Get().Error("failed to fetch user",
			zap.String("user_id", userID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking ban status"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"isBanned": user.IsBanned})
}

func (a *API) HandleListUsers(c *gin.Context) {
	users, err := a.Users.FindByRole(c.Request.Context(), models.UserRoleUser)
	if err != nil {
		logger.Get().Error("failed to list users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching users"})
		return
	}

	public := make([]models.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}
	c.JSON(http.StatusOK, public)
}

type userStatusRequest struct {
	UserID string `json:"userId"`
	Action string `json:"action"`
}

// HandleUserStatus is the manual admin ban/unban. Unban clears only the
// flag; the reminder counter stays, so a still-overdue user is re-banned on
// the next sweep tick.
func (a *API) HandleUserStatus(c *gin.Context) {
	var req userStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId and action are required"})
		return
	}

	var banned bool
	switch req.Action {
	case "ban":
		banned = true
	case "unban":
		banned = false
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "action must be 'ban' or 'unban'"})
		return
	}

	err := a.Users.SetBanned(c.Request.Context(), req.UserID, banned)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		logger.Get().Error("failed to update ban status",
			zap.String("user_id", req.UserID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating user status"})
		return
	}

	logger.Get().Info("user ban status updated",
		zap.String("user_id", req.UserID),
		zap.Bool("banned", banned))
	c.JSON(http.StatusOK, gin.H{"message": "User status updated"})
}

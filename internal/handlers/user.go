package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/quizdeck-backend/internal/services"
	"github.com/yungbote/quizdeck-backend/internal/types"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// POST /users
// body: { "user_id": "...", "topic_scores": [{"algebra": 7.5}] }
func (uh *UserHandler) CreateUser(c *gin.Context) {
	var req struct {
		UserID      string            `json:"user_id" binding:"required"`
		TopicScores types.TopicScores `json:"topic_scores"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err.Error())
		return
	}

	user, err := uh.userService.Create(c.Request.Context(), req.UserID, req.TopicScores)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, user)
}

// GET /users
func (uh *UserHandler) ListUsers(c *gin.Context) {
	users, err := uh.userService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, users)
}

// GET /users/:user_id
func (uh *UserHandler) GetUser(c *gin.Context) {
	user, err := uh.userService.Get(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, user)
}

// DELETE /users/:user_id
func (uh *UserHandler) DeleteUser(c *gin.Context) {
	if err := uh.userService.Delete(c.Request.Context(), c.Param("user_id")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "User deleted")
}

// PUT /users/:user_id/scores
// body: { "topic_scores": [{"algebra": 7.5}] } — full replace, no merge.
func (uh *UserHandler) ReplaceScores(c *gin.Context) {
	var req struct {
		TopicScores types.TopicScores `json:"topic_scores" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err.Error())
		return
	}

	user, err := uh.userService.ReplaceScores(c.Request.Context(), c.Param("user_id"), req.TopicScores)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, user)
}

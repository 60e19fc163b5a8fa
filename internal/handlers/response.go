package handlers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"github.com/yungbote/quizdeck-backend/internal/apierr"
)

// envelope is the uniform response wrapper every endpoint emits.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, envelope{Success: true, Message: message})
}

// respondError maps the error to its HTTP status (unknown errors become 500).
func respondError(c *gin.Context, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(apierr.StatusOf(err), envelope{Success: false, Error: msg})
}

func respondValidation(c *gin.Context, detail string) {
	c.JSON(http.StatusBadRequest, envelope{Success: false, Error: detail})
}

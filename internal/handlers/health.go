package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /
func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello, World!"})
}

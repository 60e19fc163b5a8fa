package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/quizdeck-backend/internal/logger"
	"github.com/yungbote/quizdeck-backend/internal/services"
)

type ParseHandler struct {
	log *logger.Logger
}

func NewParseHandler(log *logger.Logger) *ParseHandler {
	return &ParseHandler{log: log.With("handler", "ParseHandler")}
}

// POST /parse_file (multipart/form-data, field "file")
//
// Parse failures report HTTP 200 with success:false. The shipped client
// branches on the embedded flag, not the status code.
func (ph *ParseHandler) ParseFile(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusOK, envelope{Success: false, Error: "missing file"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusOK, envelope{Success: false, Error: err.Error()})
		return
	}
	defer f.Close()

	raw, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusOK, envelope{Success: false, Error: err.Error()})
		return
	}

	text, err := services.ExtractText(fh.Filename, raw)
	if err != nil {
		ph.log.Warn("File parse failed", "filename", fh.Filename, "error", err)
		c.JSON(http.StatusOK, envelope{Success: false, Error: err.Error()})
		return
	}

	respondData(c, gin.H{"text_content": text})
}

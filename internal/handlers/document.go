package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/quizdeck-backend/internal/apierr"
	"github.com/yungbote/quizdeck-backend/internal/services"
	"github.com/yungbote/quizdeck-backend/internal/types"
)

type DocumentHandler struct {
	documentService *services.DocumentService
}

func NewDocumentHandler(documentService *services.DocumentService) *DocumentHandler {
	return &DocumentHandler{documentService: documentService}
}

// documentID parses the :id param. A malformed id is indistinguishable from
// a missing document to the caller.
func documentID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apierr.NotFound(fmt.Sprintf("Document %s not found", c.Param("id")))
	}
	return id, nil
}

// POST /documents
func (dh *DocumentHandler) CreateDocument(c *gin.Context) {
	var req struct {
		UserID          string            `json:"user_id" binding:"required"`
		Title           string            `json:"title"`
		DocumentContent string            `json:"document_content" binding:"required"`
		TopicScores     types.TopicScores `json:"topic_scores"`
		Questions       []string          `json:"questions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err.Error())
		return
	}

	doc, err := dh.documentService.Create(c.Request.Context(), services.CreateDocumentInput{
		UserID:          req.UserID,
		Title:           req.Title,
		DocumentContent: req.DocumentContent,
		TopicScores:     req.TopicScores,
		Questions:       req.Questions,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, doc)
}

// GET /documents?user_id=
func (dh *DocumentHandler) ListDocuments(c *gin.Context) {
	docs, err := dh.documentService.List(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, docs)
}

// GET /documents/:id
func (dh *DocumentHandler) GetDocument(c *gin.Context) {
	id, err := documentID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	doc, err := dh.documentService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, doc)
}

// PUT /documents/:id/scores
// body: { "topic_scores": [{"algebra": 7.5}] } — merged, incoming wins.
func (dh *DocumentHandler) MergeScores(c *gin.Context) {
	id, err := documentID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req struct {
		TopicScores types.TopicScores `json:"topic_scores" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err.Error())
		return
	}

	doc, err := dh.documentService.MergeScores(c.Request.Context(), id, req.TopicScores)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, doc)
}

// PUT /documents/:id/questions
// body: { "questions": ["..."] } — appended, history keeps the newest 10.
func (dh *DocumentHandler) AppendQuestions(c *gin.Context) {
	id, err := documentID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var req struct {
		Questions []string `json:"questions" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err.Error())
		return
	}

	doc, err := dh.documentService.AppendQuestions(c.Request.Context(), id, req.Questions)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, doc)
}

// DELETE /documents/:id
func (dh *DocumentHandler) DeleteDocument(c *gin.Context) {
	id, err := documentID(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := dh.documentService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Document deleted")
}

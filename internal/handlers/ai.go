package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/quizdeck-backend/internal/services"
)

type AIHandler struct {
	aiService *services.AIService
}

func NewAIHandler(aiService *services.AIService) *AIHandler {
	return &AIHandler{aiService: aiService}
}

// POST /ai/extract-topics
func (ah *AIHandler) ExtractTopics(c *gin.Context) {
	var req struct {
		TextContent   string   `json:"text_content" binding:"required"`
		CurrentTopics []string `json:"current_topics"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err.Error())
		return
	}

	topics, err := ah.aiService.ExtractTopics(c.Request.Context(), req.TextContent, req.CurrentTopics)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, gin.H{"topics": topics})
}

// POST /ai/generate-quiz
func (ah *AIHandler) GenerateQuizQuestion(c *gin.Context) {
	var req struct {
		TextContent       string   `json:"text_content" binding:"required"`
		Topic             string   `json:"topic" binding:"required"`
		PreviousQuestions []string `json:"previous_questions"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err.Error())
		return
	}

	question, err := ah.aiService.GenerateQuizQuestion(c.Request.Context(), req.TextContent, req.Topic, req.PreviousQuestions)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, question)
}

// POST /ai/generate-document-name
func (ah *AIHandler) GenerateDocumentName(c *gin.Context) {
	var req struct {
		TextContent string `json:"text_content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidation(c, err.Error())
		return
	}

	title, err := ah.aiService.GenerateDocumentName(c.Request.Context(), req.TextContent)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, gin.H{"title": title})
}

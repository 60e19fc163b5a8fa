package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/quizdeck-backend/internal/handlers"
)

type RouterConfig struct {
	ParseHandler    *handlers.ParseHandler
	UserHandler     *handlers.UserHandler
	DocumentHandler *handlers.DocumentHandler
	AIHandler       *handlers.AIHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Authorization", "Content-Type", "X-Requested-With"},
	}))

	router.GET("/", handlers.Root)

	// Files
	router.POST("/parse_file", cfg.ParseHandler.ParseFile)

	// Users
	router.POST("/users", cfg.UserHandler.CreateUser)
	router.GET("/users", cfg.UserHandler.ListUsers)
	router.GET("/users/:user_id", cfg.UserHandler.GetUser)
	router.DELETE("/users/:user_id", cfg.UserHandler.DeleteUser)
	router.PUT("/users/:user_id/scores", cfg.UserHandler.ReplaceScores)

	// Documents
	router.POST("/documents", cfg.DocumentHandler.CreateDocument)
	router.GET("/documents", cfg.DocumentHandler.ListDocuments)
	router.GET("/documents/:id", cfg.DocumentHandler.GetDocument)
	router.PUT("/documents/:id/scores", cfg.DocumentHandler.MergeScores)
	router.PUT("/documents/:id/questions", cfg.DocumentHandler.AppendQuestions)
	router.DELETE("/documents/:id", cfg.DocumentHandler.DeleteDocument)

	// AI
	router.POST("/ai/extract-topics", cfg.AIHandler.ExtractTopics)
	router.POST("/ai/generate-quiz", cfg.AIHandler.GenerateQuizQuestion)
	router.POST("/ai/generate-document-name", cfg.AIHandler.GenerateDocumentName)

	return router
}

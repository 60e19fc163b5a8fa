package main

import (
	"fmt"
	"os"

	"github.com/yungbote/quizdeck-backend/internal/clients/openai"
	"github.com/yungbote/quizdeck-backend/internal/db"
	"github.com/yungbote/quizdeck-backend/internal/handlers"
	"github.com/yungbote/quizdeck-backend/internal/logger"
	"github.com/yungbote/quizdeck-backend/internal/repos"
	"github.com/yungbote/quizdeck-backend/internal/server"
	"github.com/yungbote/quizdeck-backend/internal/services"
	"github.com/yungbote/quizdeck-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	log.Info("Loading environment variables from main...")
	port := utils.GetEnv("PORT", "8000", log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Fatal("Postgres init failed", "error", err)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Fatal("Postgres auto migration failed", "error", err)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	documentRepo := repos.NewDocumentRepo(thePG, log)

	// OpenAI
	aiClient, err := openai.NewClient(log)
	if err != nil {
		log.Warn("OpenAI client init failed, AI routes will be unavailable", "error", err)
	}

	// Services
	log.Info("Setting up Services from main...")
	userService := services.NewUserService(thePG, log, userRepo)
	documentService := services.NewDocumentService(thePG, log, documentRepo)
	aiService := services.NewAIService(log, aiClient)

	// Handlers
	log.Info("Setting up Handlers from main...")
	parseHandler := handlers.NewParseHandler(log)
	userHandler := handlers.NewUserHandler(userService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	aiHandler := handlers.NewAIHandler(aiService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		ParseHandler:    parseHandler,
		UserHandler:     userHandler,
		DocumentHandler: documentHandler,
		AIHandler:       aiHandler,
	})

	log.Info("Starting server", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatal("Server exited", "error", err)
	}
}

package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/must-coursehub/course-advisor/pkg/logger"
)

// @title Course Advisor API
// @version 1.0
// @description Course catalog, reviews and AI-powered course recommendation service
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	log := logger.NewLogger()

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	app := NewApp(log)
	if err := app.Run(); err != nil {
		log.Error("Application terminated", "error", err)
		os.Exit(1)
	}
}

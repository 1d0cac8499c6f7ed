package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/must-coursehub/course-advisor/internal/infrastructure/database"
	"github.com/must-coursehub/course-advisor/pkg/logger"
)

func main() {
	log := logger.NewLogger()

	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, using environment variables")
	}

	path := flag.String("path", "migrations", "path to the migrations directory")
	flag.Parse()

	config := database.NewPostgresConfigFromEnv()
	if err := database.RunMigrations(config, *path, log); err != nil {
		log.Error("Migration failed", "error", err)
		os.Exit(1)
	}
	log.Info("Migration complete")
}

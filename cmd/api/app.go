package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/must-coursehub/course-advisor/internal/adapter/api/controller"
	"github.com/must-coursehub/course-advisor/internal/adapter/api/route"
	"github.com/must-coursehub/course-advisor/internal/adapter/repository"
	"github.com/must-coursehub/course-advisor/internal/infrastructure/database"
	"github.com/must-coursehub/course-advisor/pkg/agent"
	"github.com/must-coursehub/course-advisor/pkg/auth"
	"github.com/must-coursehub/course-advisor/pkg/deepseek"
	"github.com/must-coursehub/course-advisor/pkg/logger"
)

// App wires every layer together
type App struct {
	logger logger.Logger
}

// NewApp creates the application
func NewApp(log logger.Logger) *App {
	return &App{logger: log}
}

// Run starts the HTTP server and blocks until shutdown
func (a *App) Run() error {
	ctx := context.Background()

	dbConfig := database.NewPostgresConfigFromEnv()
	pool, err := database.NewPostgresPool(ctx, dbConfig, a.logger)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer pool.Close()

	// repositories
	courseRepo := repository.NewCourseRepository(pool, a.logger)
	facultyRepo := repository.NewFacultyRepository(pool, a.logger)
	teacherRepo := repository.NewTeacherRepository(pool, a.logger)
	reviewRepo := repository.NewReviewRepository(pool, a.logger)
	userRepo := repository.NewUserRepository(pool, a.logger)
	conversationRepo := repository.NewConversationRepository(pool, a.logger)

	// recommendation pipeline
	llm := deepseek.NewClientFromEnv(a.logger)
	catalog := repository.NewAgentCatalog(courseRepo)
	reviewSource := repository.NewAgentReviewSource(reviewRepo)

	newQuery := agent.NewNewQueryHandler(catalog, a.logger)
	router := agent.NewRouter(
		newQuery,
		agent.NewRefineHandler(catalog, newQuery, a.logger),
		agent.NewSupplementHandler(catalog, a.logger),
		agent.NewCompareHandler(catalog, llm, a.logger),
		agent.NewDetailHandler(catalog, reviewSource, llm, a.logger),
		agent.NewChatHandler(llm, a.logger),
		agent.NewSynthesizer(llm, a.logger),
		a.logger,
	)
	recommendationService := agent.NewService(agent.NewClassifier(llm, a.logger), router, llm, a.logger)

	jwtService := auth.NewJWTServiceFromEnv()

	controllers := route.Controllers{
		Auth:           controller.NewAuthController(userRepo, jwtService, a.logger),
		Course:         controller.NewCourseController(courseRepo, a.logger),
		Faculty:        controller.NewFacultyController(facultyRepo, teacherRepo, a.logger),
		Teacher:        controller.NewTeacherController(teacherRepo, a.logger),
		Review:         controller.NewReviewController(reviewRepo, userRepo, a.logger),
		Conversation:   controller.NewConversationController(conversationRepo, a.logger),
		Recommendation: controller.NewRecommendationController(recommendationService, a.logger),
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	route.SetupRoutes(engine, jwtService, controllers)

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("Server starting", "port", port, "ai_available", llm.Available())
		errCh <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		a.logger.Info("Shutting down", "signal", sig.String())
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func corsOrigins() []string {
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		return []string{v}
	}
	return []string{"http://localhost:3000"}
}

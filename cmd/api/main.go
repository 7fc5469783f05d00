package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/blogfeed-backend/docs"
	httphandlers "github.com/rafabene/blogfeed-backend/internal/handlers/http"
	"github.com/rafabene/blogfeed-backend/internal/handlers/middleware"
	"github.com/rafabene/blogfeed-backend/internal/infrastructure/config"
	"github.com/rafabene/blogfeed-backend/internal/infrastructure/i18n"
	"github.com/rafabene/blogfeed-backend/internal/infrastructure/logging"
	"github.com/rafabene/blogfeed-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/blogfeed-backend/internal/services"
)

//	@title			blogfeed-backend API
//	@version		1.0
//	@description	REST API for users and their blog posts, backed by PostgreSQL.
//	@BasePath		/

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting blogfeed backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	// A conexão é única para o processo e liberada no shutdown
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	defer func() {
		if err := postgres.CloseDatabaseConnection(db); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	postRepo := postgres.NewPostRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	userService := services.NewUserService(userRepo, postRepo, uow, logger)
	postService := services.NewPostService(postRepo, userRepo, logger)

	// Inicializar handlers
	userHandler := httphandlers.NewUserHandler(userService)
	postHandler := httphandlers.NewPostHandler(postService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware request ID
	router.Use(middleware.RequestID())

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	if cfg.CORS.AllowedOrigins == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = strings.Split(cfg.CORS.AllowedOrigins, ",")
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// API routes
	router.GET("/users", userHandler.ListUsers)
	router.GET("/feed", postHandler.Feed)
	router.GET("/post/:id", postHandler.GetPost)
	router.POST("/user", userHandler.CreateUser)
	router.POST("/post", postHandler.CreatePost)
	router.PUT("/post/publish/:id", postHandler.PublishPost)
	router.DELETE("/post/:id", postHandler.DeletePost)
	router.GET("/user/:id", userHandler.GetUser)
	router.DELETE("/user/:id", userHandler.DeleteUser)

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiHTTP "cliptube/internal/controller/http"
	"cliptube/internal/repo/persistent"
	"cliptube/internal/usecase"
	"cliptube/pkg/cache"
	"cliptube/pkg/config"
	"cliptube/pkg/database"
	"cliptube/pkg/jwt"
	"cliptube/pkg/logger"
	"cliptube/pkg/middleware"
	"cliptube/pkg/queue"
	"cliptube/pkg/s3"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

type App struct {
	cfg         *config.Config
	log         *logger.Logger
	db          *gorm.DB
	redisClient *redis.Client
	s3Client    *s3.Client
	jwtService  *jwt.Service
	queueClient *queue.Client
	httpServer  *http.Server
}

func NewApp(cfg *config.Config) (*App, error) {
	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		return nil, err
	}

	if err := database.AutoMigrate(db); err != nil {
		log.Error("Failed to run migrations: %v", err)
		return nil, err
	}

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("Failed to connect to redis: %v (continuing without cache)", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		return nil, err
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Error("Failed to connect to RabbitMQ: %v (continuing without queue)", err)
		queueClient = nil
	}

	jwtService := jwt.NewService(cfg.JWTSecret)

	return &App{
		cfg:         cfg,
		log:         log,
		db:          db,
		redisClient: redisClient,
		s3Client:    s3Client,
		jwtService:  jwtService,
		queueClient: queueClient,
	}, nil
}

func (a *App) Run() error {
	// Initialize repositories
	userRepo := persistent.NewUserRepository(a.db)
	videoRepo := persistent.NewVideoRepository(a.db)

	// *queue.Client is nil when RabbitMQ is unavailable; a typed nil in the
	// TaskPublisher interface would dodge the usecase nil checks.
	var publisher usecase.TaskPublisher
	if a.queueClient != nil {
		publisher = a.queueClient
	}

	// Initialize use cases
	userUseCase := usecase.NewUserUseCase(
		userRepo,
		a.jwtService,
		a.s3Client,
		publisher,
		a.log,
	)
	videoUseCase := usecase.NewVideoUseCase(
		videoRepo,
		a.s3Client,
		a.redisClient,
		publisher,
		a.log,
	)

	// Initialize HTTP handlers
	userHandler := apiHTTP.NewUserHandler(userUseCase)
	videoHandler := apiHTTP.NewVideoHandler(videoUseCase, a.log)

	// Setup router
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger UI. doc.json comes from a swag-generated docs package; none is
	// committed, so the UI shell loads without an API listing until one is.
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	authRequired := middleware.AuthMiddleware(a.jwtService)

	user := r.Group("/api/user")
	{
		user.POST("/register", userHandler.Register)
		user.POST("/login", userHandler.Login)

		protected := user.Group("")
		protected.Use(authRequired)
		{
			protected.PUT("/update-profile", userHandler.UpdateProfile)
			protected.POST("/subscribe", userHandler.Subscribe)
		}
	}

	video := r.Group("/api/video")
	{
		video.GET("/all", videoHandler.ListAll)
		video.GET("/category/:category", videoHandler.ListByCategory)
		video.GET("/tag/:tag", videoHandler.ListByTag)

		protected := video.Group("")
		protected.Use(authRequired)
		{
			protected.POST("/upload", videoHandler.Upload)
			protected.PUT("/update/:id", videoHandler.Update)
			protected.DELETE("/delete/:id", videoHandler.Delete)
			protected.GET("/my-videos", videoHandler.MyVideos)
			protected.GET("/:id", videoHandler.GetByID)

			reactions := protected.Group("")
			if a.redisClient != nil {
				reactions.Use(middleware.RateLimitMiddleware(a.redisClient, 30, time.Minute))
			}
			reactions.POST("/like", videoHandler.Like)
			reactions.POST("/dislike", videoHandler.Dislike)
		}
	}

	// Create HTTP server
	a.httpServer = &http.Server{
		Addr:    ":" + a.cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		a.log.Info("Video platform starting on port %s", a.cfg.ServerPort)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	return nil
}

func (a *App) Wait() {
	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	a.log.Info("Shutting down...")
}

func (a *App) Shutdown() error {
	// The context is used to inform the server it has 5 seconds to finish
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sqlDB, err := a.db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			a.log.Error("Error closing database: %v", err)
		}
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.log.Error("Error closing Redis: %v", err)
		}
	}

	if a.queueClient != nil {
		a.queueClient.Close()
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		a.log.Error("Server forced to shutdown: %v", err)
		return err
	}

	a.log.Info("Server exited")
	return nil
}

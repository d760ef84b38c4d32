// @title LearnHub API
// @version 1.0
// @description Online learning platform: courses, lessons, enrollments, live classes and AI content generation.
// @host localhost:8090
// @BasePath /
// @schemes http https
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize. A session cookie works as well.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"learnhub/internal/adapter"
	"learnhub/internal/adapter/llm"
	"learnhub/internal/cache"
	"learnhub/internal/config"
	"learnhub/internal/database"
	"learnhub/internal/domain"
	"learnhub/internal/handler"
	"learnhub/internal/logger"
	"learnhub/internal/middleware"
	"learnhub/internal/repository"
	"learnhub/internal/service"

	_ "learnhub/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger logs every HTTP request with its outcome and latency.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Database
	if err := database.RunMigrations(cfg.GetDSN(), "migrations"); err != nil {
		appLogger.Fatal("Failed to run migrations", zap.Error(err))
	}
	db, err := database.NewSQLXPostgresDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	appLogger.Info("RedisCacheAdapter initialized")

	// LLM-backed content generator
	generator, err := llm.NewOpenAIGenerator(cfg.OpenAI)
	if err != nil {
		appLogger.Fatal("Failed to create content generator", zap.Error(err))
	}
	appLogger.Info("Content generator initialized", zap.String("model", cfg.OpenAI.Model))

	// Repositories
	userRepository := repository.NewSQLXUserRepository(db)
	courseRepository := repository.NewSQLXCourseRepository(db)
	lessonRepository := repository.NewSQLXLessonRepository(db)
	reviewRepository := repository.NewSQLXReviewRepository(db)
	enrollmentRepository := repository.NewSQLXEnrollmentRepository(db)
	liveClassRepository := repository.NewSQLXLiveClassRepository(db)
	aiContentRepository := repository.NewSQLXAiContentRepository(db)
	statsRepository := repository.NewSQLXStatsRepository(db)

	// Services
	authService, err := service.NewAuthService(userRepository, cacheAdapter, cfg.JWT)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	courseService := service.NewCourseService(courseRepository, lessonRepository, reviewRepository, enrollmentRepository)
	liveClassService := service.NewLiveClassService(liveClassRepository)
	aiService := service.NewAiService(generator, aiContentRepository)
	statsService := service.NewStatsService(statsRepository)
	uploadService, err := service.NewUploadService(cfg.Upload)
	if err != nil {
		appLogger.Fatal("Failed to create UploadService", zap.Error(err))
	}

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	courseHandler := handler.NewCourseHandler(courseService)
	liveClassHandler := handler.NewLiveClassHandler(liveClassService)
	aiHandler := handler.NewAiHandler(aiService)
	statsHandler := handler.NewStatsHandler(statsService)
	uploadHandler := handler.NewUploadHandler(uploadService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: true,
		MaxAge:           300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	requireAuth := middleware.RequireAuth(authService)
	requireInstructor := middleware.RequireRole(domain.RoleProfessor, domain.RoleAdmin)

	api := app.Group("/api")

	// Auth
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/logout", authHandler.Logout)
	api.Get("/user", requireAuth, authHandler.Me)

	// Courses
	api.Get("/courses", courseHandler.ListCourses)
	api.Post("/courses", requireAuth, courseHandler.CreateCourse)
	api.Get("/courses/:id", courseHandler.GetCourse)
	api.Put("/courses/:id", requireAuth, courseHandler.UpdateCourse)
	api.Delete("/courses/:id", requireAuth, courseHandler.DeleteCourse)
	api.Get("/my-courses", requireAuth, requireInstructor, courseHandler.ListMyCourses)

	// Lessons
	api.Get("/courses/:id/lessons", courseHandler.ListLessons)
	api.Post("/courses/:id/lessons", requireAuth, courseHandler.CreateLesson)
	api.Put("/lessons/:id", requireAuth, courseHandler.UpdateLesson)
	api.Delete("/lessons/:id", requireAuth, courseHandler.DeleteLesson)

	// Reviews
	api.Get("/courses/:id/reviews", courseHandler.ListReviews)
	api.Post("/courses/:id/reviews", requireAuth, courseHandler.CreateReview)
	api.Post("/reviews", requireAuth, courseHandler.CreateReview)

	// Enrollments
	api.Post("/courses/:id/enroll", requireAuth, courseHandler.Enroll)
	api.Get("/courses/:id/enrollments", requireAuth, courseHandler.ListCourseEnrollments)
	api.Get("/enrollments", requireAuth, courseHandler.ListMyEnrollments)
	api.Post("/enrollments", requireAuth, courseHandler.Enroll)
	api.Put("/enrollments/:courseId/progress", requireAuth, courseHandler.UpdateProgress)

	// Live classes
	api.Get("/live-classes", liveClassHandler.ListLiveClasses)
	api.Post("/live-classes", requireAuth, liveClassHandler.CreateLiveClass)
	api.Get("/live-classes/:id", liveClassHandler.GetLiveClass)
	api.Put("/live-classes/:id", requireAuth, liveClassHandler.UpdateLiveClass)
	api.Delete("/live-classes/:id", requireAuth, liveClassHandler.DeleteLiveClass)
	api.Post("/live-classes/:id/join", requireAuth, liveClassHandler.Join)
	api.Post("/live-classes/:id/leave", requireAuth, liveClassHandler.Leave)
	api.Get("/my-live-classes", requireAuth, liveClassHandler.ListMyLiveClasses)

	// AI content
	ai := api.Group("/ai", requireAuth)
	ai.Post("/generate-quiz", aiHandler.GenerateQuiz)
	ai.Post("/generate-structure", aiHandler.GenerateStructure)
	ai.Post("/analyze-content", aiHandler.AnalyzeContent)
	ai.Post("/generate-summary", aiHandler.GenerateSummary)
	ai.Post("/moderate-content", aiHandler.ModerateContent)
	ai.Get("/content", aiHandler.ListContent)

	// Dashboard
	api.Get("/dashboard/stats", requireAuth, statsHandler.GetDashboardStats)

	// Uploads
	api.Post("/upload", requireAuth, uploadHandler.Upload)
	app.Get("/uploads/:filename", uploadHandler.Serve)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}

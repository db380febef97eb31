package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"resumatch/resume-analyzer/internal/config"
	"resumatch/resume-analyzer/internal/handlers"
	"resumatch/resume-analyzer/internal/repositories"
	"resumatch/resume-analyzer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	resumeRepo := repositories.NewResumeRepository(db)
	jobRepo := repositories.NewJobDescriptionRepository(db)
	analysisRepo := repositories.NewAnalysisRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	extractorService := services.NewExtractorService()
	tokenizerService := services.NewTokenizerService()
	scorerService := services.NewScorerService(tokenizerService)
	recommenderService := services.NewRecommenderService()

	skillDetector, err := services.NewSkillDetectorService()
	if err != nil {
		log.Fatalf("❌ Failed to load skill vocabulary: %v", err)
	}
	log.Println("✅ Services initialized successfully")

	// Initialize analyzer
	analyzerService := services.NewAnalyzerService(
		analysisRepo,
		resumeRepo,
		jobRepo,
		skillDetector,
		scorerService,
		recommenderService,
	)
	log.Println("✅ Analyzer service initialized")

	// Initialize worker
	worker := services.NewWorker(
		analysisRepo,
		analyzerService,
		cfg.Worker.Concurrency,
	)
	log.Println("✅ Worker initialized successfully")

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)

	// Initialize Handlers
	resumeHandler := handlers.NewResumeHandler(
		resumeRepo,
		storageService,
		extractorService,
		cfg.Storage.MaxFileSize,
	)
	jobHandler := handlers.NewJobDescriptionHandler(jobRepo)
	analysisHandler := handlers.NewAnalysisHandler(
		analysisRepo,
		resumeRepo,
		jobRepo,
		worker,
	)
	dashboardHandler := handlers.NewDashboardHandler(
		resumeRepo,
		jobRepo,
		analysisRepo,
	)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Resume Analyzer API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Resumes
	api.Post("/resumes", resumeHandler.HandleUpload)
	api.Get("/resumes", resumeHandler.HandleList)
	api.Get("/resumes/:id", resumeHandler.HandleGet)
	api.Delete("/resumes/:id", resumeHandler.HandleDelete)

	// Job descriptions
	api.Post("/job-descriptions", jobHandler.HandleCreate)
	api.Get("/job-descriptions", jobHandler.HandleList)
	api.Get("/job-descriptions/:id", jobHandler.HandleGet)
	api.Put("/job-descriptions/:id", jobHandler.HandleUpdate)
	api.Delete("/job-descriptions/:id", jobHandler.HandleDelete)

	// Analyses
	api.Post("/analyze", analysisHandler.HandleAnalyze)
	api.Get("/analyses", analysisHandler.HandleList)
	api.Get("/analyses/:id", analysisHandler.HandleGet)

	// Dashboard
	api.Get("/dashboard/stats", dashboardHandler.HandleStats)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Resume Analyzer API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/resumes",
				"POST /api/v1/job-descriptions",
				"POST /api/v1/analyze",
				"GET /api/v1/analyses/:id",
				"GET /api/v1/dashboard/stats",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

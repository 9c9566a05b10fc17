package router

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/safetrain-backend/internal/config"
	"github.com/stemsi/safetrain-backend/internal/handler"
	"github.com/stemsi/safetrain-backend/internal/middleware"
	"github.com/stemsi/safetrain-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Generate    *handler.GenerateHandler
	TestSession *handler.TestSessionHandler
	Instruction *handler.InstructionHandler
	Directory   *handler.DirectoryHandler
	Activity    *handler.ActivityHandler
	Stats       *handler.StatsHandler
	Media       *handler.MediaHandler
	WS          *handler.WSHandler
	Health      *handler.HealthHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// ctx bounds background goroutines owned by middlewares.
func SetupRouter(ctx context.Context, handlers *Handlers, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(gin.Recovery())

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID", "X-Program-Id", "X-Module-Id"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Brotli())

	// Uploaded videos are stored under unique names, so cache for a year.
	uploadsGroup := router.Group("/uploads")
	uploadsGroup.Use(middleware.CacheControl(365 * 24 * time.Hour))
	{
		uploadsGroup.Static("/", cfg.UploadDir)
	}

	router.GET("/health", handlers.Health.Health)

	api := router.Group("/api/v1")

	// ─── 1. Generation (Rate Limited) ──────────────────────────────────
	generateLimiter := middleware.NewRateLimiter(ctx, cfg.GenerateRateLimit, time.Minute)
	generate := api.Group("/generate")
	generate.Use(generateLimiter.Middleware())
	{
		generate.POST("/test", handlers.Generate.GenerateTest)
		generate.POST("/instruction", handlers.Generate.GenerateInstruction)
	}

	// ─── 2. Testing ────────────────────────────────────────────────────
	api.POST("/test-sessions", handlers.TestSession.Submit)
	api.GET("/test-sessions", handlers.TestSession.ListByUser)

	// ─── 3. Instructions ───────────────────────────────────────────────
	instructions := api.Group("/instructions")
	{
		instructions.GET("", handlers.Instruction.List)
		instructions.POST("", handlers.Instruction.Create)
		instructions.GET("/:id", handlers.Instruction.Get)
		instructions.PUT("/:id", handlers.Instruction.Update)
		instructions.GET("/:id/questions", handlers.Instruction.Questions)
		instructions.PUT("/:id/questions", handlers.Instruction.ReplaceQuestions)
	}

	// ─── 4. Users, Programs, Assignments ───────────────────────────────
	api.GET("/users", handlers.Directory.ListUsers)
	api.GET("/programs", handlers.Directory.ListPrograms)
	api.GET("/assignments", handlers.Directory.ListAssignments)
	api.POST("/assignments", handlers.Directory.CreateAssignment)

	// ─── 5. Activity & Dashboard ───────────────────────────────────────
	api.GET("/activity", handlers.Activity.List)
	api.GET("/stats", handlers.Stats.Summary)

	// ─── 6. Media ──────────────────────────────────────────────────────
	api.POST("/media/videos", handlers.Media.UploadVideo)

	// ─── 7. WebSocket ──────────────────────────────────────────────────
	ws := router.Group("/ws/v1")
	{
		ws.GET("/activity/stream", handlers.WS.ActivityStream)
	}

	return router
}

package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/smartaid/smartaid-backend/internal/config"
	"github.com/smartaid/smartaid-backend/internal/handler"
	"github.com/smartaid/smartaid-backend/internal/middleware"
	"github.com/smartaid/smartaid-backend/internal/model"
	"github.com/smartaid/smartaid-backend/internal/response"
	"github.com/smartaid/smartaid-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth      *handler.AuthHandler
	Screening *handler.ScreeningHandler
	Chat      *handler.ChatHandler
	Record    *handler.RecordHandler
	Program   *handler.ProgramHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for public write routes (30 requests per minute per IP).
	publicLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── 1. Public Group (No Auth) ─────────────────────────────────────
	public := router.Group("/api/v1")
	{
		public.GET("/programs", handlers.Program.ListPrograms)

		public.POST("/screenings", publicLimiter.Middleware(), handlers.Screening.SubmitScreening)
		public.GET("/screenings/:id", handlers.Screening.GetReport)
		public.POST("/screenings/:id/documents", handlers.Screening.UploadDocument)
		public.DELETE("/screenings/:id", handlers.Screening.ClearScreening)

		public.POST("/chat", publicLimiter.Middleware(), handlers.Chat.Ask)
	}

	// ─── 2. WebSocket Group ────────────────────────────────────────────
	ws := router.Group("/ws/v1")
	{
		ws.GET("/chat", handlers.Chat.ChatStream)
	}

	// ─── 3. Auth Group (Rate Limited) ──────────────────────────────────
	authLimiter := middleware.NewRateLimiter(10, time.Minute)
	auth := router.Group("/api/v1/auth")
	{
		auth.POST("/staff/login", authLimiter.Middleware(), handlers.Auth.StaffLogin)
		auth.GET("/staff/me", middleware.RequireStaffJWT(authService), handlers.Auth.GetStaffProfile)
	}

	// ─── 4. Staff Group (JWT + RBAC) ───────────────────────────────────
	staff := router.Group("/api/v1/staff")
	staff.Use(middleware.RequireStaffJWT(authService))
	{
		staff.GET("/records",
			middleware.RequirePermission(string(model.PermissionRecordsRead)),
			handlers.Record.SearchRecords,
		)
		staff.GET("/records/:student_id",
			middleware.RequirePermission(string(model.PermissionRecordsRead)),
			handlers.Record.GetRecord,
		)
		staff.PATCH("/records/:student_id",
			middleware.RequirePermission(string(model.PermissionRecordsWrite)),
			handlers.Record.UpdateRecord,
		)
		staff.POST("/screenings/:id/promote",
			middleware.RequirePermission(string(model.PermissionRecordsWrite)),
			handlers.Record.PromoteScreening,
		)
		staff.GET("/chat-queries",
			middleware.RequirePermission(string(model.PermissionRecordsRead)),
			handlers.Record.ListChatQueries,
		)
		staff.GET("/programs",
			middleware.RequirePermission(string(model.PermissionCatalogRead)),
			handlers.Program.ListProgramDetails,
		)
	}

	return router
}

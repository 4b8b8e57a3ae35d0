package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/bloodlink/bloodlink-backend/internal/config"
	"github.com/bloodlink/bloodlink-backend/internal/handlers"
	"github.com/bloodlink/bloodlink-backend/internal/middleware"
	"github.com/bloodlink/bloodlink-backend/internal/services"
	"github.com/bloodlink/bloodlink-backend/pkg/jwt"
)

// HandlerDependencies bundles the handlers wired in main
type HandlerDependencies struct {
	AuthHandler     *handlers.AuthHandler
	DonorHandler    *handlers.DonorHandler
	RequestHandler  *handlers.RequestHandler
	DonationHandler *handlers.DonationHandler
	StatsHandler    *handlers.StatsHandler
}

// SetupRouter assembles the router, middleware chain and route groups
func SetupRouter(cfg *config.Config, logger *zap.Logger, tokens *jwt.TokenService, authService *services.AuthService, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(logger))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := router.Group("/api")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/register", deps.AuthHandler.Register)
			auth.POST("/login", deps.AuthHandler.Login)
		}

		public.GET("/donors", deps.DonorHandler.GetDonors)
		public.GET("/donors/leaderboard", deps.DonorHandler.GetLeaderboard)
		public.GET("/stats", deps.StatsHandler.GetStats)
		public.GET("/compatibility", deps.StatsHandler.CheckCompatibility)
	}

	protected := router.Group("/api")
	protected.Use(middleware.JWTAuthMiddleware(tokens, authService))
	{
		protected.GET("/profile", deps.AuthHandler.GetProfile)

		protected.GET("/donors/me", deps.DonorHandler.GetMyDonorProfile)
		protected.PUT("/donors/me/availability", deps.DonorHandler.UpdateAvailability)

		protected.POST("/blood-requests", deps.RequestHandler.CreateRequest)
		protected.GET("/blood-requests", deps.RequestHandler.GetRequests)
		protected.PUT("/blood-requests/:id", deps.RequestHandler.UpdateRequest)

		protected.POST("/donations", deps.DonationHandler.RecordDonation)
		protected.GET("/donations/history", deps.DonationHandler.GetHistory)

		protected.GET("/activities", deps.StatsHandler.GetActivities)
	}

	return router
}

package router

import (
	"github.com/gin-gonic/gin"

	"nexgen/internal/handler"
	"nexgen/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	allowedOrigins []string,
	pincodeH *handler.PincodeHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Public lookup routes
	v1.GET("/pincodes/:pincode", pincodeH.Get)
	v1.GET("/zones", pincodeH.Zone)

	return r
}

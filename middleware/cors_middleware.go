package middleware

import (
	"strings"

	"github.com/gin-contrib/cors"
	gin "github.com/gin-gonic/gin"
)

// CORSMiddleware adds the required headers to allow cross-origin requests
// from the configured frontend origins. Preflight OPTIONS requests are
// answered here, before any auth runs.
func CORSMiddleware(allowedOrigins string) gin.HandlerFunc {

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(allowedOrigins, ",")
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, []string{
		"Accept",
		"Authorization",
	}...)
	corsConfig.ExposeHeaders = []string{"Content-Type", "Authorization"}

	return cors.New(corsConfig)
}

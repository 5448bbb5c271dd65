package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/odiedo/PesaTrackAdmin/internal/infrastructure/config"
)

// Default CORS settings used when the config leaves them empty
var (
	DefaultCORSMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	DefaultCORSHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", RequestIDHeader}
)

// CORS builds the cross-origin middleware from the HTTP config.
// A "*" origin allows any origin but disables credentials.
func CORS(cfg config.HTTPConfig) gin.HandlerFunc {
	c := cors.Config{
		AllowMethods:  cfg.CORSAllowMethods,
		AllowHeaders:  cfg.CORSAllowHeaders,
		ExposeHeaders: []string{RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		MaxAge:        12 * time.Hour,
	}
	if len(c.AllowMethods) == 0 {
		c.AllowMethods = DefaultCORSMethods
	}
	if len(c.AllowHeaders) == 0 {
		c.AllowHeaders = DefaultCORSHeaders
	}

	origins := cfg.CORSAllowOrigins
	switch {
	case len(origins) == 0, len(origins) == 1 && origins[0] == "*":
		c.AllowAllOrigins = true
	default:
		c.AllowOrigins = origins
		c.AllowCredentials = true
	}

	return cors.New(c)
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"go-sparkshield-backend/config"
)

// CORSMiddleware adds CORS headers for the public site frontends.
// Origins are strict: production domains always, localhost only outside
// production. Anything else gets no CORS headers and the browser blocks it.
func CORSMiddleware(cfg *config.Config) gin.HandlerFunc {
	isProduction := !cfg.IsDevelopment()

	productionOrigins := map[string]bool{
		"https://sparkshield1.onrender.com": true,
		"https://" + cfg.Domain:             true,
		"https://www." + cfg.Domain:         true,
	}

	devOrigins := map[string]bool{
		"http://localhost:80":   true,
		"http://localhost:3000": true,
		"http://127.0.0.1:3000": true,
	}

	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		var isAllowed bool
		if productionOrigins[origin] {
			isAllowed = true
		}
		if !isProduction && devOrigins[origin] {
			isAllowed = true
		}
		// Same-origin requests carry no Origin header
		if origin == "" {
			isAllowed = true
		}

		if isAllowed {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Max-Age", "86400")
		}

		c.Header("Vary", "Origin")

		if c.Request.Method == "OPTIONS" {
			if isAllowed {
				c.AbortWithStatus(204)
			} else {
				c.AbortWithStatus(403)
			}
			return
		}

		c.Next()
	}
}

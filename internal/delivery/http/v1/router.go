package v1

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-sparkshield-backend/config"
	"go-sparkshield-backend/internal/delivery/http/middleware"
	"go-sparkshield-backend/internal/domain"
)

type RouterDeps struct {
	QuoteUC domain.QuoteUsecase
	ChatUC  domain.ChatUsecase
	Config  *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.ErrorHandler(deps.Config.IsDevelopment()))

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Public API routes (the whole surface is public)
	NewQuoteHandler(r, deps.QuoteUC)
	NewChatHandler(r, deps.ChatUC)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Static site
	registerStatic(r, deps.Config.StaticDir)

	return r
}

// registerStatic serves the marketing site: the landing page at / and every
// unmatched GET falls through to the static file tree.
func registerStatic(r *gin.Engine, dir string) {
	if dir == "" {
		return
	}

	index := filepath.Join(dir, "pages", "index.html")
	if _, err := os.Stat(index); err != nil {
		index = filepath.Join(dir, "index.html")
	}
	r.GET("/", func(c *gin.Context) {
		c.File(index)
	})

	fileServer := http.FileServer(http.Dir(dir))
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
			fileServer.ServeHTTP(c.Writer, c.Request)
			return
		}
		c.Status(http.StatusNotFound)
	})
}

package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-lawfirm-backend/config"
	"go-lawfirm-backend/internal/cache"
	"go-lawfirm-backend/internal/delivery/http/middleware"
	"go-lawfirm-backend/internal/delivery/http/response"
	"go-lawfirm-backend/internal/domain"
	"go-lawfirm-backend/pkg/validation"
)

type RouterDeps struct {
	ConsultationUC domain.ConsultationUsecase
	CacheManager   *cache.Manager
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Custom validators for binding tags
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware()) // CORS must be first!
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
		c.Abort()
	}))
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))

	// Anything not POST/OPTIONS on a known route
	r.NoMethod(func(c *gin.Context) {
		response.Error(c, http.StatusMethodNotAllowed, "Method not allowed")
	})

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.OK(c, http.StatusOK, "System operational")
	})

	// Public routes
	formLimiter := middleware.RateLimitMiddleware(middleware.FormRateLimitConfig(
		deps.Config.RateLimitFormThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	))
	NewConsultationHandler(v1, deps.ConsultationUC, formLimiter)

	// Cache-managed asset delivery + control channel
	NewCacheHandler(r, v1, deps.CacheManager)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

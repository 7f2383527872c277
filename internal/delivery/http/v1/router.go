package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shario-backend/config"
	"shario-backend/internal/delivery/http/middleware"
	"shario-backend/internal/delivery/http/response"
	"shario-backend/internal/domain"
	"shario-backend/pkg/auth"
)

type RouterDeps struct {
	AuthUC       domain.AuthUsecase
	ResourceUC   domain.ResourceUsecase
	CollectionUC domain.CollectionUsecase
	Tokens       *auth.TokenManager
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "Shario API is running", nil)
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Protected routes
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))
	{
		NewAuthHandler(api, protected, deps.AuthUC)
		NewResourceHandler(api, protected, deps.ResourceUC)
		NewCollectionHandler(protected, deps.CollectionUC)
	}

	return r
}

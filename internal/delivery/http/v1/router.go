package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"recruitment-portal-api/config"
	"recruitment-portal-api/internal/delivery/http/middleware"
	"recruitment-portal-api/internal/delivery/http/response"
	"recruitment-portal-api/internal/domain"
	"recruitment-portal-api/pkg/auth"
)

type RouterDeps struct {
	AuthUC        domain.AuthUsecase
	PersonUC      domain.PersonUsecase
	ApplicationUC domain.ApplicationUsecase
	Tokens        *auth.TokenManager
	Config        *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		response.JSON(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	public := r.Group("")

	protected := r.Group("")
	protected.Use(middleware.RequireAuth(deps.Tokens, deps.AuthUC))

	NewAuthHandler(public, protected, deps.AuthUC, deps.Tokens, deps.Config)
	NewPersonHandler(protected, deps.PersonUC)
	NewApplicationHandler(protected, deps.ApplicationUC)

	return r
}

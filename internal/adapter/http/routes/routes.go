package routes

import (
	"log"
	"net/http"
	"strings"
	"time"

	_ "autocare_api/docs" // generated by swag init
	"autocare_api/internal/adapter/http/handlers"
	"autocare_api/internal/adapter/http/middleware"
	"autocare_api/internal/infrastructure/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	PathV1       = "/v1"
	PathSwagger  = "/swagger/*any"
	PathJobs     = "/jobs"
	PathOrders   = "/orders"
	PathPayments = "/payments"
	PathJobFeed  = "/ws/jobs"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Jobs     *handlers.JobHandler
	Orders   *handlers.OrderHandler
	Payments *handlers.PaymentHandler
	JobFeed  *handlers.JobFeedHandler
}

// NewRouter builds the gin engine: public ping and swagger, everything else behind
// authentication.
func NewRouter(cfg config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg.CORSAllowedOrigins)

	// Swagger documentation endpoint
	router.GET(PathSwagger, ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group(PathV1)
	addPingRoutes(v1)

	authed := v1.Group("", middleware.Authenticate(cfg.Auth))
	addJobRoutes(authed, h.Jobs, h.Payments)
	addOrderRoutes(authed, h.Orders)
	addPaymentRoutes(authed, h.Payments)
	if h.JobFeed != nil {
		authed.GET(PathJobFeed, h.JobFeed.Stream)
	}
	return router
}

func setMiddlewares(router *gin.Engine, allowedOrigins []string) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(corsMiddleware(allowedOrigins))
}

// corsMiddleware leaves websocket upgrades alone; their origin is checked by the upgrader.
func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.HeaderActorID, middleware.HeaderActorRole},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
		cfg.AllowCredentials = true
	}
	corsHandler := cors.New(cfg)
	return func(c *gin.Context) {
		if strings.EqualFold(c.GetHeader("Upgrade"), "websocket") {
			c.Next()
			return
		}
		corsHandler(c)
	}
}

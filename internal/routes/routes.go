package routes

import (
	"io"
	"net/http"
	"time"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"bistro_boss/internal/analytics"
	"bistro_boss/internal/controllers"
	"bistro_boss/internal/middleware"
	"bistro_boss/internal/models"
	"bistro_boss/internal/payment"
	"bistro_boss/internal/repository"
)

// Dependencies are constructed once at startup and shared by every handler.
type Dependencies struct {
	DB             *gorm.DB
	Tokens         *middleware.TokenService
	Gateway        payment.Gateway
	Currency       string
	RequestTimeout time.Duration
	CORSOrigins    []string
	RequestLogging bool
	// LogWriter receives request logs; defaults to the logrus output.
	LogWriter io.Writer
}

type handlers struct {
	auth     *controllers.AuthController
	users    *controllers.UserController
	menu     *controllers.MenuController
	reviews  *controllers.ReviewController
	carts    *controllers.CartController
	payments *controllers.PaymentController
	stats    *controllers.StatsController
	guard    *middleware.Authorizer
}

func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.New()
	if deps.RequestLogging {
		w := deps.LogWriter
		if w == nil {
			w = logrus.StandardLogger().Out
		}
		r.Use(ginlog.SetLogger(
			ginlog.WithWriter(w),
			ginlog.WithSkipPath([]string{"/"}),
			ginlog.WithUTC(true),
		))
	}
	r.Use(gin.Recovery())
	r.Use(middleware.EnableCORS(deps.CORSOrigins))
	r.Use(middleware.Timeout(deps.RequestTimeout))

	userRepo := repository.NewUserRepository(deps.DB)
	h := handlers{
		auth:     controllers.NewAuthController(deps.Tokens),
		users:    controllers.NewUserController(userRepo),
		menu:     controllers.NewMenuController(repository.NewCollection[models.MenuItem](deps.DB)),
		reviews:  controllers.NewReviewController(repository.NewCollection[models.Review](deps.DB)),
		carts:    controllers.NewCartController(repository.NewCartRepository(deps.DB)),
		payments: controllers.NewPaymentController(repository.NewPaymentRepository(deps.DB), deps.Gateway, deps.Currency),
		stats:    controllers.NewStatsController(analytics.NewEngine(deps.DB)),
		guard:    middleware.NewAuthorizer(deps.Tokens, userRepo),
	}

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "The Restaurant bistro boss server is running.......")
	})

	authRoutes(r, h)
	userRoutes(r, h)
	menuRoutes(r, h)
	cartRoutes(r, h)
	paymentRoutes(r, h)
	adminRoutes(r, h)

	return r
}

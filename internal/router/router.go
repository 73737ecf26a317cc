// Package router builds the HTTP route table shared by the server and the
// end-to-end tests.
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/express22chief-pixel/money-planner-sub000/internal/config"
	_ "github.com/express22chief-pixel/money-planner-sub000/internal/docs" // Import swagger docs
	"github.com/express22chief-pixel/money-planner-sub000/internal/handlers"
	"github.com/express22chief-pixel/money-planner-sub000/internal/middleware"
	"github.com/express22chief-pixel/money-planner-sub000/internal/services"
)

// Services bundles everything the handlers call.
type Services struct {
	Clock       services.Clock
	Auth        services.AuthServicer
	Transaction services.TransactionServicer
	Recurring   services.RecurringServicer
	Card        services.CardServicer
	Balance     services.BalanceServicer
	Asset       services.AssetServicer
	Simulation  services.SimulationServicer
}

// NewServices builds the database-backed services.
func NewServices(db *gorm.DB, cfg *config.Config, clock services.Clock) Services {
	return Services{
		Clock:       clock,
		Auth:        services.NewAuthService(cfg.OwnerPassphraseHash),
		Transaction: services.NewTransactionService(db, clock),
		Recurring:   services.NewRecurringService(db, clock),
		Card:        services.NewCardService(db),
		Balance:     services.NewBalanceService(db),
		Asset:       services.NewAssetService(db, clock),
		Simulation:  services.NewSimulationService(db, clock, cfg.MonteCarloPaths),
	}
}

// Options tunes the middleware stack.
type Options struct {
	TokenTTL        time.Duration
	SchedulerAPIKey string
	RequestLogging  bool
	Swagger         bool
}

// New returns a gin engine serving the REST API.
func New(svc Services, opts Options) *gin.Engine {
	authHandler := handlers.NewAuthHandler(svc.Auth, opts.TokenTTL)
	transactionHandler := handlers.NewTransactionHandler(svc.Transaction)
	recurringHandler := handlers.NewRecurringHandler(svc.Recurring, svc.Clock)
	cardHandler := handlers.NewCardHandler(svc.Card)
	balanceHandler := handlers.NewBalanceHandler(svc.Balance, svc.Clock)
	assetHandler := handlers.NewAssetHandler(svc.Asset)
	simulationHandler := handlers.NewSimulationHandler(svc.Simulation)

	router := gin.New()
	router.Use(gin.Recovery())
	if opts.RequestLogging {
		router.Use(middleware.RequestLogging())
	}
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	if opts.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	v1.POST("/auth/token", authHandler.IssueToken)

	// Called by an external scheduler once a day.
	scheduler := v1.Group("/scheduler")
	scheduler.Use(middleware.SchedulerAuthMiddleware(opts.SchedulerAPIKey))
	scheduler.POST("/recurring/generate", recurringHandler.Generate)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	transactions := protected.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)
	transactions.POST("/:id/splits/settle", transactionHandler.SettleSplit)

	recurring := protected.Group("/recurring")
	recurring.POST("", recurringHandler.CreateObligation)
	recurring.GET("", recurringHandler.GetObligations)
	recurring.GET("/summary", recurringHandler.Summary)
	recurring.POST("/generate", recurringHandler.Generate)
	recurring.GET("/:id", recurringHandler.GetObligation)
	recurring.PUT("/:id", recurringHandler.UpdateObligation)
	recurring.DELETE("/:id", recurringHandler.DeleteObligation)

	cards := protected.Group("/cards")
	cards.POST("", cardHandler.CreateCard)
	cards.GET("", cardHandler.GetCards)
	cards.PUT("/:id", cardHandler.UpdateCard)
	cards.DELETE("/:id", cardHandler.DeleteCard)

	balance := protected.Group("/balance")
	balance.GET("", balanceHandler.GetMonthlyBalance)
	balance.GET("/categories", balanceHandler.GetCategoryBreakdown)

	assets := protected.Group("/assets")
	assets.GET("", assetHandler.GetAssets)
	assets.PUT("", assetHandler.UpdateAssets)
	assets.POST("/transfer", assetHandler.Transfer)
	assets.POST("/close-month", assetHandler.CloseMonth)
	assets.GET("/history", assetHandler.GetHistory)

	simulation := protected.Group("/simulation")
	simulation.GET("/settings", simulationHandler.GetSettings)
	simulation.PUT("/settings", simulationHandler.UpdateSettings)
	simulation.POST("/life-events", simulationHandler.CreateLifeEvent)
	simulation.GET("/life-events", simulationHandler.GetLifeEvents)
	simulation.DELETE("/life-events/:id", simulationHandler.DeleteLifeEvent)
	simulation.GET("/projection", simulationHandler.GetProjection)
	simulation.GET("/monte-carlo", simulationHandler.GetMonteCarlo)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

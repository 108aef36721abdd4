package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/minipay/ledger-api/internal/api/handler"
	"github.com/minipay/ledger-api/internal/api/middleware"
	"github.com/minipay/ledger-api/internal/core/ports"
	"github.com/minipay/ledger-api/internal/core/service"
	redisinfra "github.com/minipay/ledger-api/internal/infrastructure/db/redis"
	"github.com/minipay/ledger-api/internal/infrastructure/db/sqlite"
)

// Options carries the non-store dependencies the router needs.
type Options struct {
	RateSource   ports.RateSource
	BaseCurrency string
	RateCacheTTL time.Duration
	Logger       zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// rdb may be nil; the credential and rate caches are then disabled.
func NewRouter(db *gorm.DB, rdb *goredis.Client, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("ledger"))

	// --- Stores ---
	accountRepo := sqlite.NewAccountRepository(db)
	ledgerRepo := sqlite.NewLedgerRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	transferStore := sqlite.NewTransferStore(db)

	// --- Optional Redis-backed caches ---
	var credentialCache service.CredentialCache
	var rateCache service.RateCache
	if rdb != nil {
		credentialCache = redisinfra.NewCredentialCache(rdb)
		rateCache = redisinfra.NewRateCache(rdb, opts.BaseCurrency, opts.RateCacheTTL)
	}

	// --- Services ---
	authService := service.NewAuthService(accountRepo, credentialCache, opts.Logger)
	accountService := service.NewAccountService(accountRepo, opts.Logger)
	walletService := service.NewWalletService(accountRepo, productRepo, ledgerRepo, transferStore, opts.Logger)
	catalogService := service.NewCatalogService(productRepo, opts.Logger)
	rateService := service.NewRateService(opts.RateSource, rateCache, opts.BaseCurrency, opts.Logger)

	// --- Handlers ---
	accountHandler := handler.NewAccountHandler(accountService)
	walletHandler := handler.NewWalletHandler(walletService, rateService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	auth := middleware.BasicAuth(authService)

	// --- API routes ---
	g := e.Group("/api")
	g.POST("/register", accountHandler.Register)
	g.POST("/fund", walletHandler.Fund, auth)
	g.POST("/pay", walletHandler.Pay, auth)
	g.GET("/bal", walletHandler.Balance, auth)
	g.GET("/stmt", walletHandler.Statement, auth)
	g.POST("/product", catalogHandler.AddProduct, auth)
	g.GET("/product", catalogHandler.ListProducts)
	g.POST("/buy", walletHandler.Buy, auth)
	g.DELETE("/delete", accountHandler.Delete, auth)
	g.GET("/users", accountHandler.Users)
	g.GET("/msg", accountHandler.Welcome)

	// --- Probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

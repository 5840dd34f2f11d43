package api

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ADBranches/cse340/internal/api/flash"
	"github.com/ADBranches/cse340/internal/api/handler"
	"github.com/ADBranches/cse340/internal/api/middleware"
	"github.com/ADBranches/cse340/internal/api/view"
	"github.com/ADBranches/cse340/internal/core/service"
	"github.com/ADBranches/cse340/internal/infrastructure/config"
	"github.com/ADBranches/cse340/internal/infrastructure/db/postgres"
	"github.com/ADBranches/cse340/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := view.NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("csemotors"))

	// --- Dependencies ---
	accountRepo := postgres.NewAccountRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	testDriveRepo := postgres.NewTestDriveRepository(pool)

	tokens := service.NewTokenService(cfg.SessionSecret, time.Hour)
	accountService := service.NewAccountService(accountRepo, tokens)
	inventoryService := service.NewInventoryService(inventoryRepo, log)
	testDriveService := service.NewTestDriveService(testDriveRepo, log)

	notices := flash.NewManager(redis.NewFlashStore(rdb), cfg.IsProduction(), log)
	base := handler.Base{Notices: notices, Secure: cfg.IsProduction()}

	accountHandler := handler.NewAccountHandler(base, accountService)
	inventoryHandler := handler.NewInventoryHandler(base, inventoryService)
	testDriveHandler := handler.NewTestDriveHandler(base, testDriveService, inventoryService)

	e.Use(middleware.Session(tokens))
	requireLogin := middleware.RequireLogin(notices)
	requireStaff := middleware.RequireStaff(notices)

	// --- Public pages ---
	e.GET("/", inventoryHandler.Home)
	e.GET("/inv/type/:classificationID", inventoryHandler.Classification)
	e.GET("/inv/detail/:invID", inventoryHandler.Detail)

	// --- Account ---
	e.GET("/account/login", accountHandler.LoginPage)
	e.POST("/account/login", accountHandler.Login)
	e.GET("/account/register", accountHandler.RegisterPage)
	e.POST("/account/register", accountHandler.Register)
	e.GET("/account/logout", accountHandler.Logout, requireLogin)
	e.GET("/account", accountHandler.Management, requireLogin)
	e.GET("/account/edit/:accountID", accountHandler.EditPage, requireLogin)
	e.POST("/account/update", accountHandler.Update, requireLogin)
	e.POST("/account/update-password", accountHandler.UpdatePassword, requireLogin)

	// --- Inventory management (staff only) ---
	e.GET("/inv", inventoryHandler.Management, requireStaff)
	e.GET("/inv/add-classification", inventoryHandler.AddClassificationPage, requireStaff)
	e.POST("/inv/add-classification", inventoryHandler.AddClassification, requireStaff)
	e.GET("/inv/add-inventory", inventoryHandler.AddVehiclePage, requireStaff)
	e.POST("/inv/add-inventory", inventoryHandler.AddVehicle, requireStaff)

	// --- Test drives ---
	e.GET("/test-drive/request/:invID", testDriveHandler.RequestPage, requireLogin)
	e.POST("/test-drive/request/:invID", testDriveHandler.Request, requireLogin)
	e.GET("/test-drive/history", testDriveHandler.History, requireLogin)
	e.GET("/test-drive/manage", testDriveHandler.Management, requireStaff)
	e.POST("/test-drive/update-status", testDriveHandler.UpdateStatus, requireStaff)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, nil
}

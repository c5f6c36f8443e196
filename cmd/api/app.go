package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-restaurante/docs"
	"github.com/hugohenrick/erp-restaurante/internal/adapter/api/controller"
	"github.com/hugohenrick/erp-restaurante/internal/adapter/api/route"
	"github.com/hugohenrick/erp-restaurante/internal/adapter/repository"
	"github.com/hugohenrick/erp-restaurante/internal/adapter/repository/memory"
	"github.com/hugohenrick/erp-restaurante/internal/infrastructure/config"
	"github.com/hugohenrick/erp-restaurante/internal/infrastructure/database"
	"github.com/hugohenrick/erp-restaurante/internal/infrastructure/telemetry"
	"github.com/hugohenrick/erp-restaurante/internal/service"
	"github.com/hugohenrick/erp-restaurante/pkg/logger"
	"github.com/hugohenrick/erp-restaurante/pkg/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const serviceName = "erp-restaurante"

// mesas criadas no armazenamento em memória
const memoryTables = 10

// App representa a aplicação e suas dependências
type App struct {
	config   *config.Config
	logger   logger.Logger
	router   *gin.Engine
	db       *database.PostgresDB
	shutdown telemetry.ShutdownFunc

	tabController      *controller.TabController
	lineItemController *controller.LineItemController
	paymentController  *controller.PaymentController
	tableController    *controller.TableController
	stockController    *controller.StockController
}

// NewApp cria uma nova instância do aplicativo
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	shutdown, err := telemetry.Setup(context.Background(), telemetry.Config{
		ServiceName: serviceName,
		Environment: cfg.Env,
		Exporter:    cfg.TracingExporter,
		Endpoint:    cfg.OTLPEndpoint,
	})
	if err != nil {
		return nil, err
	}

	app := &App{config: cfg, logger: log, shutdown: shutdown}

	// Configurar armazenamento
	var uow service.UnitOfWork
	switch cfg.StorageDriver {
	case config.StorageMemory:
		store := memory.NewStore()
		for n := 1; n <= memoryTables; n++ {
			store.SeedTable(n)
		}
		uow = store
		log.Warn("usando armazenamento em memória; os dados não são persistidos")
	default:
		if cfg.MigrationsAuto {
			if err := database.RunMigrations(cfg.Database); err != nil {
				return nil, err
			}
			log.Info("migrações aplicadas")
		}
		db, err := database.NewPostgresDB(cfg.Database)
		if err != nil {
			return nil, err
		}
		app.db = db
		uow = repository.NewPostgresUnitOfWork(db)
	}

	// Criar serviços
	cache := service.NewAvailabilityCache()
	tabService := service.NewTabService(uow, log)
	lineItemService := service.NewLineItemService(uow, cache, log)
	paymentService := service.NewPaymentService(uow, log)
	tableService := service.NewTableService(uow, log)
	stockService := service.NewStockService(uow, cache, log)

	// Criar controllers
	app.tabController = controller.NewTabController(tabService, log)
	app.lineItemController = controller.NewLineItemController(lineItemService, log)
	app.paymentController = controller.NewPaymentController(paymentService, log)
	app.tableController = controller.NewTableController(tableService, log)
	app.stockController = controller.NewStockController(stockService, log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	router.Use(middleware.Timeout(cfg.RequestTimeout))
	app.router = router

	app.SetupRoutes(cfg.BasePath)
	return app, nil
}

func corsConfig(origins []string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	c.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions}
	c.MaxAge = 12 * time.Hour

	if len(origins) == 0 {
		c.AllowAllOrigins = true
		return c
	}

	for _, o := range origins {
		if o == "*" {
			c.AllowAllOrigins = true
			return c
		}
	}
	c.AllowOrigins = origins
	return c
}

// SetupRoutes configura as rotas da aplicação
func (a *App) SetupRoutes(basePath string) {
	docs.SwaggerInfo.BasePath = basePath

	a.router.GET("/health", a.health)
	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := a.router.Group(basePath)
	route.RegisterTabRoutes(api, a.tabController, a.lineItemController, a.paymentController)
	route.RegisterLineItemRoutes(api, a.lineItemController)
	route.RegisterPaymentRoutes(api, a.paymentController)
	route.RegisterTableRoutes(api, a.tableController)
	route.RegisterStockRoutes(api, a.stockController)
}

func (a *App) health(c *gin.Context) {
	if a.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := a.db.Pool().Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "storage": a.config.StorageDriver})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": "1.0.0",
		"storage": a.config.StorageDriver,
	})
}

// Start inicia o servidor HTTP e aguarda SIGINT/SIGTERM para encerrar
func (a *App) Start() error {
	srv := &http.Server{
		Addr:              a.config.HTTPAddr,
		Handler:           telemetry.Handler(a.router, serviceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("servidor iniciado", "addr", a.config.HTTPAddr, "storage", a.config.StorageDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		a.logger.Info("encerrando servidor", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// GetRouter retorna o router da aplicação
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.shutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.shutdown(ctx); err != nil {
			a.logger.Warn("erro ao encerrar rastreamento", "error", err)
		}
	}
	if a.db != nil {
		a.db.Close()
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	appmodules "sitesearch/app"
	"sitesearch/app/jobs"
	coremodules "sitesearch/core/app"
	"sitesearch/core/app/pages"
	"sitesearch/core/app/settings"
	"sitesearch/core/config"
	"sitesearch/core/database"
	"sitesearch/core/logger"
	"sitesearch/core/module"
	"sitesearch/core/plugins"
	"sitesearch/core/router"
	"sitesearch/core/scheduler"
	"sitesearch/core/search"
	"sitesearch/core/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title Site Search API
// @description Ranked site search across CMS pages, photo albums and blog posts
// @version 1.0.0
// @BasePath /api
// @schemes http https
// @produce json

// App represents the site search application
type App struct {
	config    *config.Config
	db        *database.Database
	router    *gin.Engine
	logger    logger.Logger
	storage   storage.Provider
	plugins   *plugins.Registry
	pages     *pages.Index
	settings  *settings.SettingsService
	search    *search.Registry
	scheduler *scheduler.CronScheduler

	verbose bool
}

// New creates a new application instance
func New() *App {
	verbose := false
	for _, arg := range os.Args {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
			break
		}
	}
	return &App{verbose: verbose}
}

// Start initializes and starts the application
func (app *App) Start(ctx context.Context) error {
	return app.
		loadEnvironment().
		initConfig().
		initLogger().
		initDatabase().
		initInfrastructure().
		initRouter().
		registerModules().
		setupRoutes().
		initScheduler().
		displayServerInfo().
		run(ctx)
}

// loadEnvironment loads environment variables from .env when present
func (app *App) loadEnvironment() *App {
	_ = godotenv.Load()
	return app
}

func (app *App) initConfig() *App {
	app.config = config.NewConfig()
	return app
}

func (app *App) initLogger() *App {
	log, err := logger.NewLogger(logger.Config{
		Environment: app.config.Env,
		LogPath:     app.config.LogPath,
		Level:       app.config.LogLevel,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	app.logger = log
	return app
}

func (app *App) initDatabase() *App {
	db, err := database.InitDB(app.config)
	if err != nil {
		app.logger.Error("Failed to initialize database", logger.Err(err))
		panic(fmt.Sprintf("Database initialization failed: %v", err))
	}

	app.db = db

	if app.verbose {
		app.logger.Info("Database connected", logger.String("driver", app.config.DBDriver))
	}

	return app
}

// initInfrastructure builds the shared services modules depend on
func (app *App) initInfrastructure() *App {
	app.plugins = plugins.NewRegistry(app.config.InstalledPlugins...)

	store, err := storage.New(storage.Config{
		Provider:  app.config.StorageProvider,
		BaseURL:   app.config.StorageBaseURL,
		Bucket:    app.config.StorageBucket,
		Region:    app.config.StorageRegion,
		Endpoint:  app.config.StorageEndpoint,
		APIKey:    app.config.StorageAPIKey,
		APISecret: app.config.StorageAPISecret,
		URLTTL:    app.config.StorageURLTTL,
	})
	if err != nil {
		app.logger.Error("Failed to initialize storage", logger.Err(err))
		panic(fmt.Sprintf("Storage initialization failed: %v", err))
	}
	app.storage = store

	app.pages = pages.NewIndex(os.DirFS(app.config.PagesPath), app.config.AppURL, app.logger)
	app.settings = settings.NewSettingsService(app.db.DB, app.logger)
	app.search = search.NewRegistry()

	if app.verbose {
		app.logger.Info("Infrastructure initialized",
			logger.String("storage", app.config.StorageProvider),
			logger.Strings("plugins", app.plugins.Installed()),
			logger.String("pages", app.config.PagesPath))
	}

	return app
}

func (app *App) initRouter() *App {
	app.router = router.New(app.logger, router.Options{
		Production:     app.config.IsProduction(),
		AllowedOrigins: app.config.CORSAllowedOrigins,
		SkipLogging:    []string{"/health"},
	})
	app.router.Static("/storage", "./storage")
	return app
}

// registerModules initializes core modules, then content plugin modules
func (app *App) registerModules() *App {
	deps := module.Dependencies{
		DB:       app.db.DB,
		Router:   app.router.Group("/api"),
		Logger:   app.logger,
		Config:   app.config,
		Plugins:  app.plugins,
		Storage:  app.storage,
		Settings: app.settings,
		Search:   app.search,
	}

	orchestrator := module.NewOrchestrator(
		module.NewInitializer(app.logger),
		coremodules.NewCoreModules(app.settings, app.pages),
		appmodules.NewAppModules(app.pages),
	)
	initialized := orchestrator.InitializeAll(deps)

	app.logger.Info("Modules initialized",
		logger.Int("count", len(initialized)),
		logger.Strings("providers", app.search.Identifiers()))

	return app
}

func (app *App) setupRoutes() *App {
	app.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": app.config.Version,
		})
	})

	app.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": app.config.Version,
		})
	})

	return app
}

func (app *App) initScheduler() *App {
	app.scheduler = jobs.SetupScheduler(app.pages, app.config.PagesReindexCron, app.logger)
	app.scheduler.Start()
	return app
}

// displayServerInfo shows server startup information
func (app *App) displayServerInfo() *App {
	port := app.config.ServerAddress

	fmt.Printf("\n\033[1;32mSite Search Ready!\033[0m\n\n")
	fmt.Printf("\033[36mServer URLs:\033[0m\n")
	fmt.Printf("  Local:   http://localhost%s\n", port)
	fmt.Printf("  Network: http://%s%s\n\n", app.getLocalIP(), port)
	fmt.Printf("\033[36mSearch:\033[0m\n")
	fmt.Printf("  http://localhost%s/api/search?q=...\n\n", port)

	return app
}

// getLocalIP gets the local network IP address
func (app *App) getLocalIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "localhost"
	}

	for _, addr := range addrs {
		if ipnet, ok := addr.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String()
			}
		}
	}
	return "localhost"
}

// run serves HTTP until ctx is cancelled, then shuts down gracefully
func (app *App) run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              app.config.ServerAddress,
		Handler:           app.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if app.verbose {
			app.logger.Info("Server starting", logger.String("address", srv.Addr))
		}
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		app.cleanup()
		if strings.Contains(err.Error(), "address already in use") {
			return fmt.Errorf("port %s is already in use. Change SERVER_ADDRESS in your .env file", srv.Addr)
		}
		return fmt.Errorf("server failed to start: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	app.cleanup()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}

func (app *App) cleanup() {
	if app.scheduler != nil {
		app.scheduler.Stop()
	}
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Warn("Failed to close database", logger.Err(err))
		}
	}
	_ = app.logger.Sync()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := New().Start(ctx); err != nil {
		fmt.Printf("\n\033[31mApplication failed to start:\033[0m\n%v\n\n", err)
		os.Exit(1)
	}
}

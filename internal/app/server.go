package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"crm-service/internal/cache"
	"crm-service/internal/config"
	"crm-service/internal/database"
	"crm-service/internal/firebase"
	"crm-service/internal/handlers"
	"crm-service/internal/middleware"
	"crm-service/internal/pricing"
	"crm-service/internal/repositories"
	"crm-service/internal/services"
	"crm-service/internal/storage"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

// Deps are the stores and clients the HTTP surface is built from.
type Deps struct {
	DB         *gorm.DB
	Cache      cache.Cache
	Objects    services.ObjectStore // nil disables uploads
	UploadsDir string               // set when Objects writes to local disk
	Remote     *firebase.Client     // nil when Firebase is not configured
	Schedule   pricing.Schedule
	Registry   *prometheus.Registry
	Logger     *slog.Logger
}

type Server struct {
	cfg     *config.Config
	echo    *echo.Echo
	logger  *slog.Logger
	limiter *middleware.RateLimiter
	closers []func() error
}

// NewServer connects every backing store named in cfg and builds the router.
// Redis, GCS and Firebase are optional: without them the server falls back to
// an in-process cache, local uploads and an unconfigured sync service.
func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Server, error) {
	s := &Server{cfg: cfg, logger: logger}

	db, err := database.Initialize(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	s.closers = append(s.closers, db.Close)

	if cfg.Firebase.RunRetention > 0 {
		if pruned, err := db.PruneSyncRuns(cfg.Firebase.RunRetention); err != nil {
			logger.Warn("failed to prune sync runs", "error", err)
		} else if pruned > 0 {
			logger.Info("pruned sync runs", "count", pruned)
		}
	}

	c, err := s.newCache(cfg.Cache)
	if err != nil {
		s.Close()
		return nil, err
	}

	objects, uploadsDir, err := s.newObjectStore(ctx, cfg.Storage)
	if err != nil {
		s.Close()
		return nil, err
	}

	remote := s.newRemote(ctx, &cfg.Firebase)

	schedule := pricing.NewSchedule(cfg.Pricing.StartQty, cfg.Pricing.StepQty, cfg.Pricing.StepPct, cfg.Pricing.MaxPct)
	if cfg.Pricing.ScheduleFile != "" {
		if schedule, err = pricing.LoadSchedule(cfg.Pricing.ScheduleFile); err != nil {
			s.Close()
			return nil, err
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s.limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	s.echo = NewEcho(cfg, Deps{
		DB:         db.DB,
		Cache:      c,
		Objects:    objects,
		UploadsDir: uploadsDir,
		Remote:     remote,
		Schedule:   schedule,
		Registry:   registry,
		Logger:     logger,
	}, s.limiter)

	return s, nil
}

// NewEcho wires repositories, services and handlers over deps and returns the
// configured router. A nil limiter disables rate limiting.
func NewEcho(cfg *config.Config, deps Deps, limiter *middleware.RateLimiter) *echo.Echo {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	customerRepo := repositories.NewCustomerRepository(deps.DB)
	taskRepo := repositories.NewTaskRepository(deps.DB)
	productRepo := repositories.NewProductRepository(deps.DB)
	runRepo := repositories.NewSyncRunRepository(deps.DB)

	metrics := services.NewPrometheusMetrics(registry)
	customerLogger := services.NewCustomerLogger(logger)

	customerService := services.NewCustomerService(customerRepo, deps.Objects, deps.Cache, cfg.Cache.CityTTL, customerLogger, metrics)
	photoService := services.NewPhotoService(customerRepo, deps.Objects, cfg.Storage.MaxUploadBytes, customerLogger, metrics)
	taskService := services.NewTaskService(taskRepo, customerRepo, customerLogger, metrics)
	pricingService := services.NewPricingService(deps.Schedule, productRepo, deps.Cache, cfg.Cache.CatalogTTL, metrics, logger)
	syncService := services.NewSyncService(services.SyncServiceDeps{
		Remote:    deps.Remote,
		Claims:    deps.Remote,
		Customers: customerRepo,
		Tasks:     taskRepo,
		Runs:      runRepo,
		Cache:     deps.Cache,
		Metrics:   metrics,
		Logger:    services.NewSyncLogger(logger),
		Collections: services.SyncCollections{
			Users:  cfg.Firebase.UsersCollection,
			Orders: cfg.Firebase.OrdersCollection,
			Staff:  cfg.Firebase.StaffCollection,
		},
	})

	h := &Handlers{
		Health:    handlers.NewHealthCheckHandler(deps.DB, deps.Remote.Configured),
		Customers: handlers.NewCustomerHandler(customerService),
		Photos:    handlers.NewPhotoHandler(photoService),
		Tasks:     handlers.NewTaskHandler(taskService),
		Products:  handlers.NewProductHandler(pricingService),
		Sync:      handlers.NewSyncHandler(syncService),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.NewHTTPErrorHandler(registry, logger)

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery(logger))
	e.Use(middleware.SecurityHeaders(cfg.Storage.PublicPrefix))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:  cfg.Server.CORSAllowOrigins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderContentType, echo.HeaderAuthorization, middleware.TraceIDHeader},
		ExposeHeaders: []string{middleware.TraceIDHeader},
	}))
	e.Use(echomw.BodyLimit(cfg.Server.BodyLimit))
	if limiter != nil {
		e.Use(limiter.Middleware())
	}

	uploadsDir := ""
	if deps.Objects != nil {
		uploadsDir = deps.UploadsDir
	}
	SetupRouter(e, h, RouterOptions{
		Gatherer:      registry,
		UploadsDir:    uploadsDir,
		UploadsPrefix: cfg.Storage.PublicPrefix,
	})

	return e
}

// Start serves HTTP until Shutdown is called. It returns nil after a clean shutdown.
func (s *Server) Start(ctx context.Context) error {
	go s.limiter.Run(ctx)

	s.echo.Server.ReadTimeout = s.cfg.Server.ReadTimeout
	s.echo.Server.WriteTimeout = s.cfg.Server.WriteTimeout

	addr := s.cfg.Server.Address()
	s.logger.Info("starting HTTP server", "addr", addr, "environment", s.cfg.Server.Environment)

	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests, then closes the backing stores.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.echo.Shutdown(ctx)
	s.Close()
	return err
}

// Close releases the backing stores in reverse order of creation.
func (s *Server) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			s.logger.Warn("failed to close resource", "error", err)
		}
	}
	s.closers = nil
}

func (s *Server) newCache(cfg config.CacheConfig) (cache.Cache, error) {
	if cfg.RedisAddr == "" {
		s.logger.Info("REDIS_ADDR not set, using in-process cache")
		return cache.NewMemoryCache(), nil
	}

	client, err := cache.NewRedisClient(cache.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		PoolSize: cfg.RedisPoolSize,
	})
	if err != nil {
		return nil, err
	}
	s.closers = append(s.closers, client.Close)

	s.logger.Info("connected to Redis", "addr", cfg.RedisAddr)
	return cache.NewRedisCache(client, cfg.KeyPrefix), nil
}

func (s *Server) newObjectStore(ctx context.Context, cfg config.StorageConfig) (services.ObjectStore, string, error) {
	if cfg.GCSBucket != "" {
		store, err := storage.NewGCSStore(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, "", err
		}
		s.closers = append(s.closers, store.Close)
		s.logger.Info("storing uploads in GCS", "bucket", cfg.GCSBucket)
		return store, "", nil
	}

	store, err := storage.NewLocalStore(cfg.UploadsDir, cfg.PublicPrefix)
	if err != nil {
		return nil, "", err
	}
	return store, store.Dir(), nil
}

// newRemote never fails startup: bad credentials leave the sync endpoints
// answering SYNC_001 while the rest of the API keeps working.
func (s *Server) newRemote(ctx context.Context, cfg *config.FirebaseConfig) *firebase.Client {
	initCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	app, err := firebase.NewApp(initCtx, cfg)
	if err != nil {
		s.logger.Error("firebase admin initialization failed", "error", err)
		return nil
	}
	if app == nil {
		s.logger.Warn("firebase admin credentials not set, sync endpoints disabled")
		return nil
	}

	client, err := firebase.NewClient(ctx, app)
	if err != nil {
		s.logger.Error("firebase clients could not be opened", "error", err)
		return nil
	}
	s.closers = append(s.closers, client.Close)
	return client
}

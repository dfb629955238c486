// Package trackerd implements app.Runner for the bridge tracker process.
package trackerd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/pkg/amb"
	apphttp "github.com/chainsafe/bridge-tracker/pkg/app/http"
	"github.com/chainsafe/bridge-tracker/pkg/chains"
	"github.com/chainsafe/bridge-tracker/pkg/config"
	"github.com/chainsafe/bridge-tracker/pkg/ethereum"
	"github.com/chainsafe/bridge-tracker/pkg/pgutil"
	"github.com/chainsafe/bridge-tracker/pkg/transfer/service"
	"github.com/chainsafe/bridge-tracker/pkg/transferstore"
)

// Server holds configuration for the tracker process.
type Server struct {
	cfg *config.Config
}

// NewServer initializes a new tracker Server.
func NewServer(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

// Run connects to the configured chains, starts the transfer service and
// serves its HTTP API. It blocks until an OS shutdown signal is received or a
// fatal server error occurs.
func (s *Server) Run() error {
	if s.cfg == nil {
		return fmt.Errorf("nil config")
	}
	cfg := s.cfg

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting bridge transfer tracker", zap.Int("chains", len(cfg.Chains)))

	registry, err := chains.NewRegistry(cfg.Chains)
	if err != nil {
		return fmt.Errorf("build chain registry: %w", err)
	}

	pool, err := ethereum.DialPool(ctx, cfg.Chains, logger)
	if err != nil {
		return fmt.Errorf("dial chain RPC: %w", err)
	}
	defer pool.Close()

	store, closeStore, err := s.openStore(ctx, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := service.NewService(service.Dependencies{
		Registry:   registry,
		Receipts:   pool,
		Messages:   amb.NewGraphClient(registry.GraphEndpoints(), nil, logger),
		Executions: amb.NewStatusChecker(registry, pool, logger),
		Store:      store,
	}, cfg.Tracker, logger)
	defer svc.Close()

	router := s.newRouter(service.NewLog(svc, logger), logger)

	return apphttp.ServeAndWait(ctx, router, logger, &cfg.Server)
}

// openStore returns the postgres store when the database is enabled and an
// in-memory store otherwise.
func (s *Server) openStore(ctx context.Context, logger *zap.Logger) (transferstore.Store, func(), error) {
	if !s.cfg.Database.Enabled {
		logger.Info("Database disabled, keeping transfer history in memory")
		return transferstore.NewMemoryStore(), func() {}, nil
	}

	db, err := pgutil.ConnectDB(ctx, &s.cfg.Database, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("connect tracker db: %w", err)
	}
	if err := checkSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	logger.Info("Database connection established", zap.String("database", s.cfg.Database.Database))

	return transferstore.NewStore(db), func() { _ = db.Close() }, nil
}

// checkSchema fails early if the migrations were not applied.
func checkSchema(ctx context.Context, db *bun.DB) error {
	exists, err := db.NewSelect().
		TableExpr("information_schema.tables").
		Where("table_schema = current_schema()").
		Where("table_name = ?", "tracked_transfers").
		Exists(ctx)
	if err != nil {
		return fmt.Errorf("check tracker schema: %w", err)
	}
	if !exists {
		return fmt.Errorf("table tracked_transfers is missing, run the migrate command first")
	}
	return nil
}

func (s *Server) newRouter(svc service.Service, logger *zap.Logger) http.Handler {
	cfg := s.cfg

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apphttp.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if !cfg.Monitoring.Disabled {
		r.Handle(cfg.Monitoring.MetricsPath, promhttp.Handler())
		logger.Info("Metrics enabled", zap.String("path", cfg.Monitoring.MetricsPath))
	}

	service.RegisterRoutes(r, svc, logger)

	return r
}

package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/hockey-league/internal/config"
	"github.com/riskibarqy/hockey-league/internal/domain/playerstats"
	"github.com/riskibarqy/hockey-league/internal/domain/scoreevent"
	"github.com/riskibarqy/hockey-league/internal/infrastructure/repository/breaker"
	"github.com/riskibarqy/hockey-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/hockey-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/hockey-league/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/hockey-league/internal/platform/id"
	"github.com/riskibarqy/hockey-league/internal/platform/logging"
	"github.com/riskibarqy/hockey-league/internal/platform/resilience"
	"github.com/riskibarqy/hockey-league/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

type repositories struct {
	ledger scoreevent.LedgerRepository
	stats  playerstats.Repository
	close  func() error
}

// NewHTTPServer wires storage, services and the router. The returned closer
// releases the storage backend and must run after the server has shut down.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	ids := idgen.NewTimeOrderedGenerator()
	scoreEventSvc := usecase.NewScoreEventService(repos.ledger, ids, logger.Named("score_events"))
	statsSvc := usecase.NewPlayerEventStatsService(repos.stats, ids, logger.Named("player_event_stats"), cfg.StatsEnsureMaxWorkers)

	handler := httpapi.NewHandler(scoreEventSvc, statsSvc, logger.Named("httpapi"))
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, repos.close, nil
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		store := memory.NewStore(memory.SeedMatches())
		logger.Info("storage ready", "driver", config.StorageDriverMemory)
		return repositories{
			ledger: memory.NewLedgerRepository(store),
			stats:  memory.NewPlayerEventStatsRepository(store),
			close:  func() error { return nil },
		}, nil
	case config.StorageDriverPostgres:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		if cfg.DBBootstrapSeed {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				_ = db.Close()
				return repositories{}, fmt.Errorf("bootstrap seed: %w", err)
			}
		}
		logger.Info("storage ready",
			"driver", config.StorageDriverPostgres,
			"db_name", dbNameFromURL(cfg.DBURL),
			"max_open_conns", cfg.DBMaxOpenConns,
			"bootstrap_seed", cfg.DBBootstrapSeed,
			"circuit_enabled", cfg.DBCircuitEnabled,
		)
		breakerCfg := resilience.CircuitBreakerConfig{
			Enabled:          cfg.DBCircuitEnabled,
			FailureThreshold: cfg.DBCircuitFailureCount,
			OpenTimeout:      cfg.DBCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.DBCircuitHalfOpenMaxReq,
		}
		dbBreaker := resilience.NewCircuitBreakerFromConfig(breakerCfg)
		return repositories{
			ledger: breaker.NewLedgerRepository(postgres.NewLedgerRepository(db), dbBreaker, logger),
			stats:  breaker.NewPlayerEventStatsRepository(postgres.NewPlayerEventStatsRepository(db), dbBreaker, logger),
			close:  db.Close,
		}, nil
	default:
		return repositories{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

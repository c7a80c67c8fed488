package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/cup-results/internal/config"
	"github.com/riskibarqy/cup-results/internal/domain/document"
	"github.com/riskibarqy/cup-results/internal/domain/standing"
	"github.com/riskibarqy/cup-results/internal/infrastructure/repository/breaker"
	"github.com/riskibarqy/cup-results/internal/infrastructure/repository/filesystem"
	"github.com/riskibarqy/cup-results/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cup-results/internal/infrastructure/repository/objectstore"
	"github.com/riskibarqy/cup-results/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/cup-results/internal/platform/id"
	"github.com/riskibarqy/cup-results/internal/platform/logging"
	"github.com/riskibarqy/cup-results/internal/platform/resilience"
	"github.com/riskibarqy/cup-results/internal/usecase"
)

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	store, err := NewDocumentStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	rosterSvc := usecase.NewRosterService(store, cfg.RosterDocument, cfg.CacheTTL, logger)
	matchSvc, err := usecase.NewMatchService(
		store,
		usecase.MatchServiceConfig{Document: cfg.MatchesDocument, CacheTTL: cfg.CacheTTL},
		rosterSvc,
		idgen.NewRandomGenerator(),
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("build match service: %w", err)
	}
	standingsSvc := usecase.NewStandingsService(
		matchSvc,
		standing.NewRanker(cfg.CollationLang),
		cfg.Groups,
		cfg.StandingWorkers,
	)
	staffSvc := usecase.NewStaffService(store, cfg.StaffDocument, cfg.CacheTTL, logger)
	awardSvc := usecase.NewAwardService(
		store,
		usecase.AwardServiceConfig{Document: cfg.AwardsDocument, Lang: cfg.CollationLang},
		rosterSvc,
		staffSvc,
		logger,
	)

	handler := httpapi.NewHandler(matchSvc, standingsSvc, rosterSvc, awardSvc, staffSvc, logger)
	router := httpapi.NewRouter(handler, logger, httpapi.RouterConfig{
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		AdminCode:          cfg.AdminCode,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// NewDocumentStore builds the store selected by STORAGE_DRIVER. Remote
// stores sit behind a circuit breaker.
func NewDocumentStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (document.Store, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		logger.Warn("using in-memory document store, data is lost on restart")
		return memory.NewDocumentStore(nil), nil
	case config.StorageFilesystem:
		store, err := filesystem.NewDocumentStore(cfg.StorageDir)
		if err != nil {
			return nil, fmt.Errorf("open filesystem store: %w", err)
		}
		logger.Info("using filesystem document store", "dir", cfg.StorageDir)
		return store, nil
	case config.StorageS3:
		client, err := objectstore.NewClient(ctx, objectstore.Config{
			Bucket:          cfg.S3Bucket,
			Region:          cfg.S3Region,
			Endpoint:        cfg.S3Endpoint,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
			Prefix:          cfg.S3Prefix,
		})
		if err != nil {
			return nil, fmt.Errorf("build s3 client: %w", err)
		}
		store, err := objectstore.NewDocumentStore(client, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			return nil, fmt.Errorf("open s3 store: %w", err)
		}
		logger.Info("using s3 document store",
			"bucket", cfg.S3Bucket,
			"endpoint", cfg.S3Endpoint,
			"prefix", cfg.S3Prefix,
			"circuit_enabled", cfg.StorageCircuitEnabled,
		)
		return breaker.NewDocumentStore(store, resilience.CircuitBreakerConfig{
			Enabled:          cfg.StorageCircuitEnabled,
			FailureThreshold: cfg.StorageCircuitFailureCount,
			OpenTimeout:      cfg.StorageCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.StorageCircuitHalfOpenMax,
		}, logger), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

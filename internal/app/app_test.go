package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/cup-results/internal/config"
	"github.com/riskibarqy/cup-results/internal/infrastructure/repository/breaker"
	"github.com/riskibarqy/cup-results/internal/infrastructure/repository/filesystem"
	"github.com/riskibarqy/cup-results/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/cup-results/internal/platform/logging"
	"golang.org/x/text/language"
)

func testConfig(t *testing.T) config.Config {
	t.Helper()

	return config.Config{
		AppEnv:          config.EnvDev,
		HTTPAddr:        ":0",
		ReadTimeout:     time.Second,
		WriteTimeout:    time.Second,
		Groups:          []string{"A", "B"},
		CollationLang:   language.Und,
		CacheTTL:        time.Minute,
		StandingWorkers: 2,
		StorageDriver:   config.StorageFilesystem,
		StorageDir:      filepath.Join(t.TempDir(), "data"),
		MatchesDocument: "matches.csv",
		RosterDocument:  "roster.json",
		AwardsDocument:  "awards.json",
	}
}

func TestNewDocumentStore(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	logger := logging.NewNop()

	t.Run("memory", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.StorageDriver = config.StorageMemory
		store, err := NewDocumentStore(ctx, cfg, logger)
		if err != nil {
			t.Fatalf("new store: %v", err)
		}
		if _, ok := store.(*memory.DocumentStore); !ok {
			t.Fatalf("expected memory store, got %T", store)
		}
	})

	t.Run("filesystem", func(t *testing.T) {
		store, err := NewDocumentStore(ctx, testConfig(t), logger)
		if err != nil {
			t.Fatalf("new store: %v", err)
		}
		if _, ok := store.(*filesystem.DocumentStore); !ok {
			t.Fatalf("expected filesystem store, got %T", store)
		}
	})

	t.Run("s3 is wrapped in a breaker", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.StorageDriver = config.StorageS3
		cfg.S3Bucket = "cup"
		cfg.S3Region = "auto"
		cfg.S3Endpoint = "http://127.0.0.1:9000"
		cfg.S3AccessKeyID = "key"
		cfg.S3SecretAccessKey = "secret"
		cfg.StorageCircuitEnabled = true
		store, err := NewDocumentStore(ctx, cfg, logger)
		if err != nil {
			t.Fatalf("new store: %v", err)
		}
		if _, ok := store.(*breaker.DocumentStore); !ok {
			t.Fatalf("expected breaker store, got %T", store)
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.StorageDriver = "tape"
		if _, err := NewDocumentStore(ctx, cfg, logger); err == nil {
			t.Fatalf("expected error for unknown driver")
		}
	})
}

func TestNewHTTPServer(t *testing.T) {
	t.Parallel()

	srv, err := NewHTTPServer(context.Background(), testConfig(t), logging.NewNop())
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}
	if srv.Handler == nil || srv.Addr != ":0" {
		t.Fatalf("unexpected server: %+v", srv)
	}

	cfg := testConfig(t)
	cfg.HTTPAddr = ""
	if _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

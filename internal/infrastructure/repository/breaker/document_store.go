package breaker

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/cup-results/internal/domain/document"
	"github.com/riskibarqy/cup-results/internal/platform/logging"
	"github.com/riskibarqy/cup-results/internal/platform/resilience"
)

// DocumentStore guards a remote store with a circuit breaker. A missing
// document is an answer, not a failure, and does not count against the
// breaker.
type DocumentStore struct {
	next    document.Store
	breaker *resilience.CircuitBreaker
	logger  *logging.Logger
}

func NewDocumentStore(next document.Store, cfg resilience.CircuitBreakerConfig, logger *logging.Logger) *DocumentStore {
	if logger == nil {
		logger = logging.Default()
	}
	return &DocumentStore{
		next:    next,
		breaker: resilience.NewCircuitBreaker(cfg),
		logger:  logger,
	}
}

func (s *DocumentStore) Load(ctx context.Context, name string) ([]byte, error) {
	var (
		data     []byte
		notFound error
	)
	err := s.breaker.Execute(func() error {
		out, err := s.next.Load(ctx, name)
		if errors.Is(err, document.ErrNotFound) {
			notFound = err
			return nil
		}
		if err != nil {
			return err
		}
		data = out
		return nil
	})
	if err != nil {
		return nil, s.reject(ctx, "load", name, err)
	}
	if notFound != nil {
		return nil, notFound
	}
	return data, nil
}

func (s *DocumentStore) Save(ctx context.Context, name string, data []byte) error {
	err := s.breaker.Execute(func() error {
		return s.next.Save(ctx, name, data)
	})
	if err != nil {
		return s.reject(ctx, "save", name, err)
	}
	return nil
}

func (s *DocumentStore) State() resilience.CircuitState {
	return s.breaker.State()
}

func (s *DocumentStore) reject(ctx context.Context, op, name string, err error) error {
	if errors.Is(err, resilience.ErrCircuitOpen) {
		s.logger.WarnContext(ctx, "document store circuit breaker rejected request",
			"op", op,
			"document", name,
			"state", s.breaker.State(),
		)
		return fmt.Errorf("document store is temporarily unavailable: %w", err)
	}
	return err
}

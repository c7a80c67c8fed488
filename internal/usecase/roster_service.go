package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/cup-results/internal/domain/document"
	"github.com/riskibarqy/cup-results/internal/domain/roster"
	"github.com/riskibarqy/cup-results/internal/platform/cache"
	"github.com/riskibarqy/cup-results/internal/platform/csvdoc"
	"github.com/riskibarqy/cup-results/internal/platform/logging"
)

const rosterCacheKey = "roster"

type RosterService struct {
	store    document.Store
	document string
	cache    *cache.Store[roster.Roster]
	logger   *logging.Logger
	writeMu  sync.Mutex
}

func NewRosterService(store document.Store, documentName string, ttl time.Duration, logger *logging.Logger) *RosterService {
	if logger == nil {
		logger = logging.Default()
	}
	return &RosterService{
		store:    store,
		document: documentName,
		cache:    cache.NewStore[roster.Roster](ttl),
		logger:   logger,
	}
}

// Roster returns the current roster. A missing roster document is an empty
// roster, which turns off team checks.
func (s *RosterService) Roster(ctx context.Context) (roster.Roster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Roster", documentAttr(s.document))
	defer span.End()

	return s.cache.GetOrLoad(ctx, rosterCacheKey, func(ctx context.Context) (roster.Roster, error) {
		data, err := s.store.Load(ctx, s.document)
		if errors.Is(err, document.ErrNotFound) {
			s.logger.WarnContext(ctx, "roster document missing, team checks disabled", "document", s.document)
			return roster.Roster{}, nil
		}
		if err != nil {
			return nil, storeError("load", s.document, err)
		}

		r, err := roster.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", s.document, err)
		}
		return r, nil
	})
}

// Players lists the selectable players of one team.
func (s *RosterService) Players(ctx context.Context, team string) ([]roster.PlayerOption, error) {
	team = strings.TrimSpace(team)
	if team == "" {
		return nil, fmt.Errorf("%w: team is required", ErrInvalidInput)
	}

	r, err := s.Roster(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := r.Resolve(team); !ok {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, team)
	}
	return r.PlayerOptions(team), nil
}

// Check reports integrity warnings for records against the current roster.
func (s *RosterService) Check(ctx context.Context, records []csvdoc.Record) ([]roster.Warning, error) {
	r, err := s.Roster(ctx)
	if err != nil {
		return nil, err
	}
	return roster.Check(r, records), nil
}

// Replace validates and stores a new roster document.
func (s *RosterService) Replace(ctx context.Context, data []byte) (roster.Roster, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Replace", documentAttr(s.document))
	defer span.End()

	r, err := roster.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	encoded, err := r.Encode()
	if err != nil {
		return nil, fmt.Errorf("encode roster: %w", err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.store.Save(ctx, s.document, encoded); err != nil {
		return nil, spanFailure(span, storeError("save", s.document, err))
	}
	s.cache.Delete(ctx, rosterCacheKey)

	s.logger.InfoContext(ctx, "roster replaced", "document", s.document, "teams", len(r))
	return r, nil
}

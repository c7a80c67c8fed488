package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/cup-results/internal/domain/standing"
	"github.com/riskibarqy/cup-results/internal/platform/csvdoc"
	"go.opentelemetry.io/otel/attribute"
)

// RecordSource provides the current match rows.
type RecordSource interface {
	Records(ctx context.Context) ([]csvdoc.Record, error)
}

// GroupTable is the ranked table of one group. Rank is the 1-based index.
type GroupTable struct {
	Group     string
	Standings []standing.Standing
}

type StandingsService struct {
	source  RecordSource
	ranker  standing.Ranker
	groups  []string
	workers int
}

func NewStandingsService(source RecordSource, ranker standing.Ranker, groups []string, workers int) *StandingsService {
	if workers < 1 {
		workers = 1
	}
	return &StandingsService{
		source:  source,
		ranker:  ranker,
		groups:  append([]string(nil), groups...),
		workers: workers,
	}
}

func (s *StandingsService) Groups() []string {
	return append([]string(nil), s.groups...)
}

// Group computes the table of one group. A group without matches yields an
// empty table.
func (s *StandingsService) Group(ctx context.Context, group string) (GroupTable, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Group")
	defer span.End()

	group = strings.TrimSpace(group)
	if group == "" {
		return GroupTable{}, fmt.Errorf("%w: group is required", ErrInvalidInput)
	}
	span.SetAttributes(attribute.String("group", group))

	records, err := s.source.Records(ctx)
	if err != nil {
		return GroupTable{}, err
	}
	return GroupTable{Group: group, Standings: s.ranker.Compute(records, group)}, nil
}

// All computes every configured group from one snapshot of the records.
// Tables come back in configured group order.
func (s *StandingsService) All(ctx context.Context) ([]GroupTable, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.All")
	defer span.End()

	records, err := s.source.Records(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]GroupTable, len(s.groups))
	if len(s.groups) == 0 {
		return out, nil
	}

	pool, err := ants.NewPool(min(s.workers, len(s.groups)))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var workers sync.WaitGroup
	for i, group := range s.groups {
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			out[i] = GroupTable{Group: group, Standings: s.ranker.Compute(records, group)}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit group %s to worker pool: %w", group, err)
		}
	}
	workers.Wait()

	return out, nil
}

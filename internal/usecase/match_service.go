package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/riskibarqy/cup-results/internal/domain/document"
	"github.com/riskibarqy/cup-results/internal/domain/match"
	"github.com/riskibarqy/cup-results/internal/domain/roster"
	"github.com/riskibarqy/cup-results/internal/platform/cache"
	"github.com/riskibarqy/cup-results/internal/platform/csvdoc"
	"github.com/riskibarqy/cup-results/internal/platform/id"
	"github.com/riskibarqy/cup-results/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const matchCacheKeyPrefix = "matches:"

// RosterChecker reports integrity warnings for match rows.
type RosterChecker interface {
	Check(ctx context.Context, records []csvdoc.Record) ([]roster.Warning, error)
}

type MatchServiceConfig struct {
	Document string
	CacheTTL time.Duration
}

// MatchService owns the match document. Reads are served from a parsed copy
// cached per revision; every successful write moves to a new revision.
// Writes are serialized so an edit always starts from the latest document.
type MatchService struct {
	store    document.Store
	document string
	checker  RosterChecker
	ids      id.Generator
	cache    *cache.Store[csvdoc.Document]
	logger   *logging.Logger

	writeMu  sync.Mutex
	revMu    sync.RWMutex
	revision string
}

// Officials holds the distinct officials named across all matches.
type Officials struct {
	Referees     []string
	Commentators []string
}

// ImportResult is the outcome of a document import. Revision is the revision
// this import produced.
type ImportResult struct {
	Warnings []roster.Warning
	Revision string
}

// EditResult is the outcome of one edit batch.
type EditResult struct {
	Match    match.Match
	Applied  int
	Revision string
}

func NewMatchService(store document.Store, cfg MatchServiceConfig, checker RosterChecker, ids id.Generator, logger *logging.Logger) (*MatchService, error) {
	if store == nil {
		return nil, fmt.Errorf("document store is required")
	}
	if strings.TrimSpace(cfg.Document) == "" {
		return nil, fmt.Errorf("match document name is required")
	}
	if ids == nil {
		ids = id.NewRandomGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}

	revision, err := ids.NewID()
	if err != nil {
		return nil, fmt.Errorf("initial revision: %w", err)
	}

	return &MatchService{
		store:    store,
		document: cfg.Document,
		checker:  checker,
		ids:      ids,
		cache:    cache.NewStore[csvdoc.Document](cfg.CacheTTL),
		logger:   logger,
		revision: revision,
	}, nil
}

func (s *MatchService) Revision() string {
	s.revMu.RLock()
	defer s.revMu.RUnlock()
	return s.revision
}

// Records returns every row of the match document, including rows without a
// match code. The slice is shared with the cache and must not be modified.
func (s *MatchService) Records(ctx context.Context) ([]csvdoc.Record, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Records, nil
}

// List returns matches with a match code, optionally limited to one group.
func (s *MatchService) List(ctx context.Context, group string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	group = strings.TrimSpace(group)
	out := make([]match.Match, 0, len(doc.Records))
	for _, rec := range doc.Records {
		if rec.Get(match.ColumnCode) == "" {
			continue
		}
		if group != "" && rec.Get(match.ColumnGroup) != group {
			continue
		}
		out = append(out, match.FromRecord(rec))
	}
	return out, nil
}

// Get returns the first match carrying code.
func (s *MatchService) Get(ctx context.Context, code string) (match.Match, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return match.Match{}, fmt.Errorf("%w: match code is required", ErrInvalidInput)
	}

	doc, err := s.load(ctx)
	if err != nil {
		return match.Match{}, err
	}
	idx := indexOf(doc.Records, code)
	if idx < 0 {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, code)
	}
	return match.FromRecord(doc.Records[idx]), nil
}

func (s *MatchService) Officials(ctx context.Context) (Officials, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return Officials{}, err
	}
	referees, commentators := match.Officials(doc.Records)
	return Officials{Referees: referees, Commentators: commentators}, nil
}

// Warnings checks the stored document against the roster.
func (s *MatchService) Warnings(ctx context.Context) ([]roster.Warning, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if s.checker == nil {
		return roster.Check(roster.Roster{}, doc.Records), nil
	}
	return s.checker.Check(ctx, doc.Records)
}

// ApplyEdits runs ops as one edit session over the stored row of code and
// persists the result. Undo and reset only see ops from the same batch; a
// reset therefore discards the earlier ops of the batch.
func (s *MatchService) ApplyEdits(ctx context.Context, code string, ops []match.Op) (EditResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ApplyEdits", documentAttr(s.document))
	defer span.End()

	code = strings.TrimSpace(code)
	if code == "" {
		return EditResult{}, fmt.Errorf("%w: match code is required", ErrInvalidInput)
	}
	if len(ops) == 0 {
		return EditResult{}, fmt.Errorf("%w: at least one edit is required", ErrInvalidInput)
	}
	for i, op := range ops {
		if !knownOp(op.Kind) {
			return EditResult{}, fmt.Errorf("%w: edit %d has unknown kind %q", ErrInvalidInput, i, op.Kind)
		}
	}
	span.SetAttributes(attribute.String("match.code", code), attribute.Int("edits", len(ops)))

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return EditResult{}, err
	}
	idx := indexOf(doc.Records, code)
	if idx < 0 {
		return EditResult{}, fmt.Errorf("%w: match=%s", ErrNotFound, code)
	}

	session := match.NewEditSession(match.FromRecord(doc.Records[idx]))
	for _, op := range ops {
		session = session.Run(op)
	}
	current := session.Current()

	records := make([]csvdoc.Record, len(doc.Records))
	copy(records, doc.Records)
	records[idx] = current.ApplyTo(doc.Records[idx])

	next := csvdoc.Document{Header: append([]string(nil), doc.Header...), Records: records}
	revision, err := s.save(ctx, &next)
	if err != nil {
		return EditResult{}, spanFailure(span, err)
	}

	s.logger.InfoContext(ctx, "match edited",
		"match_code", code,
		"ops", len(ops),
		"applied", len(session.Ops()),
		"revision", revision,
	)
	return EditResult{Match: current, Applied: len(session.Ops()), Revision: revision}, nil
}

// Export renders the stored document, extended with the required columns.
func (s *MatchService) Export(ctx context.Context) (string, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return "", err
	}
	out := csvdoc.Document{Header: append([]string(nil), doc.Header...), Records: doc.Records}
	return out.Encode(), nil
}

// Import replaces the whole match document with text. Integrity problems are
// returned as warnings and never block the import.
func (s *MatchService) Import(ctx context.Context, text string) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Import", documentAttr(s.document))
	defer span.End()

	if strings.TrimSpace(text) == "" {
		return ImportResult{}, fmt.Errorf("%w: match document is empty", ErrInvalidInput)
	}
	doc := csvdoc.Parse(text)
	if strings.TrimSpace(strings.Join(doc.Header, "")) == "" {
		return ImportResult{}, fmt.Errorf("%w: match document has no header", ErrInvalidInput)
	}

	warnings := roster.Check(roster.Roster{}, doc.Records)
	if s.checker != nil {
		checked, err := s.checker.Check(ctx, doc.Records)
		if err != nil {
			s.logger.WarnContext(ctx, "roster check skipped", "error", err)
		} else {
			warnings = checked
		}
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	revision, err := s.save(ctx, &doc)
	if err != nil {
		return ImportResult{}, spanFailure(span, err)
	}

	s.logger.InfoContext(ctx, "match document imported",
		"rows", len(doc.Records),
		"warnings", len(warnings),
		"revision", revision,
	)
	return ImportResult{Warnings: warnings, Revision: revision}, nil
}

func (s *MatchService) load(ctx context.Context) (csvdoc.Document, error) {
	key := matchCacheKeyPrefix + s.Revision()
	return s.cache.GetOrLoad(ctx, key, func(ctx context.Context) (csvdoc.Document, error) {
		data, err := s.store.Load(ctx, s.document)
		if errors.Is(err, document.ErrNotFound) {
			return csvdoc.Parse(""), nil
		}
		if err != nil {
			return csvdoc.Document{}, storeError("load", s.document, err)
		}
		return csvdoc.Parse(string(data)), nil
	})
}

// save persists doc and moves to a new revision. Callers hold writeMu.
func (s *MatchService) save(ctx context.Context, doc *csvdoc.Document) (string, error) {
	revision, err := s.ids.NewID()
	if err != nil {
		return "", fmt.Errorf("new revision: %w", err)
	}

	text := doc.Encode()
	if err := s.store.Save(ctx, s.document, []byte(text)); err != nil {
		return "", storeError("save", s.document, err)
	}

	s.revMu.Lock()
	s.revision = revision
	s.revMu.Unlock()
	s.cache.DeletePrefix(ctx, matchCacheKeyPrefix)

	return revision, nil
}

func indexOf(records []csvdoc.Record, code string) int {
	for i, rec := range records {
		if rec.Get(match.ColumnCode) == code {
			return i
		}
	}
	return -1
}

func knownOp(kind match.OpKind) bool {
	switch kind {
	case match.OpSetScore, match.OpSetVAR, match.OpSetOfficials, match.OpSetPlayerOfMatch,
		match.OpAddGoal, match.OpAddCard, match.OpClearGoals, match.OpClearCards,
		match.OpUndoGoal, match.OpUndoCard, match.OpReset:
		return true
	default:
		return false
	}
}

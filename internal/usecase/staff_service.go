package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/cup-results/internal/domain/document"
	"github.com/riskibarqy/cup-results/internal/domain/staff"
	"github.com/riskibarqy/cup-results/internal/platform/cache"
	"github.com/riskibarqy/cup-results/internal/platform/logging"
)

const staffCacheKey = "staff"

// StaffService owns staff.json, the team staff list that feeds the award
// candidates.
type StaffService struct {
	store    document.Store
	document string
	cache    *cache.Store[staff.Staff]
	logger   *logging.Logger
	writeMu  sync.Mutex
}

func NewStaffService(store document.Store, documentName string, ttl time.Duration, logger *logging.Logger) *StaffService {
	if logger == nil {
		logger = logging.Default()
	}
	return &StaffService{
		store:    store,
		document: documentName,
		cache:    cache.NewStore[staff.Staff](ttl),
		logger:   logger,
	}
}

// Staff returns the current staff list. A missing document is an empty list.
func (s *StaffService) Staff(ctx context.Context) (staff.Staff, error) {
	return s.cache.GetOrLoad(ctx, staffCacheKey, func(ctx context.Context) (staff.Staff, error) {
		data, err := s.store.Load(ctx, s.document)
		if errors.Is(err, document.ErrNotFound) {
			s.logger.WarnContext(ctx, "staff document missing, award candidates come from the roster", "document", s.document)
			return staff.Staff{}, nil
		}
		if err != nil {
			return nil, storeError("load", s.document, err)
		}

		out, err := staff.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", s.document, err)
		}
		return out, nil
	})
}

// Replace validates and stores a new staff document.
func (s *StaffService) Replace(ctx context.Context, data []byte) (staff.Staff, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StaffService.Replace", documentAttr(s.document))
	defer span.End()

	list, err := staff.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	encoded, err := list.Encode()
	if err != nil {
		return nil, fmt.Errorf("encode staff: %w", err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.store.Save(ctx, s.document, encoded); err != nil {
		return nil, spanFailure(span, storeError("save", s.document, err))
	}
	s.cache.Delete(ctx, staffCacheKey)

	s.logger.InfoContext(ctx, "staff replaced", "document", s.document, "members", len(list))
	return list, nil
}

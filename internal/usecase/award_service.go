package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/riskibarqy/cup-results/internal/domain/award"
	"github.com/riskibarqy/cup-results/internal/domain/document"
	"github.com/riskibarqy/cup-results/internal/domain/roster"
	"github.com/riskibarqy/cup-results/internal/domain/staff"
	"github.com/riskibarqy/cup-results/internal/platform/logging"
	"golang.org/x/text/language"
)

// RosterSource provides the current roster.
type RosterSource interface {
	Roster(ctx context.Context) (roster.Roster, error)
}

// StaffSource provides the current staff list.
type StaffSource interface {
	Staff(ctx context.Context) (staff.Staff, error)
}

type AwardServiceConfig struct {
	Document string
	// Lang orders candidate labels.
	Lang language.Tag
}

// AwardOptions are the candidates an editor picks awards from.
type AwardOptions struct {
	Teams   []string
	Players []staff.Option
	Admins  []staff.Option
}

type AwardService struct {
	store    document.Store
	document string
	lang     language.Tag
	rosters  RosterSource
	staffs   StaffSource
	logger   *logging.Logger
	now      func() time.Time
	writeMu  sync.Mutex
}

func NewAwardService(store document.Store, cfg AwardServiceConfig, rosters RosterSource, staffs StaffSource, logger *logging.Logger) *AwardService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AwardService{
		store:    store,
		document: cfg.Document,
		lang:     cfg.Lang,
		rosters:  rosters,
		staffs:   staffs,
		logger:   logger,
		now:      time.Now,
	}
}

// Get returns the published awards. Nothing published yet is an empty result.
func (s *AwardService) Get(ctx context.Context) (award.Awards, error) {
	data, err := s.store.Load(ctx, s.document)
	if errors.Is(err, document.ErrNotFound) {
		return award.Awards{}, nil
	}
	if err != nil {
		return award.Awards{}, storeError("load", s.document, err)
	}

	out, err := award.Decode(data)
	if err != nil {
		return award.Awards{}, fmt.Errorf("decode %s: %w", s.document, err)
	}
	return out, nil
}

// Options lists the award candidates. Players and admins come from the staff
// list by role. Without staff players every rostered player is a candidate,
// and without admins the player list is offered instead.
func (s *AwardService) Options(ctx context.Context) (AwardOptions, error) {
	r, list, err := s.sources(ctx)
	if err != nil {
		return AwardOptions{}, err
	}

	players := list.Players()
	if len(players) == 0 {
		players = rosterPlayers(r)
	}
	admins := list.Admins()
	if len(admins) == 0 {
		admins = players
	}

	return AwardOptions{
		Teams:   r.Teams(),
		Players: players.Options(s.lang),
		Admins:  admins.Options(s.lang),
	}, nil
}

// Save publishes sel, filling each individual winner's team from the staff
// list or the roster.
func (s *AwardService) Save(ctx context.Context, sel award.Selection) (award.Awards, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AwardService.Save", documentAttr(s.document))
	defer span.End()

	r, list, err := s.sources(ctx)
	if err != nil {
		return award.Awards{}, err
	}

	out := award.Build(sel, r, list, s.now().UTC())
	data, err := out.Encode()
	if err != nil {
		return award.Awards{}, fmt.Errorf("encode awards: %w", err)
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := s.store.Save(ctx, s.document, data); err != nil {
		return award.Awards{}, spanFailure(span, storeError("save", s.document, err))
	}

	s.logger.InfoContext(ctx, "awards published", "document", s.document, "champion", out.Teams.Champion)
	return out, nil
}

func (s *AwardService) sources(ctx context.Context) (roster.Roster, staff.Staff, error) {
	r := roster.Roster{}
	if s.rosters != nil {
		loaded, err := s.rosters.Roster(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("load roster: %w", err)
		}
		r = loaded
	}

	list := staff.Staff{}
	if s.staffs != nil {
		loaded, err := s.staffs.Staff(ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("load staff: %w", err)
		}
		list = loaded
	}
	return r, list, nil
}

func rosterPlayers(r roster.Roster) staff.Staff {
	out := make(staff.Staff, 0)
	for _, team := range r.Teams() {
		for _, p := range r[roster.TeamID(team)].Players {
			if p.Name == "" {
				continue
			}
			out = append(out, staff.Member{Team: team, Role: staff.RolePlayer, Name: p.Name})
		}
	}
	return out
}

package award

import (
	"fmt"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/cup-results/internal/domain/roster"
	"github.com/riskibarqy/cup-results/internal/domain/staff"
)

// Winner names an individual award holder and the team they play for.
type Winner struct {
	Name string `json:"name"`
	Team string `json:"team"`
}

type Teams struct {
	Champion string `json:"champion"`
	RunnerUp string `json:"runnerup"`
	Third    string `json:"third"`
	Fourth   string `json:"fourth"`
}

type Individual struct {
	TopScorer  Winner `json:"top_scorer"`
	BestPlayer Winner `json:"best_player"`
	BestKeeper Winner `json:"best_keeper"`
	BestAdmin  Winner `json:"best_admin"`
}

// Awards is the published awards.json document.
type Awards struct {
	UpdatedAt  time.Time  `json:"updated_at"`
	Teams      Teams      `json:"teams"`
	Individual Individual `json:"individual"`
}

// Selection is what an editor picks: team placings and individual names.
type Selection struct {
	Teams      Teams
	TopScorer  string
	BestPlayer string
	BestKeeper string
	BestAdmin  string
}

// Build resolves each selected individual's team from the staff list first
// and the roster second. Administrators only appear in the staff list. Names
// found in neither keep an empty team.
func Build(sel Selection, r roster.Roster, s staff.Staff, now time.Time) Awards {
	winner := func(name string) Winner {
		name = strings.TrimSpace(name)
		if name == "" {
			return Winner{}
		}
		if m, ok := s.Lookup(name); ok && m.Team != "" {
			return Winner{Name: name, Team: m.Team}
		}
		team, _ := r.TeamOf(name)
		return Winner{Name: name, Team: team}
	}

	return Awards{
		UpdatedAt: now.UTC(),
		Teams: Teams{
			Champion: strings.TrimSpace(sel.Teams.Champion),
			RunnerUp: strings.TrimSpace(sel.Teams.RunnerUp),
			Third:    strings.TrimSpace(sel.Teams.Third),
			Fourth:   strings.TrimSpace(sel.Teams.Fourth),
		},
		Individual: Individual{
			TopScorer:  winner(sel.TopScorer),
			BestPlayer: winner(sel.BestPlayer),
			BestKeeper: winner(sel.BestKeeper),
			BestAdmin:  winner(sel.BestAdmin),
		},
	}
}

func Decode(data []byte) (Awards, error) {
	var out Awards
	if len(strings.TrimSpace(string(data))) == 0 {
		return out, nil
	}
	if err := sonic.Unmarshal(data, &out); err != nil {
		return Awards{}, fmt.Errorf("decode awards: %w", err)
	}
	return out, nil
}

func (a Awards) Encode() ([]byte, error) {
	data, err := sonic.ConfigStd.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode awards: %w", err)
	}
	return data, nil
}

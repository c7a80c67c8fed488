package award

import (
	"testing"
	"time"

	"github.com/riskibarqy/cup-results/internal/domain/roster"
	"github.com/riskibarqy/cup-results/internal/domain/staff"
)

func TestBuild_ResolvesTeamsFromRoster(t *testing.T) {
	t.Parallel()

	r := roster.Roster{
		"Falcons": {Name: "Falcons", Group: "A", Players: []roster.Player{{Name: "Ali"}}},
		"Hawks":   {Name: "Hawks", Group: "A", Players: []roster.Player{{Name: "Saeed"}}},
	}
	now := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)

	got := Build(Selection{
		Teams:      Teams{Champion: "Falcons", RunnerUp: " Hawks "},
		TopScorer:  "Ali",
		BestKeeper: "Saeed",
		BestAdmin:  "Unknown Person",
	}, r, nil, now)

	if got.Teams.Champion != "Falcons" || got.Teams.RunnerUp != "Hawks" {
		t.Fatalf("unexpected teams: %+v", got.Teams)
	}
	if got.Individual.TopScorer != (Winner{Name: "Ali", Team: "Falcons"}) {
		t.Fatalf("unexpected top scorer: %+v", got.Individual.TopScorer)
	}
	if got.Individual.BestKeeper != (Winner{Name: "Saeed", Team: "Hawks"}) {
		t.Fatalf("unexpected keeper: %+v", got.Individual.BestKeeper)
	}
	if got.Individual.BestAdmin != (Winner{Name: "Unknown Person"}) {
		t.Fatalf("unexpected admin: %+v", got.Individual.BestAdmin)
	}
	if got.Individual.BestPlayer != (Winner{}) {
		t.Fatalf("expected empty best player, got %+v", got.Individual.BestPlayer)
	}
	if !got.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected updated_at: %s", got.UpdatedAt)
	}
}

func TestBuild_ResolvesAdminsFromStaff(t *testing.T) {
	t.Parallel()

	r := roster.Roster{
		"Falcons": {Name: "Falcons", Group: "A", Players: []roster.Player{{Name: "Ali"}}},
	}
	s := staff.Staff{
		{Team: "Hawks", Role: staff.RoleAdmin, Name: "Khalid"},
		{Team: "Eagles", Role: staff.RolePlayer, Name: "Ali"},
		{Role: staff.RolePlayer, Name: "Omar"},
	}

	got := Build(Selection{BestAdmin: "Khalid", TopScorer: "Ali", BestPlayer: "Omar"}, r, s, time.Now())

	if got.Individual.BestAdmin != (Winner{Name: "Khalid", Team: "Hawks"}) {
		t.Fatalf("expected admin team from staff, got %+v", got.Individual.BestAdmin)
	}
	if got.Individual.TopScorer != (Winner{Name: "Ali", Team: "Eagles"}) {
		t.Fatalf("expected staff entry to win over roster, got %+v", got.Individual.TopScorer)
	}
	if got.Individual.BestPlayer != (Winner{Name: "Omar"}) {
		t.Fatalf("expected unresolved team to stay empty, got %+v", got.Individual.BestPlayer)
	}
}

func TestAwards_EncodeDecode(t *testing.T) {
	t.Parallel()

	in := Awards{
		UpdatedAt:  time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC),
		Teams:      Teams{Champion: "Falcons"},
		Individual: Individual{TopScorer: Winner{Name: "Ali", Team: "Falcons"}},
	}
	data, err := in.Encode()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	out, err := Decode(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Teams != in.Teams || out.Individual != in.Individual || !out.UpdatedAt.Equal(in.UpdatedAt) {
		t.Fatalf("unexpected awards: %+v", out)
	}
}

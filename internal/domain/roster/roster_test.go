package roster

import (
	"reflect"
	"testing"

	"github.com/riskibarqy/cup-results/internal/platform/csvdoc"
)

const rosterJSON = `{
  "Falcons": {"group": "A", "players": [{"number": "10", "name": "Ali"}, {"number": "", "name": "Omar"}, {"name": ""}]},
  "Hawks": {"group": "A", "players": [{"number": "1", "name": "Saeed"}]},
  "Eagles": {"group": "B", "players": []}
}`

func TestDecode(t *testing.T) {
	t.Parallel()

	r, err := Decode([]byte(rosterJSON))
	if err != nil {
		t.Fatalf("decode roster: %v", err)
	}
	if got := r.Teams(); !reflect.DeepEqual(got, []string{"Eagles", "Falcons", "Hawks"}) {
		t.Fatalf("unexpected teams: %v", got)
	}
	if r["Falcons"].Name != "Falcons" || r["Falcons"].Group != "A" {
		t.Fatalf("unexpected team: %+v", r["Falcons"])
	}
}

func TestDecode_EmptyAndInvalid(t *testing.T) {
	t.Parallel()

	r, err := Decode(nil)
	if err != nil || len(r) != 0 {
		t.Fatalf("expected empty roster, got %v err=%v", r, err)
	}
	if _, err := Decode([]byte("{not json")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestDecode_PlayerListShape(t *testing.T) {
	t.Parallel()

	r, err := Decode([]byte(`{"Falcons": [{"number": 10, "name": " Ali "}, {"name": "Omar"}], "Hawks": {"group": "A", "players": []}}`))
	if err != nil {
		t.Fatalf("decode roster: %v", err)
	}
	falcons := r["Falcons"]
	if falcons.Name != "Falcons" || falcons.Group != "" {
		t.Fatalf("unexpected team: %+v", falcons)
	}
	want := []Player{{Number: "10", Name: "Ali"}, {Name: "Omar"}}
	if !reflect.DeepEqual(falcons.Players, want) {
		t.Fatalf("unexpected players: got=%+v want=%+v", falcons.Players, want)
	}
	if r["Hawks"].Group != "A" {
		t.Fatalf("expected object shape to keep its group, got %+v", r["Hawks"])
	}

	warnings := Check(r, csvdoc.ParseRecords("match_code,group,team1,team2\nB1,B,Falcons,Hawks\n"))
	if len(warnings) != 1 || warnings[0].Code != WarningGroupMismatch {
		t.Fatalf("expected only the Hawks group mismatch, got %+v", warnings)
	}
}

func TestRoster_EncodeDecodeKeepsTeams(t *testing.T) {
	t.Parallel()

	r, err := Decode([]byte(rosterJSON))
	if err != nil {
		t.Fatalf("decode roster: %v", err)
	}
	data, err := r.Encode()
	if err != nil {
		t.Fatalf("encode roster: %v", err)
	}
	again, err := Decode(data)
	if err != nil {
		t.Fatalf("decode encoded roster: %v", err)
	}
	if !reflect.DeepEqual(again.Teams(), r.Teams()) || len(again["Falcons"].Players) != 3 {
		t.Fatalf("roster changed across encode: %+v", again)
	}
}

func TestRoster_PlayerOptions(t *testing.T) {
	t.Parallel()

	r, _ := Decode([]byte(rosterJSON))
	got := r.PlayerOptions("Falcons")
	want := []PlayerOption{
		{Value: "Ali", Label: "10 — Ali"},
		{Value: "Omar", Label: "Omar"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected options: %+v", got)
	}
	if got := r.PlayerOptions("Nobody"); len(got) != 0 {
		t.Fatalf("expected no options for unknown team, got %+v", got)
	}
}

func TestRoster_TeamOf(t *testing.T) {
	t.Parallel()

	r, _ := Decode([]byte(rosterJSON))
	if team, ok := r.TeamOf("Saeed"); !ok || team != "Hawks" {
		t.Fatalf("unexpected team lookup: %q %v", team, ok)
	}
	if _, ok := r.TeamOf("Ghost"); ok {
		t.Fatalf("expected unknown player")
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	r, _ := Decode([]byte(rosterJSON))
	records := []csvdoc.Record{
		{"match_code": "A1", "group": "A", "team1": "Falcons", "team2": "Hawks"},
		{"match_code": "A1", "group": "A", "team1": "Falcons", "team2": "Falcon"},
		{"match_code": "", "group": "A", "team1": "Eagles", "team2": "Hawks"},
	}

	got := Check(r, records)
	codes := make([]WarningCode, 0, len(got))
	for _, w := range got {
		codes = append(codes, w.Code)
	}
	want := []WarningCode{WarningDuplicateCode, WarningUnknownTeam, WarningMissingCode, WarningGroupMismatch}
	if !reflect.DeepEqual(codes, want) {
		t.Fatalf("unexpected warnings: %+v", got)
	}
	if got[0].Row != 2 || got[0].MatchCode != "A1" {
		t.Fatalf("unexpected duplicate warning: %+v", got[0])
	}
}

func TestCheck_EmptyRosterOnlyChecksCodes(t *testing.T) {
	t.Parallel()

	got := Check(Roster{}, []csvdoc.Record{{"match_code": "A1", "team1": "X", "team2": "Y"}})
	if len(got) != 0 {
		t.Fatalf("expected no warnings, got %+v", got)
	}
}

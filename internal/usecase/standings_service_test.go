package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/cup-results/internal/domain/standing"
	"github.com/riskibarqy/cup-results/internal/platform/csvdoc"
	"golang.org/x/text/language"
)

type staticRecords struct {
	records []csvdoc.Record
	err     error
	calls   int
}

func (s *staticRecords) Records(context.Context) ([]csvdoc.Record, error) {
	s.calls++
	return s.records, s.err
}

func TestStandingsService_All(t *testing.T) {
	t.Parallel()

	source := &staticRecords{records: csvdoc.ParseRecords(
		"group,team1,team2,score1,score2\n" +
			"A,Falcons,Hawks,2,0\n" +
			"B,Lions,Tigers,1,1\n" +
			"C,Foxes,Bears,,\n",
	)}
	svc := NewStandingsService(source, standing.NewRanker(language.Und), []string{"A", "B", "C", "D"}, 2)

	tables, err := svc.All(context.Background())
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if source.calls != 1 {
		t.Fatalf("expected one records snapshot, got %d", source.calls)
	}
	if len(tables) != 4 {
		t.Fatalf("expected 4 tables, got %d", len(tables))
	}
	for i, want := range []string{"A", "B", "C", "D"} {
		if tables[i].Group != want {
			t.Fatalf("table %d: expected group %s, got %s", i, want, tables[i].Group)
		}
	}
	if tables[0].Standings[0].Team != "Falcons" || tables[0].Standings[0].Points != 3 {
		t.Fatalf("unexpected group A leader: %+v", tables[0].Standings[0])
	}
	if tables[1].Standings[0].Points != 1 || tables[1].Standings[1].Points != 1 {
		t.Fatalf("unexpected group B draw: %+v", tables[1].Standings)
	}
	if len(tables[2].Standings) != 2 || tables[2].Standings[0].Played != 0 {
		t.Fatalf("expected unplayed teams with zeros: %+v", tables[2].Standings)
	}
	if tables[3].Standings == nil || len(tables[3].Standings) != 0 {
		t.Fatalf("expected empty non-nil table for group D, got %#v", tables[3].Standings)
	}
}

func TestStandingsService_Group(t *testing.T) {
	t.Parallel()

	source := &staticRecords{records: csvdoc.ParseRecords("group,team1,team2,score1,score2\nA,X,Y,0,3\n")}
	svc := NewStandingsService(source, standing.NewRanker(language.Und), []string{"A"}, 0)

	table, err := svc.Group(context.Background(), " A ")
	if err != nil {
		t.Fatalf("group: %v", err)
	}
	if table.Group != "A" || table.Standings[0].Team != "Y" {
		t.Fatalf("unexpected table: %+v", table)
	}

	if _, err := svc.Group(context.Background(), ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestStandingsService_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("unavailable")
	svc := NewStandingsService(&staticRecords{err: boom}, standing.NewRanker(language.Und), []string{"A"}, 1)

	if _, err := svc.All(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected source error, got %v", err)
	}
	if _, err := svc.Group(context.Background(), "A"); !errors.Is(err, boom) {
		t.Fatalf("expected source error, got %v", err)
	}
}

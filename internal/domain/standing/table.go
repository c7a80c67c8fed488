package standing

import (
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/cup-results/internal/platform/csvdoc"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Ranker computes group tables, breaking final ties by team name under the
// collation rules of its language.
type Ranker struct {
	lang language.Tag
}

func NewRanker(lang language.Tag) Ranker {
	return Ranker{lang: lang}
}

// Compute builds the ranked table of group using the root collation.
func Compute(records []csvdoc.Record, group string) []Standing {
	return NewRanker(language.Und).Compute(records, group)
}

// Compute builds the ranked table of group from match rows. Rows of other
// groups are ignored. A row whose score1 or score2 is not an integer counts as
// not played, but its teams still appear in the table.
func (r Ranker) Compute(records []csvdoc.Record, group string) []Standing {
	index := make(map[string]*Standing)
	order := make([]string, 0)

	ensure := func(team string) *Standing {
		if row, ok := index[team]; ok {
			return row
		}
		row := &Standing{Team: team}
		index[team] = row
		order = append(order, team)
		return row
	}

	for _, rec := range records {
		if rec.Get("group") != group {
			continue
		}
		home := ensure(rec.Get("team1"))
		away := ensure(rec.Get("team2"))

		homeGoals, okHome := parseScore(rec.Get("score1"))
		awayGoals, okAway := parseScore(rec.Get("score2"))
		if !okHome || !okAway {
			continue
		}
		applyResult(home, away, homeGoals, awayGoals)
	}

	out := make([]Standing, 0, len(order))
	for _, team := range order {
		row := index[team]
		row.GoalDifference = row.GoalsFor - row.GoalsAgainst
		out = append(out, *row)
	}

	collator := collate.New(r.lang)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference != b.GoalDifference {
			return a.GoalDifference > b.GoalDifference
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		if c := collator.CompareString(a.Team, b.Team); c != 0 {
			return c < 0
		}
		return a.Team < b.Team
	})

	return out
}

func applyResult(home, away *Standing, homeGoals, awayGoals int) {
	home.Played++
	away.Played++
	home.GoalsFor += homeGoals
	home.GoalsAgainst += awayGoals
	away.GoalsFor += awayGoals
	away.GoalsAgainst += homeGoals

	switch {
	case homeGoals > awayGoals:
		home.Wins++
		home.Points += PointsWin
		away.Losses++
	case homeGoals < awayGoals:
		away.Wins++
		away.Points += PointsWin
		home.Losses++
	default:
		home.Draws++
		away.Draws++
		home.Points += PointsDraw
		away.Points += PointsDraw
	}
}

func parseScore(raw string) (int, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}

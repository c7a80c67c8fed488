package match

import (
	"strings"

	"github.com/riskibarqy/cup-results/internal/platform/csvdoc"
)

// Column names of the match document.
const (
	ColumnCode          = "match_code"
	ColumnGroup         = "group"
	ColumnRound         = "round"
	ColumnDate          = "date"
	ColumnTime          = "time"
	ColumnTeam1         = "team1"
	ColumnTeam2         = "team2"
	ColumnScore1        = "score1"
	ColumnScore2        = "score2"
	ColumnReferee1      = "referee1"
	ColumnReferee2      = "referee2"
	ColumnCommentator   = "commentator"
	ColumnPlayerOfMatch = "player_of_match"
	ColumnGoals1        = "goals_team1"
	ColumnGoals2        = "goals_team2"
	ColumnVAR1          = "var_team1"
	ColumnVAR2          = "var_team2"
	ColumnYellow1       = "yellow_team1"
	ColumnRed1          = "red_team1"
	ColumnYellow2       = "yellow_team2"
	ColumnRed2          = "red_team2"
)

// Side selects one of the two teams of a match.
type Side string

const (
	SideHome Side = "team1"
	SideAway Side = "team2"
)

func (s Side) index() (int, bool) {
	switch s {
	case SideHome:
		return 0, true
	case SideAway:
		return 1, true
	default:
		return 0, false
	}
}

type CardColor string

const (
	CardYellow CardColor = "yellow"
	CardRed    CardColor = "red"
)

func (c CardColor) Valid() bool {
	return c == CardYellow || c == CardRed
}

// Match is the typed view of one row of the match document. Per-side fields
// are indexed 0 for team1 and 1 for team2. Scores stay raw: an empty score
// means the match has not been played.
type Match struct {
	Code          string
	Group         string
	Round         string
	Date          string
	Time          string
	Team1         string
	Team2         string
	Score1        string
	Score2        string
	Referee1      string
	Referee2      string
	Commentator   string
	PlayerOfMatch string
	VAR           [2]string
	Goals         [2]Tally
	Yellow        [2]Tally
	Red           [2]Tally
}

func FromRecord(rec csvdoc.Record) Match {
	return Match{
		Code:          rec.Get(ColumnCode),
		Group:         rec.Get(ColumnGroup),
		Round:         rec.Get(ColumnRound),
		Date:          rec.Get(ColumnDate),
		Time:          rec.Get(ColumnTime),
		Team1:         rec.Get(ColumnTeam1),
		Team2:         rec.Get(ColumnTeam2),
		Score1:        rec.Get(ColumnScore1),
		Score2:        rec.Get(ColumnScore2),
		Referee1:      rec.Get(ColumnReferee1),
		Referee2:      rec.Get(ColumnReferee2),
		Commentator:   rec.Get(ColumnCommentator),
		PlayerOfMatch: rec.Get(ColumnPlayerOfMatch),
		VAR:           [2]string{rec.Get(ColumnVAR1), rec.Get(ColumnVAR2)},
		Goals:         [2]Tally{ParseTally(rec.Get(ColumnGoals1)), ParseTally(rec.Get(ColumnGoals2))},
		Yellow:        [2]Tally{ParseTally(rec.Get(ColumnYellow1)), ParseTally(rec.Get(ColumnYellow2))},
		Red:           [2]Tally{ParseTally(rec.Get(ColumnRed1)), ParseTally(rec.Get(ColumnRed2))},
	}
}

// ApplyTo returns a copy of rec carrying the editable fields of m. Columns m
// does not model are kept untouched. A blank VAR count is saved as "0".
func (m Match) ApplyTo(rec csvdoc.Record) csvdoc.Record {
	out := rec.Clone()
	out[ColumnScore1] = m.Score1
	out[ColumnScore2] = m.Score2
	out[ColumnVAR1] = varOrZero(m.VAR[0])
	out[ColumnVAR2] = varOrZero(m.VAR[1])
	out[ColumnReferee1] = m.Referee1
	out[ColumnReferee2] = m.Referee2
	out[ColumnCommentator] = m.Commentator
	out[ColumnPlayerOfMatch] = m.PlayerOfMatch
	out[ColumnGoals1] = FormatTally(m.Goals[0])
	out[ColumnGoals2] = FormatTally(m.Goals[1])
	out[ColumnYellow1] = FormatTally(m.Yellow[0])
	out[ColumnRed1] = FormatTally(m.Red[0])
	out[ColumnYellow2] = FormatTally(m.Yellow[1])
	out[ColumnRed2] = FormatTally(m.Red[1])
	return out
}

// Clone deep-copies the tallies so the result can be edited freely.
func (m Match) Clone() Match {
	out := m
	for i := 0; i < 2; i++ {
		out.Goals[i] = m.Goals[i].Clone()
		out.Yellow[i] = m.Yellow[i].Clone()
		out.Red[i] = m.Red[i].Clone()
	}
	return out
}

// Played reports whether both scores are set.
func (m Match) Played() bool {
	return strings.TrimSpace(m.Score1) != "" && strings.TrimSpace(m.Score2) != ""
}

// Officials collects the distinct referees and commentators named across
// records, in order of first appearance.
func Officials(records []csvdoc.Record) (referees []string, commentators []string) {
	referees = uniq(records, ColumnReferee1, ColumnReferee2)
	commentators = uniq(records, ColumnCommentator)
	return referees, commentators
}

func uniq(records []csvdoc.Record, columns ...string) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, rec := range records {
		for _, column := range columns {
			value := strings.TrimSpace(rec.Get(column))
			if value == "" {
				continue
			}
			if _, ok := seen[value]; ok {
				continue
			}
			seen[value] = struct{}{}
			out = append(out, value)
		}
	}
	return out
}

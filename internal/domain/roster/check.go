package roster

import (
	"fmt"
	"strings"

	"github.com/riskibarqy/cup-results/internal/platform/csvdoc"
)

type WarningCode string

const (
	WarningUnknownTeam   WarningCode = "unknown_team"
	WarningGroupMismatch WarningCode = "group_mismatch"
	WarningDuplicateCode WarningCode = "duplicate_match_code"
	WarningMissingCode   WarningCode = "missing_match_code"
)

// Warning is a data-integrity finding on a match document. Warnings describe
// rows that will still be used as-is.
type Warning struct {
	Code      WarningCode
	Row       int
	MatchCode string
	Message   string
}

// Check compares match rows against the roster. Row is the 1-based data row
// number. An empty roster disables team checks.
func Check(r Roster, records []csvdoc.Record) []Warning {
	out := make([]Warning, 0)
	seen := make(map[string]int)

	for i, rec := range records {
		row := i + 1
		code := strings.TrimSpace(rec.Get("match_code"))
		if code == "" {
			out = append(out, Warning{
				Code:    WarningMissingCode,
				Row:     row,
				Message: "match_code is empty; row is hidden from match editing",
			})
		} else if first, ok := seen[code]; ok {
			out = append(out, Warning{
				Code:      WarningDuplicateCode,
				Row:       row,
				MatchCode: code,
				Message:   fmt.Sprintf("match_code %q already used on row %d; both rows count in standings", code, first),
			})
		} else {
			seen[code] = row
		}

		if len(r) == 0 {
			continue
		}
		group := rec.Get("group")
		for _, column := range []string{"team1", "team2"} {
			name := rec.Get(column)
			if name == "" {
				continue
			}
			id, ok := r.Resolve(name)
			if !ok {
				out = append(out, Warning{
					Code:      WarningUnknownTeam,
					Row:       row,
					MatchCode: code,
					Message:   fmt.Sprintf("%s %q is not in the roster", column, name),
				})
				continue
			}
			if registered := r[id].Group; registered != "" && group != "" && registered != group {
				out = append(out, Warning{
					Code:      WarningGroupMismatch,
					Row:       row,
					MatchCode: code,
					Message:   fmt.Sprintf("%s %q is registered in group %s, match is in group %s", column, name, registered, group),
				})
			}
		}
	}

	return out
}

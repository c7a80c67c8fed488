// Package csvdoc reads and writes the header-first CSV documents that carry
// tournament match data.
package csvdoc

// Record is one data row keyed by header column name.
type Record map[string]string

// Get returns the cell for column, or "" when the column is absent.
func (r Record) Get(column string) string {
	if r == nil {
		return ""
	}
	return r[column]
}

// Clone returns a copy that can be edited without touching r.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Document is a parsed CSV document: the header column order plus its rows.
type Document struct {
	Header  []string
	Records []Record
}

// Encode serializes the document. Header is extended in place with any
// required match column it is missing.
func (d *Document) Encode() string {
	d.Header = EnsureColumns(d.Header)
	return encode(d.Records, d.Header)
}

// RequiredColumns is the minimum schema of a match document, in output order.
var RequiredColumns = []string{
	"match_code", "group", "round", "date", "time", "team1", "team2", "score1", "score2",
	"referee1", "referee2", "commentator", "player_of_match",
	"goals_team1", "goals_team2", "var_team1", "var_team2",
	"yellow_team1", "red_team1", "yellow_team2", "red_team2",
}

// EnsureColumns appends every required column missing from columns, keeping
// the existing order. The input slice is not modified.
func EnsureColumns(columns []string) []string {
	out := make([]string, 0, len(columns)+len(RequiredColumns))
	out = append(out, columns...)

	present := make(map[string]struct{}, len(out))
	for _, c := range out {
		present[c] = struct{}{}
	}
	for _, c := range RequiredColumns {
		if _, ok := present[c]; ok {
			continue
		}
		present[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

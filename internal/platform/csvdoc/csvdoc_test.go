package csvdoc

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse_QuotedFieldWithDelimiterAndQuote(t *testing.T) {
	t.Parallel()

	got := ParseRecords("name,note\nX,\"a,b\"\"c\"\n")
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	want := Record{"name": "X", "note": `a,b"c`}
	if !reflect.DeepEqual(got[0], want) {
		t.Fatalf("unexpected record: got=%v want=%v", got[0], want)
	}
}

func TestParse_ShortRowPadsMissingColumns(t *testing.T) {
	t.Parallel()

	got := ParseRecords("a,b\n1\n")
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if !reflect.DeepEqual(got[0], Record{"a": "1", "b": ""}) {
		t.Fatalf("unexpected record: %v", got[0])
	}
}

func TestParse_ExtraCellsIgnored(t *testing.T) {
	t.Parallel()

	got := ParseRecords("a,b\n1,2,3,4")
	if len(got) != 1 || !reflect.DeepEqual(got[0], Record{"a": "1", "b": "2"}) {
		t.Fatalf("unexpected records: %v", got)
	}
}

func TestParse_TrailingBlankLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "single trailing newline", input: "a,b\n1,2\n", want: 1},
		{name: "trailing blank line", input: "a,b\n1,2\n\n", want: 1},
		{name: "no trailing newline", input: "a,b\n1,2", want: 1},
		{name: "crlf endings", input: "a,b\r\n1,2\r\n", want: 1},
		{name: "header only", input: "a,b\n", want: 0},
		{name: "empty input", input: "", want: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := ParseRecords(tc.input); len(got) != tc.want {
				t.Fatalf("expected %d records, got %d (%v)", tc.want, len(got), got)
			}
		})
	}
}

func TestParse_HeaderAndValuesTrimmed(t *testing.T) {
	t.Parallel()

	doc := Parse(" match_code , team1 \n  M1 ,  \" Al Ain \" \n")
	if !reflect.DeepEqual(doc.Header, []string{"match_code", "team1"}) {
		t.Fatalf("unexpected header: %q", doc.Header)
	}
	if got := doc.Records[0].Get("team1"); got != "Al Ain" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
	if got := doc.Records[0].Get("match_code"); got != "M1" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
}

func TestParse_ByteOrderMarkStripped(t *testing.T) {
	t.Parallel()

	doc := Parse("\ufeffmatch_code,group\nA1,A\n")
	if doc.Header[0] != "match_code" {
		t.Fatalf("expected byte order mark to be stripped, got %q", doc.Header[0])
	}
	if got := doc.Records[0].Get("match_code"); got != "A1" {
		t.Fatalf("expected match_code=A1, got %q", got)
	}

	header := strings.SplitN(doc.Encode(), "\n", 2)[0]
	if strings.Count(header, "match_code") != 1 || strings.ContainsRune(header, '\ufeff') {
		t.Fatalf("expected a single clean match_code column, got %q", header)
	}
}

func TestParse_CarriageReturnDroppedInsideQuotes(t *testing.T) {
	t.Parallel()

	got := ParseRecords("a\n\"x\r\ny\"\n")
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if v := got[0].Get("a"); v != "x\ny" {
		t.Fatalf("expected embedded newline without carriage return, got %q", v)
	}
}

func TestParse_UnterminatedQuoteAbsorbsRest(t *testing.T) {
	t.Parallel()

	got := ParseRecords("a,b\n1,\"open\n2,3\n")
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d (%v)", len(got), got)
	}
	if v := got[0].Get("b"); v != "open\n2,3" {
		t.Fatalf("unexpected absorbed field: %q", v)
	}
}

func TestParse_NonASCIIValues(t *testing.T) {
	t.Parallel()

	got := ParseRecords("team1,goals_team1\nالعين,\"أحمد (2)، سالم (1)\"\n")
	if len(got) != 1 {
		t.Fatalf("expected 1 record, got %d", len(got))
	}
	if got[0].Get("team1") != "العين" || got[0].Get("goals_team1") != "أحمد (2)، سالم (1)" {
		t.Fatalf("unexpected record: %v", got[0])
	}
}

func TestSerialize_EscapesAndAppendsRequiredColumns(t *testing.T) {
	t.Parallel()

	records := []Record{{"name": "X", "note": `a,b"c`}}
	out := Serialize(records, []string{"name", "note"})

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), out)
	}
	wantHeader := "name,note," + strings.Join(RequiredColumns, ",")
	if lines[0] != wantHeader {
		t.Fatalf("unexpected header:\n got=%s\nwant=%s", lines[0], wantHeader)
	}
	if !strings.HasPrefix(lines[1], `X,"a,b""c",`) {
		t.Fatalf("unexpected data line: %s", lines[1])
	}
	if strings.HasSuffix(out, "\n") {
		t.Fatalf("did not expect trailing newline")
	}
}

func TestSerialize_KeepsExistingColumnOrder(t *testing.T) {
	t.Parallel()

	columns := []string{"team2", "extra", "match_code"}
	out := Serialize(nil, columns)
	header := strings.Split(out, "\n")[0]
	if !strings.HasPrefix(header, "team2,extra,match_code,group,round,") {
		t.Fatalf("unexpected header order: %s", header)
	}
	if strings.Count(header, "match_code") != 1 {
		t.Fatalf("match_code duplicated in header: %s", header)
	}
	if !reflect.DeepEqual(columns, []string{"team2", "extra", "match_code"}) {
		t.Fatalf("caller slice mutated: %v", columns)
	}
}

func TestDocument_EncodeExtendsHeaderInPlace(t *testing.T) {
	t.Parallel()

	doc := Parse("match_code,team1\nM1,X\n")
	_ = doc.Encode()
	if len(doc.Header) != len(RequiredColumns) {
		t.Fatalf("expected header extended to %d columns, got %d", len(RequiredColumns), len(doc.Header))
	}
	if doc.Header[0] != "match_code" || doc.Header[1] != "team1" {
		t.Fatalf("existing order not preserved: %v", doc.Header)
	}
}

func TestSerialize_RoundTrip(t *testing.T) {
	t.Parallel()

	columns := append([]string{}, RequiredColumns...)
	records := []Record{
		{
			"match_code":  "A1",
			"group":       "A",
			"team1":       "Team, One",
			"team2":       `The "Two"`,
			"score1":      "2",
			"score2":      "0",
			"goals_team1": "Ali (2)",
			"commentator": "line one\nline two",
		},
		{
			"match_code": "A2",
			"group":      "A",
			"team1":      "Three",
			"team2":      "Four",
		},
	}

	got := ParseRecords(Serialize(records, columns))
	if len(got) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(got))
	}
	for i, rec := range records {
		for _, column := range columns {
			if got[i].Get(column) != rec.Get(column) {
				t.Fatalf("record %d column %s: got=%q want=%q", i, column, got[i].Get(column), rec.Get(column))
			}
		}
	}
}

func TestEscape(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"plain":    "plain",
		"":         "",
		"a,b":      `"a,b"`,
		`say "hi"`: `"say ""hi"""`,
		"x\ny":     "\"x\ny\"",
		"x\ry":     "\"x\ry\"",
	}
	for in, want := range tests {
		if got := Escape(in); got != want {
			t.Fatalf("Escape(%q) = %q, want %q", in, got, want)
		}
	}
}

package csvdoc

import (
	"strings"
	"unicode"
)

// Parse reads text into a Document. It never fails: an unterminated quote
// absorbs the remainder of the input into the open field, and carriage
// returns are dropped everywhere, including inside quoted fields.
func Parse(text string) Document {
	rows := splitRows(text)

	if n := len(rows); n > 0 && len(rows[n-1]) == 1 && trimCell(rows[n-1][0]) == "" {
		rows = rows[:n-1]
	}
	if len(rows) == 0 {
		return Document{Header: []string{}, Records: []Record{}}
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = trimCell(h)
	}

	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(header))
		for i, column := range header {
			value := ""
			if i < len(row) {
				value = trimCell(row[i])
			}
			rec[column] = value
		}
		records = append(records, rec)
	}

	return Document{Header: header, Records: records}
}

// trimCell strips surrounding white space and byte order marks. Spreadsheet
// exports of Arabic sheets start with U+FEFF, which must not end up in the
// first column name.
func trimCell(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\ufeff'
	})
}

// ParseRecords is Parse without the header.
func ParseRecords(text string) []Record {
	return Parse(text).Records
}

func splitRows(text string) [][]string {
	var (
		rows     [][]string
		row      []string
		cur      strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch == '\r' {
			continue
		}
		if inQuotes {
			if ch == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					cur.WriteByte('"')
					i++
					continue
				}
				inQuotes = false
				continue
			}
			cur.WriteByte(ch)
			continue
		}

		switch ch {
		case '"':
			inQuotes = true
		case ',':
			row = append(row, cur.String())
			cur.Reset()
		case '\n':
			row = append(row, cur.String())
			rows = append(rows, row)
			row = nil
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}

	row = append(row, cur.String())
	return append(rows, row)
}

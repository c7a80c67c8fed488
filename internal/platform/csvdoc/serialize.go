package csvdoc

import (
	"strings"

	"github.com/valyala/bytebufferpool"
)

// Serialize writes records as CSV using columns, extended with the required
// match columns, as the header. Lines are joined by "\n" with no trailing
// newline.
func Serialize(records []Record, columns []string) string {
	return encode(records, EnsureColumns(columns))
}

func encode(records []Record, columns []string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writeLine := func(cells func(i int) string) {
		for i := range columns {
			if i > 0 {
				_ = buf.WriteByte(',')
			}
			_, _ = buf.WriteString(Escape(cells(i)))
		}
	}

	writeLine(func(i int) string { return columns[i] })
	for _, rec := range records {
		_ = buf.WriteByte('\n')
		writeLine(func(i int) string { return rec.Get(columns[i]) })
	}

	return buf.String()
}

// Escape quotes value when it holds a comma, a double quote or a line break.
func Escape(value string) string {
	if !strings.ContainsAny(value, ",\"\n\r") {
		return value
	}
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

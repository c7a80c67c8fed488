package match

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Tally counts goals or cards per player name.
type Tally map[string]int

const tallySeparator = "، "

var (
	tallySplitPattern = regexp.MustCompile(`[,;|\n،]+`)
	tallyItemPattern  = regexp.MustCompile(`^(.+?)\s*\((\d+)\)\s*$`)
)

func (t Tally) Clone() Tally {
	out := make(Tally, len(t))
	for name, count := range t {
		out[name] = count
	}
	return out
}

// Total is the sum of all counts.
func (t Tally) Total() int {
	total := 0
	for _, count := range t {
		if count > 0 {
			total += count
		}
	}
	return total
}

func (t Tally) add(name string, delta int) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	t[name] += delta
	if t[name] <= 0 {
		delete(t, name)
	}
}

// ParseTally decodes the document form "Name (2)، Name2 (1)". Items may be
// separated by commas, semicolons, pipes, newlines or Arabic commas; an item
// without a count adds one, and repeated names accumulate.
func ParseTally(raw string) Tally {
	out := make(Tally)
	value := strings.TrimSpace(raw)
	if value == "" {
		return out
	}

	for _, part := range tallySplitPattern.Split(value, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m := tallyItemPattern.FindStringSubmatch(part)
		if m == nil {
			out[part]++
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		count, err := strconv.Atoi(m[2])
		if err != nil {
			count = 1
		}
		out[name] += count
	}

	for name, count := range out {
		if count <= 0 {
			delete(out, name)
		}
	}
	return out
}

// FormatTally encodes t in the document form, ordering names by Arabic
// collation. An empty tally encodes as "".
func FormatTally(t Tally) string {
	return FormatTallyWith(t, collate.New(language.Arabic))
}

// FormatTallyWith is FormatTally ordered by collator. A nil collator orders
// names bytewise. Collators are not safe for concurrent use.
func FormatTallyWith(t Tally, collator *collate.Collator) string {
	names := make([]string, 0, len(t))
	for name, count := range t {
		if name != "" && count > 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return ""
	}

	sort.SliceStable(names, func(i, j int) bool {
		if collator != nil {
			if c := collator.CompareString(names[i], names[j]); c != 0 {
				return c < 0
			}
		}
		return names[i] < names[j]
	})

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	for i, name := range names {
		if i > 0 {
			_, _ = buf.WriteString(tallySeparator)
		}
		_, _ = buf.WriteString(name)
		_, _ = buf.WriteString(" (")
		_, _ = buf.WriteString(strconv.Itoa(t[name]))
		_ = buf.WriteByte(')')
	}
	return buf.String()
}

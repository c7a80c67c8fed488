package staff

import (
	"fmt"
	"sort"
	"strings"

	sonic "github.com/bytedance/sonic"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Role markers used in staff.json. Roles are free text such as "لاعب" or
// "إداري الفريق", so membership is a substring test.
const (
	RolePlayer = "لاعب"
	RoleAdmin  = "إداري"
)

// Member is one entry of staff.json.
type Member struct {
	Team  string `json:"team"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// Staff is the ordered list of staff.json entries.
type Staff []Member

// Option is a selectable award candidate.
type Option struct {
	Value string
	Team  string
	Label string
}

func Decode(data []byte) (Staff, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Staff{}, nil
	}

	var raw []Member
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode staff: %w", err)
	}

	out := make(Staff, 0, len(raw))
	for _, m := range raw {
		m.Team = strings.TrimSpace(m.Team)
		m.Role = strings.TrimSpace(m.Role)
		m.Name = strings.TrimSpace(m.Name)
		out = append(out, m)
	}
	return out, nil
}

func (s Staff) Encode() ([]byte, error) {
	data, err := sonic.ConfigStd.MarshalIndent([]Member(s), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode staff: %w", err)
	}
	return data, nil
}

// WithRole keeps named members whose role contains marker.
func (s Staff) WithRole(marker string) Staff {
	out := make(Staff, 0, len(s))
	for _, m := range s {
		if m.Name != "" && strings.Contains(m.Role, marker) {
			out = append(out, m)
		}
	}
	return out
}

func (s Staff) Players() Staff { return s.WithRole(RolePlayer) }

func (s Staff) Admins() Staff { return s.WithRole(RoleAdmin) }

// Lookup returns the first member called name.
func (s Staff) Lookup(name string) (Member, bool) {
	if name == "" {
		return Member{}, false
	}
	for _, m := range s {
		if m.Name == name {
			return m, true
		}
	}
	return Member{}, false
}

// Options renders members as choices labelled with name and team, ordered
// by label in the collation of lang.
func (s Staff) Options(lang language.Tag) []Option {
	out := make([]Option, 0, len(s))
	for _, m := range s {
		label := m.Name
		if m.Team != "" {
			label += " — " + m.Team
		}
		out = append(out, Option{Value: m.Name, Team: m.Team, Label: label})
	}

	collator := collate.New(lang)
	sort.SliceStable(out, func(i, j int) bool {
		return collator.CompareString(out[i].Label, out[j].Label) < 0
	})
	return out
}

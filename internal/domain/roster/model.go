package roster

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// TeamID is a team name as it appears in the roster. Match rows reference
// teams by this exact string.
type TeamID string

// Player is one registered squad member. Number is free text and may be empty.
type Player struct {
	Number string `json:"number"`
	Name   string `json:"name"`
}

// Team is one roster entry.
type Team struct {
	Name    string   `json:"-"`
	Group   string   `json:"group"`
	Players []Player `json:"players"`
}

// UnmarshalJSON accepts both roster.json shapes: the full
// {"group": ..., "players": [...]} entry and a bare player list, which
// leaves the group empty.
func (t *Team) UnmarshalJSON(data []byte) error {
	if trimmed := strings.TrimSpace(string(data)); strings.HasPrefix(trimmed, "[") {
		var players []Player
		if err := sonic.Unmarshal(data, &players); err != nil {
			return err
		}
		*t = Team{Players: players}
		return nil
	}

	type plain Team
	var out plain
	if err := sonic.Unmarshal(data, &out); err != nil {
		return err
	}
	*t = Team(out)
	return nil
}

// UnmarshalJSON accepts shirt numbers written as JSON numbers or strings.
func (p *Player) UnmarshalJSON(data []byte) error {
	var raw struct {
		Number any    `json:"number"`
		Name   string `json:"name"`
	}
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return err
	}

	number := ""
	switch v := raw.Number.(type) {
	case string:
		number = v
	case float64:
		number = strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
	default:
		return fmt.Errorf("player %q: unsupported number %v", raw.Name, v)
	}
	*p = Player{Number: strings.TrimSpace(number), Name: strings.TrimSpace(raw.Name)}
	return nil
}

// Roster maps team name to its registration.
type Roster map[TeamID]Team

// Decode reads roster.json: an object keyed by team name. Teams written as
// a bare player list have no group, so group checks skip them.
func Decode(data []byte) (Roster, error) {
	raw := make(map[string]Team)
	if len(strings.TrimSpace(string(data))) == 0 {
		return Roster{}, nil
	}
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}

	out := make(Roster, len(raw))
	for name, item := range raw {
		item.Name = name
		out[TeamID(name)] = item
	}
	return out, nil
}

// Encode writes the roster back in the roster.json shape.
func (r Roster) Encode() ([]byte, error) {
	raw := make(map[string]Team, len(r))
	for id, item := range r {
		raw[string(id)] = item
	}
	data, err := sonic.ConfigStd.MarshalIndent(raw, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode roster: %w", err)
	}
	return data, nil
}

// Resolve checks that name refers to a rostered team.
func (r Roster) Resolve(name string) (TeamID, bool) {
	id := TeamID(name)
	_, ok := r[id]
	return id, ok
}

// Teams returns team names in byte order.
func (r Roster) Teams() []string {
	out := make([]string, 0, len(r))
	for id := range r {
		out = append(out, string(id))
	}
	sort.Strings(out)
	return out
}

// PlayerOption is a selectable player of a team.
type PlayerOption struct {
	Value string
	Label string
}

// PlayerOptions lists the named players of team. The label puts the shirt
// number in front of the name when one is registered.
func (r Roster) PlayerOptions(team string) []PlayerOption {
	item, ok := r[TeamID(team)]
	if !ok {
		return []PlayerOption{}
	}

	out := make([]PlayerOption, 0, len(item.Players))
	for _, p := range item.Players {
		if p.Name == "" {
			continue
		}
		label := p.Name
		if p.Number != "" {
			label = p.Number + " — " + p.Name
		}
		out = append(out, PlayerOption{Value: p.Name, Label: label})
	}
	return out
}

// TeamOf finds the team a player is registered with.
func (r Roster) TeamOf(player string) (string, bool) {
	if player == "" {
		return "", false
	}
	for _, name := range r.Teams() {
		for _, p := range r[TeamID(name)].Players {
			if p.Name == player {
				return name, true
			}
		}
	}
	return "", false
}

package httpapi

import (
	"sort"

	"github.com/riskibarqy/cup-results/internal/domain/award"
	"github.com/riskibarqy/cup-results/internal/domain/match"
	"github.com/riskibarqy/cup-results/internal/domain/roster"
	"github.com/riskibarqy/cup-results/internal/domain/staff"
	"github.com/riskibarqy/cup-results/internal/domain/standing"
	"github.com/riskibarqy/cup-results/internal/usecase"
)

type standingDTO struct {
	Rank           int    `json:"rank"`
	Team           string `json:"team"`
	Played         int    `json:"played"`
	Wins           int    `json:"wins"`
	Draws          int    `json:"draws"`
	Losses         int    `json:"losses"`
	GoalsFor       int    `json:"goals_for"`
	GoalsAgainst   int    `json:"goals_against"`
	GoalDifference int    `json:"goal_difference"`
	Points         int    `json:"points"`
}

type groupTableDTO struct {
	Group     string        `json:"group"`
	Standings []standingDTO `json:"standings"`
}

func toGroupTableDTO(table usecase.GroupTable) groupTableDTO {
	rows := make([]standingDTO, 0, len(table.Standings))
	for i, s := range table.Standings {
		rows = append(rows, toStandingDTO(i+1, s))
	}
	return groupTableDTO{Group: table.Group, Standings: rows}
}

func toStandingDTO(rank int, s standing.Standing) standingDTO {
	return standingDTO{
		Rank:           rank,
		Team:           s.Team,
		Played:         s.Played,
		Wins:           s.Wins,
		Draws:          s.Draws,
		Losses:         s.Losses,
		GoalsFor:       s.GoalsFor,
		GoalsAgainst:   s.GoalsAgainst,
		GoalDifference: s.GoalDifference,
		Points:         s.Points,
	}
}

type tallyEntryDTO struct {
	Player string `json:"player"`
	Count  int    `json:"count"`
}

type sideEventsDTO struct {
	Goals  []tallyEntryDTO `json:"goals"`
	Yellow []tallyEntryDTO `json:"yellow"`
	Red    []tallyEntryDTO `json:"red"`
	VAR    string          `json:"var"`
}

type matchDTO struct {
	Code          string        `json:"match_code"`
	Group         string        `json:"group"`
	Round         string        `json:"round"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Team1         string        `json:"team1"`
	Team2         string        `json:"team2"`
	Score1        string        `json:"score1"`
	Score2        string        `json:"score2"`
	Played        bool          `json:"played"`
	Referee1      string        `json:"referee1"`
	Referee2      string        `json:"referee2"`
	Commentator   string        `json:"commentator"`
	PlayerOfMatch string        `json:"player_of_match"`
	Home          sideEventsDTO `json:"team1_events"`
	Away          sideEventsDTO `json:"team2_events"`
}

func toMatchDTO(m match.Match) matchDTO {
	side := func(i int) sideEventsDTO {
		return sideEventsDTO{
			Goals:  toTallyDTO(m.Goals[i]),
			Yellow: toTallyDTO(m.Yellow[i]),
			Red:    toTallyDTO(m.Red[i]),
			VAR:    m.VAR[i],
		}
	}

	return matchDTO{
		Code:          m.Code,
		Group:         m.Group,
		Round:         m.Round,
		Date:          m.Date,
		Time:          m.Time,
		Team1:         m.Team1,
		Team2:         m.Team2,
		Score1:        m.Score1,
		Score2:        m.Score2,
		Played:        m.Played(),
		Referee1:      m.Referee1,
		Referee2:      m.Referee2,
		Commentator:   m.Commentator,
		PlayerOfMatch: m.PlayerOfMatch,
		Home:          side(0),
		Away:          side(1),
	}
}

func toMatchDTOs(items []match.Match) []matchDTO {
	out := make([]matchDTO, 0, len(items))
	for _, m := range items {
		out = append(out, toMatchDTO(m))
	}
	return out
}

func toTallyDTO(t match.Tally) []tallyEntryDTO {
	out := make([]tallyEntryDTO, 0, len(t))
	for player, count := range t {
		out = append(out, tallyEntryDTO{Player: player, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Player < out[j].Player })
	return out
}

type editRequest struct {
	Edits []editOpRequest `json:"edits" validate:"required,min=1,max=200,dive"`
}

type editOpRequest struct {
	Kind        string `json:"kind" validate:"required,oneof=set_score set_var set_officials set_player_of_match add_goal add_card clear_goals clear_cards undo_goal undo_card reset"`
	Side        string `json:"side" validate:"omitempty,oneof=team1 team2"`
	Player      string `json:"player" validate:"max=200"`
	Card        string `json:"card" validate:"omitempty,oneof=yellow red"`
	Score1      string `json:"score1" validate:"max=10"`
	Score2      string `json:"score2" validate:"max=10"`
	VAR1        string `json:"var1" validate:"max=10"`
	VAR2        string `json:"var2" validate:"max=10"`
	Referee1    string `json:"referee1" validate:"max=200"`
	Referee2    string `json:"referee2" validate:"max=200"`
	Commentator string `json:"commentator" validate:"max=200"`
}

func (r editRequest) ops() []match.Op {
	out := make([]match.Op, 0, len(r.Edits))
	for _, e := range r.Edits {
		out = append(out, match.Op{
			Kind:        match.OpKind(e.Kind),
			Side:        match.Side(e.Side),
			Player:      e.Player,
			Card:        match.CardColor(e.Card),
			Score1:      e.Score1,
			Score2:      e.Score2,
			VAR1:        e.VAR1,
			VAR2:        e.VAR2,
			Referee1:    e.Referee1,
			Referee2:    e.Referee2,
			Commentator: e.Commentator,
		})
	}
	return out
}

type editResultDTO struct {
	Match    matchDTO `json:"match"`
	Applied  int      `json:"applied"`
	Revision string   `json:"revision"`
}

type officialsDTO struct {
	Referees     []string `json:"referees"`
	Commentators []string `json:"commentators"`
}

type playerOptionDTO struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func toPlayerOptionDTOs(items []roster.PlayerOption) []playerOptionDTO {
	out := make([]playerOptionDTO, 0, len(items))
	for _, p := range items {
		out = append(out, playerOptionDTO{Value: p.Value, Label: p.Label})
	}
	return out
}

type warningDTO struct {
	Code      string `json:"code"`
	Row       int    `json:"row"`
	MatchCode string `json:"match_code,omitempty"`
	Message   string `json:"message"`
}

func toWarningDTOs(items []roster.Warning) []warningDTO {
	out := make([]warningDTO, 0, len(items))
	for _, w := range items {
		out = append(out, warningDTO{
			Code:      string(w.Code),
			Row:       w.Row,
			MatchCode: w.MatchCode,
			Message:   w.Message,
		})
	}
	return out
}

type importResultDTO struct {
	Revision string       `json:"revision"`
	Warnings []warningDTO `json:"warnings"`
}

type awardsRequest struct {
	Teams struct {
		Champion string `json:"champion" validate:"max=200"`
		RunnerUp string `json:"runnerup" validate:"max=200"`
		Third    string `json:"third" validate:"max=200"`
		Fourth   string `json:"fourth" validate:"max=200"`
	} `json:"teams"`
	TopScorer  string `json:"top_scorer" validate:"max=200"`
	BestPlayer string `json:"best_player" validate:"max=200"`
	BestKeeper string `json:"best_keeper" validate:"max=200"`
	BestAdmin  string `json:"best_admin" validate:"max=200"`
}

func (r awardsRequest) selection() award.Selection {
	return award.Selection{
		Teams: award.Teams{
			Champion: r.Teams.Champion,
			RunnerUp: r.Teams.RunnerUp,
			Third:    r.Teams.Third,
			Fourth:   r.Teams.Fourth,
		},
		TopScorer:  r.TopScorer,
		BestPlayer: r.BestPlayer,
		BestKeeper: r.BestKeeper,
		BestAdmin:  r.BestAdmin,
	}
}

type candidateDTO struct {
	Value string `json:"value"`
	Team  string `json:"team"`
	Label string `json:"label"`
}

type awardOptionsDTO struct {
	Teams   []string       `json:"teams"`
	Players []candidateDTO `json:"players"`
	Admins  []candidateDTO `json:"admins"`
}

func toAwardOptionsDTO(opts usecase.AwardOptions) awardOptionsDTO {
	candidates := func(items []staff.Option) []candidateDTO {
		out := make([]candidateDTO, 0, len(items))
		for _, o := range items {
			out = append(out, candidateDTO{Value: o.Value, Team: o.Team, Label: o.Label})
		}
		return out
	}
	teams := opts.Teams
	if teams == nil {
		teams = []string{}
	}
	return awardOptionsDTO{Teams: teams, Players: candidates(opts.Players), Admins: candidates(opts.Admins)}
}

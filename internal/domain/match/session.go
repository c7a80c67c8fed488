package match

import "strings"

type OpKind string

const (
	OpSetScore         OpKind = "set_score"
	OpSetVAR           OpKind = "set_var"
	OpSetOfficials     OpKind = "set_officials"
	OpSetPlayerOfMatch OpKind = "set_player_of_match"
	OpAddGoal          OpKind = "add_goal"
	OpAddCard          OpKind = "add_card"
	OpClearGoals       OpKind = "clear_goals"
	OpClearCards       OpKind = "clear_cards"

	// Session commands. They rewrite the op list and are never stored in it.
	OpUndoGoal OpKind = "undo_goal"
	OpUndoCard OpKind = "undo_card"
	OpReset    OpKind = "reset"
)

// Op is one edit applied to a match. Only the fields relevant to Kind are read.
type Op struct {
	Kind        OpKind
	Side        Side
	Player      string
	Card        CardColor
	Score1      string
	Score2      string
	VAR1        string
	VAR2        string
	Referee1    string
	Referee2    string
	Commentator string
}

func SetScore(score1, score2 string) Op {
	return Op{Kind: OpSetScore, Score1: score1, Score2: score2}
}

func SetVAR(var1, var2 string) Op {
	return Op{Kind: OpSetVAR, VAR1: var1, VAR2: var2}
}

func SetOfficials(referee1, referee2, commentator string) Op {
	return Op{Kind: OpSetOfficials, Referee1: referee1, Referee2: referee2, Commentator: commentator}
}

func SetPlayerOfMatch(player string) Op {
	return Op{Kind: OpSetPlayerOfMatch, Player: player}
}

func AddGoal(side Side, player string) Op {
	return Op{Kind: OpAddGoal, Side: side, Player: player}
}

func AddCard(side Side, player string, color CardColor) Op {
	return Op{Kind: OpAddCard, Side: side, Player: player, Card: color}
}

// Valid reports whether the op changes anything when replayed. Goal and card
// ops need a known side and a player name.
func (op Op) Valid() bool {
	switch op.Kind {
	case OpSetScore, OpSetVAR, OpSetOfficials, OpSetPlayerOfMatch, OpClearGoals, OpClearCards:
		return true
	case OpAddGoal:
		_, ok := op.Side.index()
		return ok && strings.TrimSpace(op.Player) != ""
	case OpAddCard:
		_, ok := op.Side.index()
		return ok && op.Card.Valid() && strings.TrimSpace(op.Player) != ""
	default:
		return false
	}
}

// EditSession is an immutable edit history over one match: the snapshot the
// edit started from plus the ops applied since. Every method returns a new
// session; the receiver is never modified.
type EditSession struct {
	original Match
	ops      []Op
}

func NewEditSession(m Match) EditSession {
	return EditSession{original: m.Clone()}
}

func (s EditSession) Original() Match {
	return s.original.Clone()
}

func (s EditSession) Ops() []Op {
	out := make([]Op, len(s.ops))
	copy(out, s.ops)
	return out
}

// Apply appends op. Invalid ops leave the session unchanged.
func (s EditSession) Apply(op Op) EditSession {
	if !op.Valid() {
		return s
	}
	ops := make([]Op, len(s.ops), len(s.ops)+1)
	copy(ops, s.ops)
	return EditSession{original: s.original, ops: append(ops, op)}
}

// Run applies op, treating the session commands (undo and reset) specially.
func (s EditSession) Run(op Op) EditSession {
	switch op.Kind {
	case OpUndoGoal:
		return s.UndoGoal()
	case OpUndoCard:
		return s.UndoCard()
	case OpReset:
		return s.Reset()
	default:
		return s.Apply(op)
	}
}

// UndoGoal drops the latest goal added since the last goal clear.
func (s EditSession) UndoGoal() EditSession {
	return s.undo(OpAddGoal, OpClearGoals)
}

// UndoCard drops the latest card added since the last card clear.
func (s EditSession) UndoCard() EditSession {
	return s.undo(OpAddCard, OpClearCards)
}

// Reset discards every op, returning to the snapshot.
func (s EditSession) Reset() EditSession {
	return EditSession{original: s.original}
}

func (s EditSession) undo(add, clear OpKind) EditSession {
	for i := len(s.ops) - 1; i >= 0; i-- {
		switch s.ops[i].Kind {
		case clear:
			return s
		case add:
			ops := make([]Op, 0, len(s.ops)-1)
			ops = append(ops, s.ops[:i]...)
			ops = append(ops, s.ops[i+1:]...)
			return EditSession{original: s.original, ops: ops}
		}
	}
	return s
}

// Current replays the ops over the snapshot.
func (s EditSession) Current() Match {
	m := s.original.Clone()
	for _, op := range s.ops {
		m = replay(m, op)
	}
	return m
}

func replay(m Match, op Op) Match {
	switch op.Kind {
	case OpSetScore:
		m.Score1 = strings.TrimSpace(op.Score1)
		m.Score2 = strings.TrimSpace(op.Score2)
	case OpSetVAR:
		m.VAR[0] = varOrZero(op.VAR1)
		m.VAR[1] = varOrZero(op.VAR2)
	case OpSetOfficials:
		m.Referee1 = strings.TrimSpace(op.Referee1)
		m.Referee2 = strings.TrimSpace(op.Referee2)
		m.Commentator = strings.TrimSpace(op.Commentator)
	case OpSetPlayerOfMatch:
		m.PlayerOfMatch = strings.TrimSpace(op.Player)
	case OpAddGoal:
		idx, _ := op.Side.index()
		m.Goals[idx].add(op.Player, 1)
	case OpAddCard:
		idx, _ := op.Side.index()
		if op.Card == CardRed {
			m.Red[idx].add(op.Player, 1)
		} else {
			m.Yellow[idx].add(op.Player, 1)
		}
	case OpClearGoals:
		m.Goals = [2]Tally{{}, {}}
	case OpClearCards:
		m.Yellow = [2]Tally{{}, {}}
		m.Red = [2]Tally{{}, {}}
	}
	return m
}

func varOrZero(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "0"
	}
	return v
}

// Package checkers implements English draughts on the shared engine
// contract. Player1 starts on rows 0-2 and moves toward row 7; Player2
// starts on rows 5-7 and moves toward row 0.
package checkers

import (
	"tabletop/agent"
	"tabletop/game"
	"tabletop/searcher"
)

const BoardSize = 8

// Board cells: 0 empty, +1/-1 a man, +2/-2 a king; the sign is the owner.
type State struct {
	Board         [BoardSize][BoardSize]int8
	CurrentPlayer game.Player
}

type Square struct {
	Row, Col int
}

// Move is a full step or jump sequence; Captures lists every square whose
// piece the jump removes, in order.
type Move struct {
	From     Square
	To       Square
	Captures []Square
}

func NewState() State {
	var s State
	for row := 0; row < 3; row++ {
		for col := 0; col < BoardSize; col++ {
			if (row+col)%2 == 1 {
				s.Board[row][col] = 1
			}
		}
	}
	for row := 5; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if (row+col)%2 == 1 {
				s.Board[row][col] = -1
			}
		}
	}
	s.CurrentPlayer = game.Player1
	return s
}

func sign(p game.Player) int8 {
	if p == game.Player1 {
		return 1
	}
	return -1
}

func onBoard(sq Square) bool {
	return sq.Row >= 0 && sq.Row < BoardSize && sq.Col >= 0 && sq.Col < BoardSize
}

// moveDirs returns the diagonal directions a piece may step or jump in.
func moveDirs(piece int8) []Square {
	king := piece == 2 || piece == -2
	if king {
		return []Square{{1, -1}, {1, 1}, {-1, -1}, {-1, 1}}
	}
	if piece > 0 {
		return []Square{{1, -1}, {1, 1}}
	}
	return []Square{{-1, -1}, {-1, 1}}
}

type Engine struct{}

func New() Engine {
	return Engine{}
}

// GenerateMoves returns all legal moves for player. Captures are mandatory:
// if any jump exists, only jumps are generated, each extended until the
// jumping piece can jump no further (or is crowned, which ends the move).
func (Engine) GenerateMoves(s State, player game.Player) []Move {
	if player != s.CurrentPlayer {
		return nil
	}

	var jumps, steps []Move
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			piece := s.Board[row][col]
			if piece == 0 || (piece > 0) != (player == game.Player1) {
				continue
			}
			from := Square{row, col}
			jumps = append(jumps, s.jumpsFrom(from, piece)...)
			if len(jumps) > 0 {
				continue // steps are moot once a jump exists
			}
			for _, dir := range moveDirs(piece) {
				to := Square{row + dir.Row, col + dir.Col}
				if onBoard(to) && s.Board[to.Row][to.Col] == 0 {
					steps = append(steps, Move{From: from, To: to})
				}
			}
		}
	}

	if len(jumps) > 0 {
		return jumps
	}
	return steps
}

// jumpsFrom explores every maximal capture sequence starting at from.
func (s State) jumpsFrom(from Square, piece int8) []Move {
	var sequences []Move
	s.extendJump(from, from, piece, nil, &sequences)
	return sequences
}

func (s State) extendJump(origin, at Square, piece int8, captured []Square, out *[]Move) {
	for _, dir := range moveDirs(piece) {
		over := Square{at.Row + dir.Row, at.Col + dir.Col}
		land := Square{at.Row + 2*dir.Row, at.Col + 2*dir.Col}
		if !onBoard(land) {
			continue
		}
		victim := s.Board[over.Row][over.Col]
		if victim == 0 || (victim > 0) == (piece > 0) {
			continue
		}
		if s.Board[land.Row][land.Col] != 0 && land != origin {
			continue
		}
		if contains(captured, over) {
			continue
		}

		seq := append(append([]Square{}, captured...), over)
		isMan := piece == 1 || piece == -1
		crowned := isMan && land.Row == crownRowOf(piece)
		if crowned {
			// Crowning ends the move even if more jumps would exist.
			*out = append(*out, Move{From: origin, To: land, Captures: seq})
			continue
		}

		next := s
		next.Board[at.Row][at.Col] = 0
		next.Board[over.Row][over.Col] = 0
		next.Board[land.Row][land.Col] = piece
		before := len(*out)
		next.extendJump(origin, land, piece, seq, out)
		if len(*out) == before {
			// No continuation; the sequence ends here.
			*out = append(*out, Move{From: origin, To: land, Captures: seq})
		}
	}
}

func crownRowOf(piece int8) int {
	if piece > 0 {
		return BoardSize - 1
	}
	return 0
}

func contains(squares []Square, sq Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

func (Engine) ApplyMove(s State, m Move) State {
	ns := s
	piece := ns.Board[m.From.Row][m.From.Col]
	ns.Board[m.From.Row][m.From.Col] = 0
	for _, c := range m.Captures {
		ns.Board[c.Row][c.Col] = 0
	}
	if (piece == 1 || piece == -1) && m.To.Row == crownRowOf(piece) {
		piece *= 2
	}
	ns.Board[m.To.Row][m.To.Col] = piece
	ns.CurrentPlayer = s.CurrentPlayer.Opponent()
	return ns
}

// Result: the side to move loses when it has no move, which covers both
// elimination and a full block.
func (e Engine) Result(s State) game.Result {
	if len(e.GenerateMoves(s, s.CurrentPlayer)) == 0 {
		return game.Result{
			Finished: true,
			Winner:   s.CurrentPlayer.Opponent(),
			Reason:   "No moves",
		}
	}
	return game.Result{}
}

const (
	manValue      = 10.0
	kingValue     = 15.0
	advanceWeight = 0.5
	backRankBonus = 1.0
)

// Evaluate scores material (kings above men), man advancement, and kept
// back-rank guards.
func (Engine) Evaluate(s State, player game.Player) float64 {
	var score float64
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			piece := s.Board[row][col]
			if piece == 0 {
				continue
			}
			owner := game.Player1
			if piece < 0 {
				owner = game.Player2
			}
			var v float64
			switch {
			case piece == 2 || piece == -2:
				v = kingValue
			case owner == game.Player1:
				v = manValue + advanceWeight*float64(row)
				if row == 0 {
					v += backRankBonus
				}
			default:
				v = manValue + advanceWeight*float64(BoardSize-1-row)
				if row == BoardSize-1 {
					v += backRankBonus
				}
			}
			if owner == player {
				score += v
			} else {
				score -= v
			}
		}
	}
	return score
}

// AIConfig maps a difficulty tier to a search configuration scaled to the
// material evaluation above.
func AIConfig(d searcher.Difficulty) searcher.Config {
	cfg := searcher.Config{Difficulty: d, MaxMillis: 3000}
	switch d {
	case searcher.Easy:
		cfg.MaxDepth = 2
		cfg.Randomness = 12
	case searcher.Medium:
		cfg.MaxDepth = 3
		cfg.Randomness = 4
	default:
		cfg.Difficulty = searcher.Hard
		cfg.MaxDepth = 4
		cfg.Randomness = 0
	}
	return cfg
}

func NewAgent(d searcher.Difficulty) *agent.Agent[State, Move] {
	return agent.New[State, Move](New(), AIConfig(d))
}

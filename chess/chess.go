// Package chess adapts the notnil/chess rules library to the shared engine
// contract. Player1 plays White.
package chess

import (
	rules "github.com/notnil/chess"

	"tabletop/agent"
	"tabletop/game"
	"tabletop/searcher"
)

// State wraps a library position. Positions are immutable on the library
// side as well: Update returns a fresh position.
type State struct {
	Pos *rules.Position
}

// Move is the library's move type, passed through untouched.
type Move = *rules.Move

func NewState() State {
	return State{Pos: rules.NewGame().Position()}
}

func colorOf(p game.Player) rules.Color {
	if p == game.Player1 {
		return rules.White
	}
	return rules.Black
}

// Turn reports which seat moves next.
func (s State) Turn() game.Player {
	if s.Pos.Turn() == rules.White {
		return game.Player1
	}
	return game.Player2
}

type Engine struct{}

func New() Engine {
	return Engine{}
}

// GenerateMoves returns the legal moves when it is player's turn, and
// nothing otherwise - chess alternates strictly, so the off-turn player
// never has a move.
func (Engine) GenerateMoves(s State, player game.Player) []Move {
	if s.Pos.Turn() != colorOf(player) {
		return nil
	}
	return s.Pos.ValidMoves()
}

func (Engine) ApplyMove(s State, m Move) State {
	return State{Pos: s.Pos.Update(m)}
}

func (Engine) Result(s State) game.Result {
	switch s.Pos.Status() {
	case rules.Checkmate:
		// The side to move is the one mated.
		winner := game.Player1
		if s.Pos.Turn() == rules.White {
			winner = game.Player2
		}
		return game.Result{Finished: true, Winner: winner, Reason: "Checkmate"}
	case rules.Stalemate:
		return game.Result{Finished: true, Reason: "Stalemate"}
	default:
		return game.Result{}
	}
}

// Standard centipawn piece values.
var pieceValues = map[rules.PieceType]float64{
	rules.Pawn:   100,
	rules.Knight: 320,
	rules.Bishop: 330,
	rules.Rook:   500,
	rules.Queen:  900,
}

// Evaluate is a material count in centipawns plus a small mobility term for
// the side to move.
func (Engine) Evaluate(s State, player game.Player) float64 {
	color := colorOf(player)
	var score float64

	board := s.Pos.Board()
	for sq := rules.A1; sq <= rules.H8; sq++ {
		piece := board.Piece(sq)
		if piece == rules.NoPiece {
			continue
		}
		value := pieceValues[piece.Type()]
		if piece.Color() == color {
			score += value
		} else {
			score -= value
		}
	}

	mobility := 0.5 * float64(len(s.Pos.ValidMoves()))
	if s.Pos.Turn() == color {
		score += mobility
	} else {
		score -= mobility
	}

	return score
}

// AIConfig maps a difficulty tier to a search configuration scaled to
// centipawn evaluation units.
func AIConfig(d searcher.Difficulty) searcher.Config {
	cfg := searcher.Config{Difficulty: d, MaxMillis: 3000}
	switch d {
	case searcher.Easy:
		cfg.MaxDepth = 2
		cfg.Randomness = 150
	case searcher.Medium:
		cfg.MaxDepth = 3
		cfg.Randomness = 40
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

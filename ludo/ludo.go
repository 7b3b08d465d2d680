// Package ludo implements a two-player ludo variant on the shared engine
// contract: four tokens each on a 52-square shared track plus a six-square
// home column, entry on a six, captures, exact count to finish.
package ludo

import (
	"tabletop/agent"
	"tabletop/game"
	"tabletop/searcher"
)

const (
	NumTokens = 4
	TrackLen  = 52
	HomeLen   = 6

	// Token progress encoding: Yard before entry, 0..TrackLen-1 on the
	// shared track (relative to the player's start square), TrackLen..
	// TrackLen+HomeLen-1 in the home column, Finished past it.
	Yard     = -1
	Finished = TrackLen + HomeLen
)

// startOffset is each player's entry square on the absolute track.
var startOffset = [2]int{0, TrackLen / 2}

// State is a snapshot between single-token moves. Die is the current roll;
// zero means the turn needs a roll first.
type State struct {
	Tokens        [2][NumTokens]int // progress encoding per seat
	Die           int
	CurrentPlayer game.Player
}

// Move advances one token by the rolled die.
type Move struct {
	Token int
	Die   int
}

func NewState() State {
	var s State
	for seat := 0; seat < 2; seat++ {
		for i := 0; i < NumTokens; i++ {
			s.Tokens[seat][i] = Yard
		}
	}
	s.CurrentPlayer = game.Player1
	return s
}

// WithDie returns a copy of s with the turn's roll set.
func (s State) WithDie(die int) State {
	s.Die = die
	return s
}

// Pass advances the turn when the roll moves nothing.
func (s State) Pass() State {
	s.Die = 0
	s.CurrentPlayer = s.CurrentPlayer.Opponent()
	return s
}

// trackSquare returns the absolute track square of a token, or -1 when it
// is not on the shared track (yard, home column, finished).
func trackSquare(p game.Player, progress int) int {
	if progress < 0 || progress >= TrackLen {
		return -1
	}
	return (startOffset[p.Seat()] + progress) % TrackLen
}

type Engine struct{}

func New() Engine {
	return Engine{}
}

// GenerateMoves lists the tokens the rolled die can legally advance: enter
// on a six, move inside the board, finish on an exact count.
func (Engine) GenerateMoves(s State, player game.Player) []Move {
	if player != s.CurrentPlayer || s.Die == 0 {
		return nil
	}

	var moves []Move
	for i, progress := range s.Tokens[player.Seat()] {
		switch {
		case progress == Yard:
			if s.Die == 6 {
				moves = append(moves, Move{Token: i, Die: s.Die})
			}
		case progress == Finished:
			// Nothing left to do.
		case progress+s.Die <= Finished:
			moves = append(moves, Move{Token: i, Die: s.Die})
		}
	}
	return moves
}

// ApplyMove advances the token, captures any opponent token on the landing
// square, and passes the turn - except a six grants another roll.
func (Engine) ApplyMove(s State, m Move) State {
	ns := s
	seat := s.CurrentPlayer.Seat()

	progress := ns.Tokens[seat][m.Token]
	if progress == Yard {
		progress = 0
	} else {
		progress += m.Die
	}
	ns.Tokens[seat][m.Token] = progress

	if square := trackSquare(s.CurrentPlayer, progress); square >= 0 {
		opponent := s.CurrentPlayer.Opponent()
		for i, theirProgress := range ns.Tokens[opponent.Seat()] {
			if trackSquare(opponent, theirProgress) == square {
				ns.Tokens[opponent.Seat()][i] = Yard
			}
		}
	}

	ns.Die = 0
	if m.Die != 6 {
		ns.CurrentPlayer = s.CurrentPlayer.Opponent()
	}
	return ns
}

func (Engine) Result(s State) game.Result {
	for _, p := range []game.Player{game.Player1, game.Player2} {
		done := 0
		for _, progress := range s.Tokens[p.Seat()] {
			if progress == Finished {
				done++
			}
		}
		if done == NumTokens {
			return game.Result{Finished: true, Winner: p, Reason: "All home"}
		}
	}
	return game.Result{}
}

const (
	progressWeight  = 1.0
	finishedBonus   = 6.0
	exposurePenalty = 0.5
)

// Evaluate sums token progress, rewards finished tokens, and penalizes
// tokens an opponent could capture within one roll.
func (e Engine) Evaluate(s State, player game.Player) float64 {
	return e.sideScore(s, player) - e.sideScore(s, player.Opponent())
}

func (Engine) sideScore(s State, p game.Player) float64 {
	opponent := p.Opponent()
	var score float64
	for _, progress := range s.Tokens[p.Seat()] {
		if progress == Yard {
			continue
		}
		score += progressWeight * float64(progress)
		if progress == Finished {
			score += finishedBonus
			continue
		}
		square := trackSquare(p, progress)
		if square < 0 {
			continue // home column is safe
		}
		for _, theirProgress := range s.Tokens[opponent.Seat()] {
			theirSquare := trackSquare(opponent, theirProgress)
			if theirSquare < 0 {
				continue
			}
			gap := (square - theirSquare + TrackLen) % TrackLen
			if gap >= 1 && gap <= 6 {
				score -= exposurePenalty
				break
			}
		}
	}
	return score
}

func AIConfig(d searcher.Difficulty) searcher.Config {
	cfg := searcher.Config{Difficulty: d, MaxMillis: 3000}
	switch d {
	case searcher.Easy:
		cfg.MaxDepth = 2
		cfg.Randomness = 20
	case searcher.Medium:
		cfg.MaxDepth = 3
		cfg.Randomness = 6
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

package engine

import (
	"golang.org/x/exp/rand"

	"tabletop/agent"
	"tabletop/backgammon"
	"tabletop/checkers"
	"tabletop/chess"
	"tabletop/dominoes"
	"tabletop/game"
	"tabletop/ludo"
)

// NewBackgammonLocal wires a backgammon match: dice rolled between turns,
// blocked turns forfeited.
func NewBackgammonLocal(a1, a2 *agent.Agent[backgammon.State, backgammon.Move], seed uint64) *Local[backgammon.State, backgammon.Move] {
	l := NewLocal(backgammon.New(), a1, a2, backgammon.NewState(), seed)
	l.Turn = func(s backgammon.State) game.Player { return s.CurrentPlayer }
	l.Roll = func(s backgammon.State, rng *rand.Rand) backgammon.State {
		if len(s.Dice) > 0 {
			return s
		}
		return s.WithRoll(1+rng.Intn(6), 1+rng.Intn(6))
	}
	l.Pass = func(s backgammon.State) backgammon.State { return s.Pass() }
	l.Equal = func(a, b backgammon.Move) bool { return a == b }
	return l
}

// NewLudoLocal wires a ludo match: one die per turn, unusable rolls passed.
func NewLudoLocal(a1, a2 *agent.Agent[ludo.State, ludo.Move], seed uint64) *Local[ludo.State, ludo.Move] {
	l := NewLocal(ludo.New(), a1, a2, ludo.NewState(), seed)
	l.Turn = func(s ludo.State) game.Player { return s.CurrentPlayer }
	l.Roll = func(s ludo.State, rng *rand.Rand) ludo.State {
		if s.Die != 0 {
			return s
		}
		return s.WithDie(1 + rng.Intn(6))
	}
	l.Pass = func(s ludo.State) ludo.State { return s.Pass() }
	l.Equal = func(a, b ludo.Move) bool { return a == b }
	return l
}

// NewDominoesLocal wires a block dominoes match; the deal comes from seed.
func NewDominoesLocal(a1, a2 *agent.Agent[dominoes.State, dominoes.Move], seed uint64) *Local[dominoes.State, dominoes.Move] {
	deal := dominoes.NewState(rand.New(rand.NewSource(seed)))
	l := NewLocal(dominoes.New(), a1, a2, deal, seed)
	l.Turn = func(s dominoes.State) game.Player { return s.CurrentPlayer }
	l.Pass = func(s dominoes.State) dominoes.State { return s.Pass() }
	l.Equal = func(a, b dominoes.Move) bool { return a == b }
	return l
}

// NewCheckersLocal wires a checkers match. A moveless player is terminal in
// checkers, so no pass hook is needed.
func NewCheckersLocal(a1, a2 *agent.Agent[checkers.State, checkers.Move], seed uint64) *Local[checkers.State, checkers.Move] {
	l := NewLocal(checkers.New(), a1, a2, checkers.NewState(), seed)
	l.Turn = func(s checkers.State) game.Player { return s.CurrentPlayer }
	l.Equal = checkersMovesEqual
	return l
}

func checkersMovesEqual(a, b checkers.Move) bool {
	if a.From != b.From || a.To != b.To || len(a.Captures) != len(b.Captures) {
		return false
	}
	for i := range a.Captures {
		if a.Captures[i] != b.Captures[i] {
			return false
		}
	}
	return true
}

// NewChessLocal wires a chess match. Stalemate is terminal, so no pass hook.
func NewChessLocal(a1, a2 *agent.Agent[chess.State, chess.Move], seed uint64) *Local[chess.State, chess.Move] {
	l := NewLocal(chess.New(), a1, a2, chess.NewState(), seed)
	l.Turn = func(s chess.State) game.Player { return s.Turn() }
	l.Equal = func(a, b chess.Move) bool { return a.String() == b.String() }
	return l
}

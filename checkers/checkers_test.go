package checkers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tabletop/game"
)

func countPieces(s State, p game.Player) int {
	want := p == game.Player1
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			piece := s.Board[row][col]
			if piece != 0 && (piece > 0) == want {
				n++
			}
		}
	}
	return n
}

func TestNewStateSetup(t *testing.T) {
	s := NewState()

	require.Equal(t, game.Player1, s.CurrentPlayer)
	require.Equal(t, 12, countPieces(s, game.Player1))
	require.Equal(t, 12, countPieces(s, game.Player2))
	// Men only on dark squares
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if s.Board[row][col] != 0 {
				require.Equal(t, 1, (row+col)%2)
			}
		}
	}
}

func TestOpeningMoves(t *testing.T) {
	s := NewState()
	moves := New().GenerateMoves(s, game.Player1)

	// Four front-row men, seven forward steps (edge men have only one).
	require.Len(t, moves, 7)
	for _, m := range moves {
		require.Equal(t, 2, m.From.Row)
		require.Equal(t, 3, m.To.Row)
		require.Empty(t, m.Captures)
	}
}

func TestOffTurnGeneratesNothing(t *testing.T) {
	s := NewState()
	require.Nil(t, New().GenerateMoves(s, game.Player2))
}

func TestForcedCapture(t *testing.T) {
	var s State
	s.CurrentPlayer = game.Player1
	s.Board[2][1] = 1
	s.Board[3][2] = -1
	s.Board[5][6] = 1 // has a quiet step available

	moves := New().GenerateMoves(s, game.Player1)

	require.Len(t, moves, 1, "jumps suppress quiet steps")
	require.Equal(t, Move{
		From:     Square{2, 1},
		To:       Square{4, 3},
		Captures: []Square{{3, 2}},
	}, moves[0])
}

func TestMultiJumpIsMaximal(t *testing.T) {
	var s State
	s.CurrentPlayer = game.Player1
	s.Board[0][1] = 1
	s.Board[1][2] = -1
	s.Board[3][4] = -1

	moves := New().GenerateMoves(s, game.Player1)

	require.Len(t, moves, 1)
	m := moves[0]
	require.Equal(t, Square{0, 1}, m.From)
	require.Equal(t, Square{4, 5}, m.To)
	require.Equal(t, []Square{{1, 2}, {3, 4}}, m.Captures)

	next := New().ApplyMove(s, m)
	require.Equal(t, 0, countPieces(next, game.Player2))
	require.EqualValues(t, 1, next.Board[4][5])
}

func TestCrowningEndsJump(t *testing.T) {
	// Landing on the crown row stops the sequence even though a second
	// jump would otherwise continue it.
	var s State
	s.CurrentPlayer = game.Player1
	s.Board[5][2] = 1
	s.Board[6][3] = -1
	s.Board[6][5] = -1

	moves := New().GenerateMoves(s, game.Player1)

	require.Len(t, moves, 1)
	require.Equal(t, Square{7, 4}, moves[0].To)
	require.Equal(t, []Square{{6, 3}}, moves[0].Captures)

	next := New().ApplyMove(s, moves[0])
	require.EqualValues(t, 2, next.Board[7][4], "man is crowned on arrival")
	require.EqualValues(t, -1, next.Board[6][5], "the second victim survives")
}

func TestKingMovesBackward(t *testing.T) {
	var s State
	s.CurrentPlayer = game.Player2
	s.Board[4][3] = -2
	s.Board[0][1] = 1 // keep Player1 alive

	moves := New().GenerateMoves(s, game.Player2)
	require.Len(t, moves, 4)
}

func TestApplyMoveImmutable(t *testing.T) {
	s := NewState()
	moves := New().GenerateMoves(s, game.Player1)
	next := New().ApplyMove(s, moves[0])

	require.Equal(t, NewState(), s)
	require.Equal(t, game.Player2, next.CurrentPlayer)
}

func TestResultNoMovesLoses(t *testing.T) {
	var s State
	s.CurrentPlayer = game.Player2
	s.Board[3][4] = 1 // Player2 has nothing on the board

	res := New().Result(s)
	require.True(t, res.Finished)
	require.Equal(t, game.Player1, res.Winner)
	require.Equal(t, "No moves", res.Reason)
}

func TestResultUnfinished(t *testing.T) {
	require.False(t, New().Result(NewState()).Finished)
}

func TestEvaluateMaterial(t *testing.T) {
	var even State
	even.Board[2][1] = 1
	even.Board[5][6] = -1
	// Mirrored men score identically for both sides.
	require.InDelta(t, 0, New().Evaluate(even, game.Player1), 1e-9)

	var up State
	up.Board[2][1] = 1
	up.Board[2][3] = 1
	up.Board[5][6] = -1
	require.Positive(t, New().Evaluate(up, game.Player1))
	require.Negative(t, New().Evaluate(up, game.Player2))

	var king State
	king.Board[4][3] = 2
	king.Board[4][5] = -1
	require.Positive(t, New().Evaluate(king, game.Player1))
}

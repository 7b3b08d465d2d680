package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"tabletop/agent"
	"tabletop/backgammon"
	"tabletop/dominoes"
	"tabletop/game"
	"tabletop/searcher"
)

// cheapConfig keeps self-play games fast enough for the test suite.
func cheapConfig(seed uint64) searcher.Config {
	return searcher.Config{
		Difficulty: searcher.Easy,
		MaxDepth:   2,
		MaxMillis:  200,
		Randomness: 30,
		Rand:       rand.New(rand.NewSource(seed)),
	}
}

func TestBackgammonSelfPlay(t *testing.T) {
	a1 := agent.New[backgammon.State, backgammon.Move](backgammon.New(), cheapConfig(1))
	a2 := agent.New[backgammon.State, backgammon.Move](backgammon.New(), cheapConfig(2))
	local := NewBackgammonLocal(a1, a2, 42)

	result, gm, records, err := local.Run()

	require.NoError(t, err)
	require.True(t, result.Finished)
	require.NotEqual(t, game.Nobody, result.Winner, "backgammon has no draws")
	require.NotEmpty(t, result.Reason)

	require.Equal(t, int(result.Winner), gm.Winner)
	require.Equal(t, gm.TotalMoves, len(records))
	require.Positive(t, gm.TotalMoves)

	// All fifteen checkers of the winner are off the board.
	winnerOff := local.State.BorneOff[result.Winner.Seat()]
	require.Equal(t, backgammon.CheckersPerSide, winnerOff)

	for i, rec := range records {
		require.Equal(t, local.ID.String(), rec.Game)
		require.Equal(t, i+1, rec.Step)
		require.Positive(t, rec.Nodes)
	}
}

func TestBackgammonSelfPlayDeterministicWithSeed(t *testing.T) {
	run := func() (game.Result, int) {
		a1 := agent.New[backgammon.State, backgammon.Move](backgammon.New(), cheapConfig(5))
		a2 := agent.New[backgammon.State, backgammon.Move](backgammon.New(), cheapConfig(6))
		result, gm, _, err := NewBackgammonLocal(a1, a2, 99).Run()
		require.NoError(t, err)
		return result, gm.TotalMoves
	}

	firstResult, firstMoves := run()
	secondResult, secondMoves := run()
	require.Equal(t, firstResult, secondResult)
	require.Equal(t, firstMoves, secondMoves)
}

func TestDominoesSelfPlay(t *testing.T) {
	a1 := dominoes.NewAgent(searcher.Medium)
	a2 := dominoes.NewAgent(searcher.Medium)
	local := NewDominoesLocal(a1, a2, 7)

	result, gm, _, err := local.Run()

	require.NoError(t, err)
	require.True(t, result.Finished)
	require.Contains(t, []string{"Domino", "Blocked"}, result.Reason)
	require.Positive(t, gm.TotalMoves)
}

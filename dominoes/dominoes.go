// Package dominoes implements the two-player block game with a double-six
// set: seven tiles each, no drawing, pass when stuck.
package dominoes

import (
	"golang.org/x/exp/rand"

	"tabletop/agent"
	"tabletop/game"
	"tabletop/searcher"
)

const (
	MaxPips      = 6
	HandSize     = 7
	LeftEnd      = 0
	RightEnd     = 1
	noOpenEnd    = -1
	blockedAfter = 2 // consecutive passes that block the game
)

type Tile struct {
	Left, Right int
}

func (t Tile) pips() int {
	return t.Left + t.Right
}

func (t Tile) matches(end int) bool {
	return t.Left == end || t.Right == end
}

// State is a full snapshot of the table. Hands hold undealt orientation
// (Left <= Right); Line holds tiles as placed.
type State struct {
	Hands         [2][]Tile
	Line          []Tile
	Ends          [2]int // open pip values; noOpenEnd before the first tile
	CurrentPlayer game.Player
	Passes        int // consecutive passes, for block detection
}

// Move places one tile on the chosen open end.
type Move struct {
	Tile Tile
	End  int // LeftEnd or RightEnd
}

// NewState shuffles the 28-tile set with rng and deals seven tiles to each
// player; the rest stay out of play for the whole game.
func NewState(rng *rand.Rand) State {
	tiles := make([]Tile, 0, 28)
	for left := 0; left <= MaxPips; left++ {
		for right := left; right <= MaxPips; right++ {
			tiles = append(tiles, Tile{left, right})
		}
	}
	rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})

	var s State
	s.Hands[0] = append([]Tile{}, tiles[:HandSize]...)
	s.Hands[1] = append([]Tile{}, tiles[HandSize:2*HandSize]...)
	s.Ends = [2]int{noOpenEnd, noOpenEnd}
	s.CurrentPlayer = game.Player1
	return s
}

func (s State) clone() State {
	ns := s
	ns.Hands[0] = append([]Tile{}, s.Hands[0]...)
	ns.Hands[1] = append([]Tile{}, s.Hands[1]...)
	ns.Line = append([]Tile{}, s.Line...)
	return ns
}

// Pass advances the turn when the current player has no placement.
func (s State) Pass() State {
	ns := s.clone()
	ns.CurrentPlayer = s.CurrentPlayer.Opponent()
	ns.Passes++
	return ns
}

func handPips(hand []Tile) int {
	total := 0
	for _, t := range hand {
		total += t.pips()
	}
	return total
}

type Engine struct{}

func New() Engine {
	return Engine{}
}

// GenerateMoves lists every placement for player's hand on either open end.
// Dominoes alternates strictly, so the off-turn player has no moves.
func (Engine) GenerateMoves(s State, player game.Player) []Move {
	if player != s.CurrentPlayer {
		return nil
	}
	hand := s.Hands[player.Seat()]

	if len(s.Line) == 0 {
		moves := make([]Move, 0, len(hand))
		for _, t := range hand {
			moves = append(moves, Move{Tile: t, End: RightEnd})
		}
		return moves
	}

	var moves []Move
	for _, t := range hand {
		if t.matches(s.Ends[LeftEnd]) {
			moves = append(moves, Move{Tile: t, End: LeftEnd})
		}
		if t.matches(s.Ends[RightEnd]) && (s.Ends[LeftEnd] != s.Ends[RightEnd] || t.Left != t.Right) {
			moves = append(moves, Move{Tile: t, End: RightEnd})
		}
	}
	return moves
}

func (Engine) ApplyMove(s State, m Move) State {
	ns := s.clone()
	seat := s.CurrentPlayer.Seat()

	hand := ns.Hands[seat]
	for i, t := range hand {
		if t == m.Tile {
			ns.Hands[seat] = append(hand[:i], hand[i+1:]...)
			break
		}
	}

	if len(ns.Line) == 0 {
		ns.Line = append(ns.Line, m.Tile)
		ns.Ends = [2]int{m.Tile.Left, m.Tile.Right}
	} else if m.End == LeftEnd {
		end := ns.Ends[LeftEnd]
		placed := m.Tile
		if placed.Left == end {
			placed = Tile{placed.Right, placed.Left}
		}
		ns.Line = append([]Tile{placed}, ns.Line...)
		ns.Ends[LeftEnd] = placed.Left
	} else {
		end := ns.Ends[RightEnd]
		placed := m.Tile
		if placed.Right == end {
			placed = Tile{placed.Right, placed.Left}
		}
		ns.Line = append(ns.Line, placed)
		ns.Ends[RightEnd] = placed.Right
	}

	ns.Passes = 0
	ns.CurrentPlayer = s.CurrentPlayer.Opponent()
	return ns
}

// Result: going out wins immediately; a blocked game goes to the lighter
// hand, or a draw on equal pips.
func (Engine) Result(s State) game.Result {
	for _, p := range []game.Player{game.Player1, game.Player2} {
		if len(s.Hands[p.Seat()]) == 0 {
			return game.Result{Finished: true, Winner: p, Reason: "Domino"}
		}
	}
	if s.Passes >= blockedAfter {
		pips1 := handPips(s.Hands[0])
		pips2 := handPips(s.Hands[1])
		switch {
		case pips1 < pips2:
			return game.Result{Finished: true, Winner: game.Player1, Reason: "Blocked"}
		case pips2 < pips1:
			return game.Result{Finished: true, Winner: game.Player2, Reason: "Blocked"}
		default:
			return game.Result{Finished: true, Reason: "Blocked"}
		}
	}
	return game.Result{}
}

const (
	pipWeight      = 1.0
	handSizeWeight = 3.0
	coverageWeight = 1.0
)

// Evaluate favors a light, small hand that still covers the open ends.
func (e Engine) Evaluate(s State, player game.Player) float64 {
	opponent := player.Opponent()
	score := pipWeight * float64(handPips(s.Hands[opponent.Seat()])-handPips(s.Hands[player.Seat()]))
	score += handSizeWeight * float64(len(s.Hands[opponent.Seat()])-len(s.Hands[player.Seat()]))

	if len(s.Line) > 0 {
		for _, t := range s.Hands[player.Seat()] {
			if t.matches(s.Ends[LeftEnd]) || t.matches(s.Ends[RightEnd]) {
				score += coverageWeight
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
		cfg.Randomness = 8
	case searcher.Medium:
		cfg.MaxDepth = 3
		cfg.Randomness = 3
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

package backgammon

import (
	"tabletop/agent"
	"tabletop/searcher"
)

// All tiers share one time budget; they differ in depth and randomness.
const aiMaxMillis = 3000

// AIConfig maps a difficulty tier to its search configuration. Tiers are
// monotonic: a higher tier never searches shallower or plays more randomly
// than a lower one.
func AIConfig(d searcher.Difficulty) searcher.Config {
	cfg := searcher.Config{Difficulty: d, MaxMillis: aiMaxMillis}
	switch d {
	case searcher.Easy:
		cfg.MaxDepth = 2
		cfg.Randomness = 60
	case searcher.Medium:
		cfg.MaxDepth = 3
		cfg.Randomness = 15
	default: // Hard
		cfg.Difficulty = searcher.Hard
		cfg.MaxDepth = 4
		cfg.Randomness = 0
	}
	return cfg
}

// NewAgent returns a ready-to-play backgammon agent for the tier.
func NewAgent(d searcher.Difficulty) *agent.Agent[State, Move] {
	return agent.New[State, Move](New(), AIConfig(d))
}

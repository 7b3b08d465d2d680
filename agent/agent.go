package agent

import (
	"tabletop/game"
	"tabletop/metrics"
	"tabletop/searcher"
)

// Agent binds a rule engine to a search configuration. It holds no state of
// its own beyond the config, so one agent can serve any number of games.
type Agent[S, M any] struct {
	engine game.Engine[S, M]
	config searcher.Config
}

func New[S, M any](eng game.Engine[S, M], cfg searcher.Config) *Agent[S, M] {
	if cfg.Collector == nil {
		cfg.Collector = metrics.NewCollector()
	}
	return &Agent[S, M]{engine: eng, config: cfg}
}

// Config returns the search configuration the agent was built with.
func (a *Agent[S, M]) Config() searcher.Config {
	return a.config
}

// ChooseMove forwards to the searcher. ok is false when the player has no
// legal move and must pass.
func (a *Agent[S, M]) ChooseMove(state S, player game.Player) (M, bool) {
	return searcher.ChooseBestMove(a.engine, state, player, a.config)
}

// FindMove is ChooseMove plus the metrics of the search that produced it.
func (a *Agent[S, M]) FindMove(state S, player game.Player) (M, bool, metrics.SearchMetric) {
	move, ok := searcher.ChooseBestMove(a.engine, state, player, a.config)
	return move, ok, a.config.Collector.Complete()
}

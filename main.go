package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tabletop/backgammon"
	"tabletop/config"
	"tabletop/engine"
	"tabletop/metrics"
	"tabletop/searcher"
)

func main() {
	conf := initConfig()
	initLogger(conf)

	if err := runMatchup(conf); err != nil {
		log.Fatal().Err(err).Msg("matchup failed")
	}
}

func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}
	return config.MustLoad(filepath.Join(baseDir, "config.yml"))
}

func initLogger(conf *config.Config) {
	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

// runMatchup plays backgammon self-play games between the two configured
// difficulty tiers and writes game and move records as CSV.
func runMatchup(conf *config.Config) error {
	d1 := parseDifficulty(conf.Agent1)
	d2 := parseDifficulty(conf.Agent2)
	log.Info().Msgf("running %d backgammon games: %s vs %s", conf.Games, d1, d2)

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	wins := map[int]int{}

	for i := 0; i < conf.Games; i++ {
		local := engine.NewBackgammonLocal(
			backgammon.NewAgent(d1),
			backgammon.NewAgent(d2),
			conf.Seed+uint64(i),
		)

		result, gameMetric, moves, err := local.Run()
		if err != nil {
			return fmt.Errorf("game %d: %w", i+1, err)
		}

		wins[int(result.Winner)]++
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         local.ID.String(),
			Agent1:     string(d1),
			Agent2:     string(d2),
			GameMetric: gameMetric,
		})
		moveRecords = append(moveRecords, moves...)
		log.Info().Msgf("game %d/%d: winner %s (%s)", i+1, conf.Games, result.Winner, result.Reason)
	}

	writer, err := metrics.NewWriter(conf.OutputDir)
	if err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}

	log.Info().Msgf("done: %s %d wins, %s %d wins, records in %s",
		d1, wins[1], d2, wins[2], writer.Dir())
	return nil
}

func parseDifficulty(s string) searcher.Difficulty {
	switch s {
	case "easy":
		return searcher.Easy
	case "medium":
		return searcher.Medium
	default:
		return searcher.Hard
	}
}

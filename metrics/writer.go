package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// GameRecord is one row of the game results file.
type GameRecord struct {
	ID     string // game UUID
	Agent1 string // difficulty tag
	Agent2 string
	GameMetric
}

// MoveRecord is one row of the per-move search file.
type MoveRecord struct {
	Game string // GameRecord.ID
	MoveMetric
}

// Writer writes experiment records as CSV files under a timestamped
// subdirectory of baseDir.
type Writer struct {
	baseDir string
}

func NewWriter(baseDir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	dir := filepath.Join(baseDir, timestamp)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: dir}, nil
}

// Dir returns the directory records are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	f, err := os.Create(filepath.Join(w.baseDir, "game_records.csv"))
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "agent1", "agent2", "winner", "reason", "start_time", "end_time", "duration", "total_moves"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.ID,
			record.Agent1,
			record.Agent2,
			strconv.Itoa(record.Winner),
			record.Reason,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	f, err := os.Create(filepath.Join(w.baseDir, "move_records.csv"))
	if err != nil {
		return fmt.Errorf("failed to create move records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"game", "step", "player", "difficulty", "max_depth", "nodes", "prunes", "deadline_hits", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write move records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Game,
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			record.Difficulty,
			strconv.Itoa(record.MaxDepth),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Prunes),
			strconv.Itoa(record.DeadlineHits),
			record.SearchMetric.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write move record row: %w", err)
		}
	}

	return nil
}

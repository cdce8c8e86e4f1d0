package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID playing black
	Agent2 int // AgentConfig.ID playing white
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by experiment and current
// timestamp. It fails rather than reuse the folder of another run.
func NewWriter(dir, name string) (*Writer, error) {
	parent := filepath.Join(dir, name)
	err := os.MkdirAll(parent, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	timestamp := time.Now().UTC().Format("20060102T150405.000000000Z")
	baseDir := filepath.Join(parent, timestamp)
	err = os.Mkdir(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create run directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "seed", "skip", "skip_on_next", "safe_safe", "safe_unsafe",
		"unsafe_safe", "unsafe_unsafe", "safe", "unsafe", "king_factor"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		weights := config.Weights
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.FormatUint(config.Seed, 10),
			formatFloat(weights.Skip),
			formatFloat(weights.SkipOnNext),
			formatFloat(weights.SafeSafe),
			formatFloat(weights.SafeUnsafe),
			formatFloat(weights.UnsafeSafe),
			formatFloat(weights.UnsafeUnsafe),
			formatFloat(weights.Safe),
			formatFloat(weights.Unsafe),
			formatFloat(weights.KingFactor),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "session", "agent1", "agent2", "starting_player", "winner",
		"start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.SessionID,
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer,
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "start", "end", "duration", "candidates", "ties", "best_weight"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			strconv.Itoa(record.Start),
			strconv.Itoa(record.End),
			record.Duration.String(),
			strconv.Itoa(record.Candidates),
			strconv.Itoa(record.Ties),
			formatFloat(record.BestWeight),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	err = writer.WriteAll(rows) // Flushes
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type AgentConfig struct {
	ID     int    `yaml:"id" json:"id"`
	Config string `yaml:"config" json:"config"` // e.g. "expectimax:depth=3"
}

type Setup struct {
	Name       string        `yaml:"name" json:"name"`
	NumGames   int           `yaml:"games" json:"numGames"` // per matchup
	Goroutines int           `yaml:"goroutines" json:"goroutines"`
	Seed       uint64        `yaml:"seed" json:"seed"` // 0 throws sticks unseeded
	MaxTurns   int           `yaml:"max_turns" json:"maxTurns"`
	Agents     []AgentConfig `yaml:"agents" json:"agents"`
	Matchups   [][]int       `yaml:"matchups" json:"matchups"` // pairs of agent IDs
	StartTime  time.Time     `yaml:"-" json:"startTime"`
	EndTime    time.Time     `yaml:"-" json:"endTime"`
	Duration   time.Duration `yaml:"-" json:"duration"`
}

type GameRecord struct {
	ID      uuid.UUID
	Matchup int
	AgentA  int // AgentConfig.ID playing SideA
	AgentB  int // AgentConfig.ID playing SideB
	GameMetric
}

type MoveRecord struct {
	Game uuid.UUID // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped directory for one experiment run.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup Setup) error {
	path := filepath.Join(w.baseDir, "setup.json")
	data, err := json.MarshalIndent(setup, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode setup: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write setup file: %w", err)
	}
	return nil
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{strconv.Itoa(config.ID), config.Config})
	}
	return w.writeCSV("agent_configs.csv", []string{"id", "config"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "matchup", "agent_a", "agent_b", "starting_player", "winner", "reason", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID.String(),
			strconv.Itoa(record.Matchup),
			strconv.Itoa(record.AgentA),
			strconv.Itoa(record.AgentB),
			record.StartingPlayer,
			record.Winner,
			record.Reason,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "roll", "move", "depth", "completed_depth", "duration", "nodes", "evaluations", "cache_hits", "cache_misses", "cache_collisions", "evictions", "chance_cutoffs", "decision_cutoffs"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game.String(),
			strconv.Itoa(record.Step),
			record.Player,
			strconv.Itoa(record.Roll),
			record.Move,
			strconv.Itoa(record.Depth),
			strconv.Itoa(record.CompletedDepth),
			record.SearchMetric.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Evaluations),
			strconv.Itoa(record.CacheHits),
			strconv.Itoa(record.CacheMisses),
			strconv.Itoa(record.CacheCollisions),
			strconv.Itoa(record.Evictions),
			strconv.Itoa(record.ChanceCutoffs),
			strconv.Itoa(record.DecisionCutoffs),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

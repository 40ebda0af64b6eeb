// Package storage persists headless run records under a data directory.
// Each run gets its own directory holding metadata.json, census.csv and
// grid.txt (the final board).
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/golife/internal/config"
	"github.com/san-kum/golife/internal/runner"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	Width           int       `json:"width"`
	Height          int       `json:"height"`
	Pattern         string    `json:"pattern,omitempty"`
	Seed            int64     `json:"seed"`
	Generations     int       `json:"generations"`
	Period          int       `json:"period"`
	FinalPopulation int       `json:"final_population"`
}

// Save records a finished run and returns its id.
func (s *Store) Save(cfg *config.Config, result *runner.Result, finalGrid []uint8) (string, error) {
	runID := fmt.Sprintf("life_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Timestamp:   time.Now(),
		Width:       cfg.Width,
		Height:      cfg.Height,
		Pattern:     cfg.Pattern,
		Seed:        cfg.Seed,
		Generations: result.Generations,
		Period:      result.Period,
	}
	if n := len(result.Populations); n > 0 {
		meta.FinalPopulation = result.Populations[n-1]
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "census.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"generation", "population"}); err != nil {
		return "", err
	}
	for i, p := range result.Populations {
		if err := w.Write([]string{strconv.Itoa(i), strconv.Itoa(p)}); err != nil {
			return "", err
		}
	}

	if err := writeGrid(filepath.Join(runDir, "grid.txt"), cfg.Width, cfg.Height, finalGrid); err != nil {
		return "", err
	}

	return runID, nil
}

// writeGrid stores the board as rows of '.' and '#'.
func writeGrid(path string, width, height int, cells []uint8) error {
	var b strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if cells[y*width+x] == 1 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(b.String()), 0644)
}

// List returns metadata for every stored run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}
		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadCensus returns the per-generation population counts for a run.
func (s *Store) LoadCensus(runID string) ([]int, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "census.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []int{}, nil
	}

	populations := make([]int, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 2 {
			continue
		}
		p, err := strconv.Atoi(record[1])
		if err != nil {
			continue
		}
		populations = append(populations, p)
	}
	return populations, nil
}

// LoadGrid returns the final board text of a run.
func (s *Store) LoadGrid(runID string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "grid.txt"))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ExportData is the JSON dump shape for a stored run.
type ExportData struct {
	RunMetadata
	Populations []int `json:"populations"`
}

// ExportJSON writes a full run dump to w.
func ExportJSON(w io.Writer, meta *RunMetadata, populations []int) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{RunMetadata: *meta, Populations: populations})
}

// ExportCSV writes the census rows to w.
func ExportCSV(w io.Writer, populations []int) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()
	if err := cw.Write([]string{"generation", "population"}); err != nil {
		return err
	}
	for i, p := range populations {
		if err := cw.Write([]string{strconv.Itoa(i), strconv.Itoa(p)}); err != nil {
			return err
		}
	}
	return nil
}

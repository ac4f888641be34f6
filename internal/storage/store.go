// Package storage persists simulation runs as a metadata.json plus a
// series.csv per run directory.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/kmsahu/genesim/internal/config"
	"github.com/kmsahu/genesim/internal/grn"
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
	ID         string             `json:"id"`
	Motif      string             `json:"motif"`
	Rule       string             `json:"rule"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       int64              `json:"seed"`
	Dt         float64            `json:"dt"`
	Steps      int                `json:"steps"`
	NoiseSigma float64            `json:"noise_sigma"`
	Genes      []string           `json:"genes"`
	Params     config.RuleParams  `json:"params"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Save writes one run to disk. geneOrder fixes the CSV column order; the
// input trace is stored in column "x". The input has Steps samples while
// gene series have Steps+1; the final input row is left empty.
func (s *Store) Save(cfg *config.Config, geneOrder []string, input grn.Series, result *grn.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", cfg.Motif, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Motif:      cfg.Motif,
		Rule:       cfg.Rule,
		Timestamp:  time.Now(),
		Seed:       cfg.Seed,
		Dt:         cfg.Dt,
		Steps:      cfg.Steps,
		NoiseSigma: cfg.NoiseSigma,
		Genes:      geneOrder,
		Params:     cfg.Params,
		Metrics:    result.Metrics,
	}

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvPath := filepath.Join(runDir, "series.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"time", "x"}
	header = append(header, geneOrder...)
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range result.Times {
		row := []string{strconv.FormatFloat(result.Times[i], 'f', 6, 64)}

		if i < len(input) {
			row = append(row, strconv.FormatFloat(input[i], 'f', 6, 64))
		} else {
			row = append(row, "")
		}

		for _, name := range geneOrder {
			series := result.Series[name]
			if i < len(series) {
				row = append(row, strconv.FormatFloat(series[i], 'f', 6, 64))
			} else {
				row = append(row, "")
			}
		}

		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadSeries reads back a run's traces. The returned names match the CSV
// header after the time column; columns[i] is the trace for names[i].
// Empty cells (the trailing input row) are skipped per column.
func (s *Store) LoadSeries(runID string) (names []string, times []float64, columns []grn.Series, err error) {
	csvPath := filepath.Join(s.baseDir, runID, "series.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, nil, err
	}

	if len(records) < 2 {
		return nil, nil, nil, fmt.Errorf("run %s has no data", runID)
	}

	header := records[0]
	if len(header) < 2 {
		return nil, nil, nil, fmt.Errorf("run %s has a malformed header", runID)
	}
	names = header[1:]
	columns = make([]grn.Series, len(names))

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) == 0 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)

		for j := 1; j < len(record) && j-1 < len(columns); j++ {
			if record[j] == "" {
				continue
			}
			val, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				continue
			}
			columns[j-1] = append(columns[j-1], val)
		}
	}

	return names, times, columns, nil
}

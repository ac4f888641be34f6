package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/kmsahu/genesim/internal/grn"
)

type ExportData struct {
	ID      string               `json:"id"`
	Motif   string               `json:"motif"`
	Rule    string               `json:"rule"`
	Dt      float64              `json:"dt"`
	Steps   int                  `json:"steps"`
	Seed    int64                `json:"seed"`
	Times   []float64            `json:"times"`
	Series  map[string][]float64 `json:"series"`
	Metrics map[string]float64   `json:"metrics"`
}

func exportJSON(w io.Writer, meta *RunMetadata, times []float64, names []string, columns []grn.Series) error {
	data := ExportData{
		ID:      meta.ID,
		Motif:   meta.Motif,
		Rule:    meta.Rule,
		Dt:      meta.Dt,
		Steps:   meta.Steps,
		Seed:    meta.Seed,
		Times:   times,
		Series:  make(map[string][]float64, len(names)),
		Metrics: meta.Metrics,
	}
	for i, name := range names {
		if i < len(columns) {
			data.Series[name] = columns[i]
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSONFile(path string, meta *RunMetadata, times []float64, names []string, columns []grn.Series) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return exportJSON(file, meta, times, names, columns)
}

func ExportJSONStdout(meta *RunMetadata, times []float64, names []string, columns []grn.Series) error {
	return exportJSON(os.Stdout, meta, times, names, columns)
}

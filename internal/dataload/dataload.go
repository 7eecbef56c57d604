// Package dataload reads chart datasets from files. Three sources are
// supported: JSON documents, CSV tables and SQLite databases.
package dataload

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/janekbaraniewski/barview/internal/chart"
)

// Dataset is everything a bar chart needs: the ordered data points and an
// optional limit drawn as a threshold line.
type Dataset struct {
	Points []chart.DataPoint `json:"points"`
	Limit  *chart.DataPoint  `json:"limit,omitempty"`
}

// Chart builds the bar chart for the dataset.
func (d Dataset) Chart() chart.BarChart {
	if d.Limit != nil {
		return chart.NewWithLimit(d.Points, *d.Limit)
	}
	return chart.New(d.Points)
}

// Load picks a loader from the file extension: .json, .csv, or .db/.sqlite.
func Load(path string) (Dataset, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return LoadJSON(path)
	case ".csv":
		return LoadCSV(path)
	case ".db", ".sqlite", ".sqlite3":
		return LoadSQLite(path, DefaultQuery)
	default:
		return Dataset{}, fmt.Errorf("unsupported data file %s (want .json, .csv or .sqlite)", path)
	}
}

// LoadJSON reads either a full dataset document ({"points": [...], "limit":
// {...}}) or a bare array of points.
func LoadJSON(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("reading dataset: %w", err)
	}
	return ParseJSON(data)
}

// ParseJSON decodes dataset JSON. See LoadJSON.
func ParseJSON(data []byte) (Dataset, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var points []chart.DataPoint
		if err := json.Unmarshal(data, &points); err != nil {
			return Dataset{}, fmt.Errorf("parsing dataset array: %w", err)
		}
		return Dataset{Points: points}, nil
	}

	var ds Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return Dataset{}, fmt.Errorf("parsing dataset: %w", err)
	}
	return ds, nil
}

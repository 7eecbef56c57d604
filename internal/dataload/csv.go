package dataload

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janekbaraniewski/barview/internal/chart"
)

// LoadCSV reads records of the form
//
//	label,value[,legend_label,legend_color]
//
// A first row whose value column does not parse as a number is treated as a
// header and skipped. CSV files carry no limit.
func LoadCSV(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()
	return ParseCSV(f)
}

// ParseCSV decodes CSV records from r. See LoadCSV.
func ParseCSV(r io.Reader) (Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // legend columns are optional per row

	var ds Dataset
	line := 0
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Dataset{}, fmt.Errorf("reading csv: %w", err)
		}
		line++
		if len(rec) < 2 {
			return Dataset{}, fmt.Errorf("csv line %d: want at least label and value, got %d fields", line, len(rec))
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			if line == 1 {
				continue // header row
			}
			return Dataset{}, fmt.Errorf("csv line %d: bad value %q: %w", line, rec[1], err)
		}

		dp := chart.DataPoint{Label: strings.TrimSpace(rec[0]), Value: value}
		if len(rec) >= 4 && strings.TrimSpace(rec[2]) != "" {
			dp.Legend = &chart.Legend{
				Label: strings.TrimSpace(rec[2]),
				Color: lipgloss.Color(strings.TrimSpace(rec[3])),
			}
		}
		ds.Points = append(ds.Points, dp)
	}
	return ds, nil
}

package dataload

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/janekbaraniewski/barview/internal/chart"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultQuery is used when the caller does not supply one. It expects a
// `points` table with at least label and value columns.
const DefaultQuery = `SELECT label, value FROM points ORDER BY rowid`

// LoadSQLite runs query against the database at path and maps the rows onto
// data points. Queries may select two columns (label, value) or four
// (label, value, legend_label, legend_color).
func LoadSQLite(path, query string) (Dataset, error) {
	db, err := sql.Open("sqlite3", path+"?mode=ro")
	if err != nil {
		return Dataset{}, fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		return Dataset{}, fmt.Errorf("set busy_timeout: %w", err)
	}

	return queryDataset(db, query)
}

func queryDataset(db *sql.DB, query string) (Dataset, error) {
	rows, err := db.Query(query)
	if err != nil {
		return Dataset{}, fmt.Errorf("querying points: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return Dataset{}, fmt.Errorf("reading columns: %w", err)
	}
	withLegend := len(cols) >= 4
	if len(cols) < 2 {
		return Dataset{}, fmt.Errorf("query must select at least label and value, got %d columns", len(cols))
	}

	var ds Dataset
	for rows.Next() {
		var (
			label       string
			value       float64
			legendLabel sql.NullString
			legendColor sql.NullString
		)
		if withLegend {
			err = rows.Scan(&label, &value, &legendLabel, &legendColor)
		} else {
			err = rows.Scan(&label, &value)
		}
		if err != nil {
			return Dataset{}, fmt.Errorf("scanning point: %w", err)
		}

		dp := chart.DataPoint{Label: label, Value: value}
		if legendLabel.Valid && legendLabel.String != "" {
			dp.Legend = &chart.Legend{
				Label: legendLabel.String,
				Color: lipgloss.Color(legendColor.String),
			}
		}
		ds.Points = append(ds.Points, dp)
	}
	if err := rows.Err(); err != nil {
		return Dataset{}, fmt.Errorf("iterating points: %w", err)
	}
	return ds, nil
}

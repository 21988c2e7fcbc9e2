package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"smartreview/internal/core"
)

// Dataset is an in-memory tabular dataset. Column order is preserved and rows
// are never mutated by analysis; passthrough columns survive export unchanged.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// ColumnInfo describes which columns in a dataset look analyzable.
type ColumnInfo struct {
	TotalColumns int
	Columns      []string
	HasText      bool
	TextColumn   string
	HasRating    bool
	RatingColumn string
}

// Load reads a CSV file into a Dataset. Short rows are padded so every row
// has one cell per column.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Read reads CSV content from r into a Dataset.
func Read(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset is empty")
	}

	ds := &Dataset{Columns: records[0]}
	for _, rec := range records[1:] {
		row := make([]string, len(ds.Columns))
		copy(row, rec)
		ds.Rows = append(ds.Rows, row)
	}
	return ds, nil
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (d *Dataset) ColumnIndex(name string) int {
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Cell returns the value at (row, column name). Missing cells come back as
// an empty string, never an error.
func (d *Dataset) Cell(row int, column string) string {
	idx := d.ColumnIndex(column)
	if idx < 0 || row < 0 || row >= len(d.Rows) || idx >= len(d.Rows[row]) {
		return ""
	}
	return d.Rows[row][idx]
}

// Review builds the analyzable view of one row: its text plus the optional
// star rating. An unparseable or out-of-range rating counts as absent.
func (d *Dataset) Review(row int, textColumn, ratingColumn string) core.Review {
	rev := core.Review{Text: d.Cell(row, textColumn)}
	if ratingColumn == "" {
		return rev
	}
	raw := strings.TrimSpace(d.Cell(row, ratingColumn))
	if raw == "" {
		return rev
	}
	rating, err := strconv.Atoi(raw)
	if err != nil || rating < 1 || rating > 5 {
		return rev
	}
	rev.Rating = rating
	rev.HasRating = true
	return rev
}

// AddColumn appends a column with one value per row. Value count must match
// the row count; extra rows get empty cells rather than failing.
func (d *Dataset) AddColumn(name string, values []string) {
	d.Columns = append(d.Columns, name)
	for i := range d.Rows {
		v := ""
		if i < len(values) {
			v = values[i]
		}
		d.Rows[i] = append(d.Rows[i], v)
	}
}

// Clone returns a deep copy, used by exporters so augmentation never touches
// the caller's dataset.
func (d *Dataset) Clone() *Dataset {
	clone := &Dataset{Columns: append([]string(nil), d.Columns...)}
	clone.Rows = make([][]string, len(d.Rows))
	for i, row := range d.Rows {
		clone.Rows[i] = append([]string(nil), row...)
	}
	return clone
}

// WriteCSV writes the dataset as CSV, header first.
func (d *Dataset) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(d.Columns); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for i, row := range d.Rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// SaveCSV writes the dataset to a file.
func (d *Dataset) SaveCSV(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	return d.WriteCSV(f)
}

// DetectColumns scans column names for text and rating candidates. The first
// column whose lower-cased name contains a keyword wins.
func DetectColumns(d *Dataset, textKeywords, ratingKeywords []string) ColumnInfo {
	info := ColumnInfo{
		TotalColumns: len(d.Columns),
		Columns:      append([]string(nil), d.Columns...),
	}

	for _, col := range d.Columns {
		lower := strings.ToLower(col)
		for _, kw := range ratingKeywords {
			if strings.Contains(lower, kw) {
				info.HasRating = true
				info.RatingColumn = col
				break
			}
		}
		if info.HasRating {
			break
		}
	}

	for _, col := range d.Columns {
		lower := strings.ToLower(col)
		for _, kw := range textKeywords {
			if strings.Contains(lower, kw) {
				info.HasText = true
				info.TextColumn = col
				break
			}
		}
		if info.HasText {
			break
		}
	}

	return info
}

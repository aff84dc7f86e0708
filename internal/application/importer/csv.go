package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// Row maps normalized column names to raw string values.
type Row map[string]string

// normalizeHeader lowercases a header and collapses surrounding whitespace,
// so "Incident Type", " incident_type " and "INCIDENT TYPE" all match.
func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.ReplaceAll(h, " ", "_")
}

// readCSVFile reads a delimited file into rows keyed by normalized header.
// The first record is the header. Short records are padded; long records are
// truncated to the header width.
func readCSVFile(path string) ([]Row, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return readCSV(file)
}

func readCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns := make([]string, len(header))
	for i, h := range header {
		columns[i] = normalizeHeader(h)
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = strings.TrimSpace(record[i])
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// field returns the first non-empty value among the given normalized column
// names. Source files are inconsistent about naming (category vs
// incident_type, reporter vs reported_by), so each field accepts aliases.
func (r Row) field(names ...string) string {
	for _, name := range names {
		if v, ok := r[name]; ok && v != "" {
			return v
		}
	}
	return ""
}

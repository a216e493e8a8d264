package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Table is one uploaded price list: ordered headers plus records keyed by
// header. Header order matters downstream (first/last column defaults in
// column resolution), so it travels next to the maps.
type Table struct {
	Headers []string
	Records []map[string]string
}

// ReadAny picks a parser by file extension. headerRow is 1-based.
func ReadAny(r io.Reader, filename string, headerRow int) (Table, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx":
		return readXLSX(r, headerRow)
	case ".xls":
		return readXLS(r, headerRow)
	case ".csv":
		return readCSV(r, headerRow)
	default:
		return Table{}, fmt.Errorf("unsupported file: %s", filename)
	}
}

// pickHeader takes the header row and substitutes "Column N" for blanks.
func pickHeader(rows [][]string, headerRow int) []string {
	idx := headerRow - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(rows) {
		idx = 0
	}
	h := rows[idx]
	out := make([]string, len(h))
	for i, v := range h {
		v = strings.TrimSpace(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// toTable converts AoA into a Table by headers, skipping fully blank rows.
func toTable(rows [][]string, headers []string, headerRow int) Table {
	start := headerRow // first row after the header
	t := Table{Headers: headers}
	for r := start; r < len(rows); r++ {
		rec := rows[r]
		m := map[string]string{}
		for c := 0; c < len(headers); c++ {
			var v string
			if c < len(rec) {
				v = rec[c]
			}
			m[headers[c]] = v
		}
		empty := true
		for _, v := range m {
			if strings.TrimSpace(v) != "" {
				empty = false
				break
			}
		}
		if !empty {
			t.Records = append(t.Records, m)
		}
	}
	return t
}

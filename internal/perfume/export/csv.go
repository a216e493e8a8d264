package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"pricecomp-service/internal/perfume/model"
)

// CSV renders the report as UTF-8 CSV with a BOM so Excel opens the Arabic
// product names correctly instead of guessing a legacy codepage.
func CSV(rep model.Report) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("\uFEFF")

	w := csv.NewWriter(&buf)
	if len(rep.Columns) > 0 {
		if err := w.Write(rep.Columns); err != nil {
			return nil, err
		}
	}
	for _, row := range rep.Rows {
		rec := make([]string, len(row))
		for i, v := range row {
			rec[i] = cellString(v)
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cellString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return fmt.Sprintf("%g", t)
	case int:
		return fmt.Sprintf("%d", t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

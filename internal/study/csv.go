package study

import (
	"encoding/csv"
	"os"
	"strconv"

	"ramp-metrics/internal/model"
)

// WriteTableCSV writes a table as CSV: identifier columns first, then the
// value columns in table order.
func WriteTableCSV(path string, t *model.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"entity"}
	if t.HasYear {
		header = append(header, "year")
	}
	header = append(header, "timeId")
	header = append(header, t.Columns...)
	if err := w.Write(header); err != nil {
		return err
	}

	for i, key := range t.Keys {
		row := []string{key.Entity}
		if t.HasYear {
			row = append(row, strconv.Itoa(key.Year))
		}
		row = append(row, strconv.Itoa(key.TimeID))
		for _, v := range t.Values[i] {
			row = append(row, fmtFloat(v))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"tou-pricegen/internal/model"
)

// Header is the CSV column contract consumed by the downstream scheduler.
var Header = []string{"Timestamp", "Price_sen_per_kWh", "DayOfWeek", "Hour"}

// EncodeSeriesCSV writes the header plus one row per record to w.
func EncodeSeriesCSV(w io.Writer, records []model.PriceRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			fmtTime(r.Timestamp),
			fmtPrice(r.Price),
			strconv.Itoa(r.DayOfWeek),
			strconv.Itoa(r.Hour),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSeriesCSV writes the full price table to path. The file is written
// to a temp file in the destination directory and renamed into place, so a
// failure never leaves a partial table behind.
func WriteSeriesCSV(path string, series *model.Series) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp")
	if err != nil {
		return err
	}
	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := EncodeSeriesCSV(tmp, series.Records); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// ReadSeriesCSV loads a previously written price table. The header row is
// checked against the column contract.
func ReadSeriesCSV(path string) ([]model.PriceRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: empty file", path)
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	records := make([]model.PriceRecord, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", path, i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func checkHeader(row []string) error {
	if len(row) != len(Header) {
		return fmt.Errorf("expected %d columns, got %d", len(Header), len(row))
	}
	for i, col := range Header {
		if row[i] != col {
			return fmt.Errorf("expected column %q, got %q", col, row[i])
		}
	}
	return nil
}

func parseRow(row []string) (model.PriceRecord, error) {
	if len(row) != len(Header) {
		return model.PriceRecord{}, fmt.Errorf("expected %d columns, got %d", len(Header), len(row))
	}
	ts, err := time.Parse(model.TimestampLayout, row[0])
	if err != nil {
		return model.PriceRecord{}, err
	}
	price, err := strconv.ParseFloat(row[1], 64)
	if err != nil {
		return model.PriceRecord{}, err
	}
	dow, err := strconv.Atoi(row[2])
	if err != nil {
		return model.PriceRecord{}, err
	}
	hour, err := strconv.Atoi(row[3])
	if err != nil {
		return model.PriceRecord{}, err
	}
	return model.PriceRecord{Timestamp: ts, Price: price, DayOfWeek: dow, Hour: hour}, nil
}

func fmtTime(t time.Time) string {
	return t.Format(model.TimestampLayout)
}

func fmtPrice(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}

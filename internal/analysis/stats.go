package analysis

import (
	"time"

	"tou-pricegen/internal/model"
)

// SeriesStats summarizes a generated (or reloaded) price table.
type SeriesStats struct {
	Rows        int       `json:"rows"`
	PeakRows    int       `json:"peak_rows"`
	OffPeakRows int       `json:"off_peak_rows"`
	PeakShare   float64   `json:"peak_share"`
	MeanPrice   float64   `json:"mean_price_sen_per_kwh"`
	MinPrice    float64   `json:"min_price_sen_per_kwh"`
	MaxPrice    float64   `json:"max_price_sen_per_kwh"`
	First       time.Time `json:"first"`
	Last        time.Time `json:"last"`

	// RowsByDay counts rows per day-of-week, Monday=0..Sunday=6.
	RowsByDay [7]int `json:"rows_by_day"`
}

// InferTariff recovers the two rate levels from a reloaded table: the
// highest price observed is taken as peak, the lowest as off-peak. The
// window hours are not recoverable from prices alone and keep the stock
// defaults.
func InferTariff(records []model.PriceRecord) model.Tariff {
	t := model.DefaultTariff()
	if len(records) == 0 {
		return t
	}
	lo, hi := records[0].Price, records[0].Price
	for _, r := range records {
		if r.Price < lo {
			lo = r.Price
		}
		if r.Price > hi {
			hi = r.Price
		}
	}
	t.OffPeakSenPerKWh = lo
	t.PeakSenPerKWh = hi
	return t
}

// Compute folds over the records once. The peak/off-peak split is taken
// from the tariff's rate levels, not re-derived from calendar rules, so it
// also works on tables loaded from disk.
func Compute(records []model.PriceRecord, tariff model.Tariff) SeriesStats {
	var s SeriesStats
	s.Rows = len(records)
	if s.Rows == 0 {
		return s
	}

	s.First = records[0].Timestamp
	s.Last = records[len(records)-1].Timestamp
	s.MinPrice = records[0].Price
	s.MaxPrice = records[0].Price

	sum := 0.0
	for _, r := range records {
		sum += r.Price
		if r.Price < s.MinPrice {
			s.MinPrice = r.Price
		}
		if r.Price > s.MaxPrice {
			s.MaxPrice = r.Price
		}
		if r.Price == tariff.PeakSenPerKWh && tariff.PeakSenPerKWh != tariff.OffPeakSenPerKWh {
			s.PeakRows++
		} else {
			s.OffPeakRows++
		}
		if r.DayOfWeek >= 0 && r.DayOfWeek < 7 {
			s.RowsByDay[r.DayOfWeek]++
		}
	}
	s.MeanPrice = sum / float64(s.Rows)
	s.PeakShare = float64(s.PeakRows) / float64(s.Rows)
	return s
}

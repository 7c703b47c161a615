package export

import (
	"fmt"
	"io"

	"tou-pricegen/internal/model"
)

// PrintPreview writes the first n price records as an aligned table.
func PrintPreview(w io.Writer, records []model.PriceRecord, n int) {
	if n > len(records) {
		n = len(records)
	}
	fmt.Fprintf(w, "%-19s  %-18s  %-9s  %-4s\n", "Timestamp", "Price_sen_per_kWh", "DayOfWeek", "Hour")
	for i := 0; i < n; i++ {
		r := records[i]
		fmt.Fprintf(w, "%-19s  %-18s  %-9d  %-4d\n", fmtTime(r.Timestamp), fmtPrice(r.Price), r.DayOfWeek, r.Hour)
	}
}

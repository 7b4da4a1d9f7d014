package dataset

import (
	"strings"
	"time"

	"github.com/Ramiogue/dashboard-app2/internal/models"

	"github.com/shopspring/decimal"
)

// Layouts accepted for Transaction Date cells, most common first.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"02-Jan-2006",
}

// normalize decodes raw records into typed transactions. Unparseable dates
// and amounts become nil; no rows are dropped here — the aggregator is the
// stage that deliberately excludes rows it cannot bucket.
func normalize(t *Table, cols columns) []models.Transaction {
	rows := make([]models.Transaction, 0, len(t.Records))
	for _, record := range t.Records {
		rows = append(rows, models.Transaction{
			Merchant: strings.TrimSpace(cell(record, cols.merchant)),
			Date:     parseDate(cell(record, cols.date)),
			Amount:   parseAmount(cell(record, cols.amount)),
		})
	}
	return rows
}

func cell(record []string, i int) string {
	if i >= len(record) {
		return ""
	}
	return record[i]
}

func parseDate(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}

func parseAmount(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	// Tolerate thousands separators as exported by spreadsheet tools.
	raw = strings.ReplaceAll(raw, ",", "")
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

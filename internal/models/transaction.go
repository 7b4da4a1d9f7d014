package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Column names required in the transactions extract.
const (
	ColumnMerchant = "Merchant Number - Business Name"
	ColumnDate     = "Transaction Date"
	ColumnAmount   = "Settle Amount"
)

// Transaction is one normalized row of the transactions extract. Date and
// Amount are nil when the raw cell failed to parse; normalization never
// drops rows, the aggregator decides what to do with missing values.
type Transaction struct {
	Merchant string           `json:"merchant"`
	Date     *time.Time       `json:"date"`
	Amount   *decimal.Decimal `json:"amount"`
}

// Snapshot is one consistent, immutable load of the transactions dataset.
// Source records which candidate path produced the rows.
type Snapshot struct {
	ID       string        `json:"id"`
	Source   string        `json:"source"`
	LoadedAt time.Time     `json:"loaded_at"`
	Rows     []Transaction `json:"rows"`
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyAggregate is one calendar day of a merchant's settled activity.
// AOV is nil when Orders is zero; it is never fabricated.
type DailyAggregate struct {
	Date    time.Time        `json:"date"`
	Revenue decimal.Decimal  `json:"revenue"`
	Orders  int64            `json:"orders"`
	AOV     *decimal.Decimal `json:"aov"`
}

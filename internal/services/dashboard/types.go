package dashboard

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateRange is the inclusive span of a merchant's aggregated series, used
// by the frontend to bound its date picker.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Summary backs the KPI tiles for one merchant and window. LatestAOV is the
// AOV of the last in-window day and is null when that day had no orders.
type Summary struct {
	MerchantID   string           `json:"merchant_id"`
	Source       string           `json:"source"`
	Start        time.Time        `json:"start"`
	End          time.Time        `json:"end"`
	TotalRevenue decimal.Decimal  `json:"total_revenue"`
	TotalOrders  int64            `json:"total_orders"`
	LatestAOV    *decimal.Decimal `json:"latest_aov"`
	Days         int              `json:"days"`
}

package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/Ramiogue/dashboard-app2/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDataset struct {
	snap *models.Snapshot
	err  error
}

func (s *stubDataset) Snapshot(_ context.Context) (*models.Snapshot, error) {
	return s.snap, s.err
}

func tx(t *testing.T, merchant, date, amount string) models.Transaction {
	t.Helper()
	row := models.Transaction{Merchant: merchant}
	if date != "" {
		parsed, err := time.Parse("2006-01-02", date)
		require.NoError(t, err)
		row.Date = &parsed
	}
	if amount != "" {
		d := decimal.RequireFromString(amount)
		row.Amount = &d
	}
	return row
}

func day(t *testing.T, date string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	return parsed.UTC()
}

func dayPtr(t *testing.T, date string) *time.Time {
	d := day(t, date)
	return &d
}

func scenarioSnapshot(t *testing.T) *models.Snapshot {
	return &models.Snapshot{
		ID:     "snap-1",
		Source: "sample_merchant_transactions.csv",
		Rows: []models.Transaction{
			tx(t, "M001 - Merchant A", "2024-01-01", "100"),
			tx(t, "M001 - Merchant A", "2024-01-01", "50"),
			tx(t, "M001 - Merchant A", "2024-01-02", "0"),
			tx(t, "M002 - Merchant B", "2024-01-01", "999"),
		},
	}
}

func TestAggregateDaily(t *testing.T) {
	t.Run("groups by calendar day with sum, count and aov", func(t *testing.T) {
		rows := filterMerchant(scenarioSnapshot(t).Rows, "M001 - Merchant A")
		daily := aggregateDaily(rows)

		require.Len(t, daily, 2)

		assert.Equal(t, day(t, "2024-01-01"), daily[0].Date)
		assert.True(t, daily[0].Revenue.Equal(decimal.NewFromInt(150)), "revenue = %s", daily[0].Revenue)
		assert.Equal(t, int64(2), daily[0].Orders)
		require.NotNil(t, daily[0].AOV)
		assert.True(t, daily[0].AOV.Equal(decimal.NewFromInt(75)), "aov = %s", daily[0].AOV)

		assert.Equal(t, day(t, "2024-01-02"), daily[1].Date)
		assert.True(t, daily[1].Revenue.Equal(decimal.Zero))
		assert.Equal(t, int64(1), daily[1].Orders)
		require.NotNil(t, daily[1].AOV)
		assert.True(t, daily[1].AOV.Equal(decimal.Zero))
	})

	t.Run("discards time of day when bucketing", func(t *testing.T) {
		morning := time.Date(2024, 3, 5, 8, 15, 0, 0, time.UTC)
		evening := time.Date(2024, 3, 5, 23, 59, 59, 0, time.UTC)
		ten := decimal.NewFromInt(10)

		daily := aggregateDaily([]models.Transaction{
			{Merchant: "M", Date: &morning, Amount: &ten},
			{Merchant: "M", Date: &evening, Amount: &ten},
		})

		require.Len(t, daily, 1)
		assert.Equal(t, day(t, "2024-03-05"), daily[0].Date)
		assert.Equal(t, int64(2), daily[0].Orders)
	})

	t.Run("excludes rows with unparseable dates", func(t *testing.T) {
		daily := aggregateDaily([]models.Transaction{
			tx(t, "M001 - Merchant A", "", "100"), // date failed to parse
			tx(t, "M001 - Merchant A", "2024-01-01", "50"),
		})

		require.Len(t, daily, 1)
		assert.True(t, daily[0].Revenue.Equal(decimal.NewFromInt(50)))
		assert.Equal(t, int64(1), daily[0].Orders)
	})

	t.Run("null amount contributes neither revenue nor an order", func(t *testing.T) {
		daily := aggregateDaily([]models.Transaction{
			tx(t, "M001 - Merchant A", "2024-01-01", "100"),
			tx(t, "M001 - Merchant A", "2024-01-01", ""), // amount failed to parse
		})

		require.Len(t, daily, 1)
		assert.True(t, daily[0].Revenue.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, int64(1), daily[0].Orders)
	})

	t.Run("day with only null amounts keeps its record with nil aov", func(t *testing.T) {
		daily := aggregateDaily([]models.Transaction{
			tx(t, "M001 - Merchant A", "2024-01-01", ""),
		})

		require.Len(t, daily, 1)
		assert.True(t, daily[0].Revenue.Equal(decimal.Zero))
		assert.Equal(t, int64(0), daily[0].Orders)
		assert.Nil(t, daily[0].AOV)
	})

	t.Run("aov is defined iff orders are positive", func(t *testing.T) {
		daily := aggregateDaily([]models.Transaction{
			tx(t, "M", "2024-01-01", "10"),
			tx(t, "M", "2024-01-02", ""),
			tx(t, "M", "2024-01-03", "3"),
			tx(t, "M", "2024-01-03", "4"),
		})

		for _, d := range daily {
			assert.GreaterOrEqual(t, d.Orders, int64(0))
			if d.Orders > 0 {
				require.NotNil(t, d.AOV, "day %s", d.Date)
				expected := d.Revenue.Div(decimal.NewFromInt(d.Orders))
				assert.True(t, d.AOV.Equal(expected), "day %s: aov %s != %s", d.Date, d.AOV, expected)
			} else {
				assert.Nil(t, d.AOV, "day %s", d.Date)
			}
		}
	})
}

func TestFilterRange(t *testing.T) {
	rows := filterMerchant(scenarioSnapshot(t).Rows, "M001 - Merchant A")
	daily := aggregateDaily(rows)

	t.Run("full-range window is a no-op", func(t *testing.T) {
		window := filterRange(daily, daily[0].Date, daily[len(daily)-1].Date)
		assert.Equal(t, daily, window)
	})

	t.Run("single-day window", func(t *testing.T) {
		window := filterRange(daily, day(t, "2024-01-02"), day(t, "2024-01-02"))
		require.Len(t, window, 1)
		assert.Equal(t, day(t, "2024-01-02"), window[0].Date)
		assert.True(t, window[0].Revenue.Equal(decimal.Zero))
		assert.Equal(t, int64(1), window[0].Orders)
	})

	t.Run("window outside the series is empty, not an error", func(t *testing.T) {
		window := filterRange(daily, day(t, "2030-01-01"), day(t, "2030-12-31"))
		assert.Empty(t, window)
	})
}

func TestService_Daily(t *testing.T) {
	svc := NewService(&stubDataset{snap: scenarioSnapshot(t)})

	t.Run("defaults to the merchant's full range", func(t *testing.T) {
		daily, err := svc.Daily(context.Background(), "M001 - Merchant A", nil, nil)
		require.NoError(t, err)
		assert.Len(t, daily, 2)
	})

	t.Run("inclusive single-day window", func(t *testing.T) {
		daily, err := svc.Daily(context.Background(), "M001 - Merchant A",
			dayPtr(t, "2024-01-02"), dayPtr(t, "2024-01-02"))
		require.NoError(t, err)
		require.Len(t, daily, 1)
		assert.Equal(t, day(t, "2024-01-02"), daily[0].Date)
	})

	t.Run("inverted window is rejected", func(t *testing.T) {
		_, err := svc.Daily(context.Background(), "M001 - Merchant A",
			dayPtr(t, "2024-01-02"), dayPtr(t, "2024-01-01"))
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("unknown merchant reports no transactions", func(t *testing.T) {
		_, err := svc.Daily(context.Background(), "M999 - Nobody", nil, nil)
		assert.ErrorIs(t, err, ErrNoTransactions)
		assert.Contains(t, err.Error(), "M999 - Nobody")
	})

	t.Run("identical inputs yield identical output", func(t *testing.T) {
		first, err := svc.Daily(context.Background(), "M001 - Merchant A", nil, nil)
		require.NoError(t, err)
		second, err := svc.Daily(context.Background(), "M001 - Merchant A", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestService_Summary(t *testing.T) {
	svc := NewService(&stubDataset{snap: scenarioSnapshot(t)})

	t.Run("totals over the full range", func(t *testing.T) {
		summary, err := svc.Summary(context.Background(), "M001 - Merchant A", nil, nil)
		require.NoError(t, err)

		assert.Equal(t, "M001 - Merchant A", summary.MerchantID)
		assert.Equal(t, "sample_merchant_transactions.csv", summary.Source)
		assert.True(t, summary.TotalRevenue.Equal(decimal.NewFromInt(150)))
		assert.Equal(t, int64(3), summary.TotalOrders)
		assert.Equal(t, 2, summary.Days)
		require.NotNil(t, summary.LatestAOV)
		assert.True(t, summary.LatestAOV.Equal(decimal.Zero), "latest day had aov 0")
	})

	t.Run("empty window yields zero-valued KPIs", func(t *testing.T) {
		summary, err := svc.Summary(context.Background(), "M001 - Merchant A",
			dayPtr(t, "2030-01-01"), dayPtr(t, "2030-12-31"))
		require.NoError(t, err)

		assert.Equal(t, 0, summary.Days)
		assert.True(t, summary.TotalRevenue.Equal(decimal.Zero))
		assert.Equal(t, int64(0), summary.TotalOrders)
		assert.Nil(t, summary.LatestAOV)
	})
}

func TestService_Range(t *testing.T) {
	svc := NewService(&stubDataset{snap: scenarioSnapshot(t)})

	dateRange, err := svc.Range(context.Background(), "M001 - Merchant A")
	require.NoError(t, err)
	assert.Equal(t, day(t, "2024-01-01"), dateRange.Start)
	assert.Equal(t, day(t, "2024-01-02"), dateRange.End)
}

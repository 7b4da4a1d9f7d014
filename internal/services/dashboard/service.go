// Package dashboard turns the normalized transactions snapshot into the
// per-merchant daily series and KPI summary the frontend renders. The whole
// pipeline is a pure function of (snapshot, merchant id, date window);
// nothing here holds state between requests.
package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Ramiogue/dashboard-app2/internal/models"
	"github.com/Ramiogue/dashboard-app2/internal/services/dataset"

	"github.com/shopspring/decimal"
)

type Service interface {
	Range(ctx context.Context, merchantID string) (*DateRange, error)
	Daily(ctx context.Context, merchantID string, start, end *time.Time) ([]models.DailyAggregate, error)
	Summary(ctx context.Context, merchantID string, start, end *time.Time) (*Summary, error)
}

type service struct {
	dataset dataset.Service
}

func NewService(datasetSvc dataset.Service) Service {
	return &service{
		dataset: datasetSvc,
	}
}

func (s *service) Range(ctx context.Context, merchantID string) (*DateRange, error) {
	daily, _, err := s.merchantDaily(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	return &DateRange{
		Start: daily[0].Date,
		End:   daily[len(daily)-1].Date,
	}, nil
}

func (s *service) Daily(ctx context.Context, merchantID string, start, end *time.Time) ([]models.DailyAggregate, error) {
	daily, _, err := s.merchantDaily(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	from, to, err := resolveWindow(daily, start, end)
	if err != nil {
		return nil, err
	}

	return filterRange(daily, from, to), nil
}

func (s *service) Summary(ctx context.Context, merchantID string, start, end *time.Time) (*Summary, error) {
	daily, source, err := s.merchantDaily(ctx, merchantID)
	if err != nil {
		return nil, err
	}

	from, to, err := resolveWindow(daily, start, end)
	if err != nil {
		return nil, err
	}
	window := filterRange(daily, from, to)

	summary := &Summary{
		MerchantID:   merchantID,
		Source:       source,
		Start:        from,
		End:          to,
		TotalRevenue: decimal.Zero,
		Days:         len(window),
	}
	for _, day := range window {
		summary.TotalRevenue = summary.TotalRevenue.Add(day.Revenue)
		summary.TotalOrders += day.Orders
	}
	if len(window) > 0 {
		summary.LatestAOV = window[len(window)-1].AOV
	}

	return summary, nil
}

// merchantDaily runs the shared pipeline prefix: snapshot → merchant filter
// → daily aggregation. An empty result at either stage is the "no
// transactions" state.
func (s *service) merchantDaily(ctx context.Context, merchantID string) ([]models.DailyAggregate, string, error) {
	snap, err := s.dataset.Snapshot(ctx)
	if err != nil {
		return nil, "", err
	}

	rows := filterMerchant(snap.Rows, merchantID)
	daily := aggregateDaily(rows)
	if len(daily) == 0 {
		return nil, "", fmt.Errorf("%w: %s", ErrNoTransactions, merchantID)
	}
	return daily, snap.Source, nil
}

// filterMerchant keeps rows whose trimmed merchant field is exactly equal
// to merchantID. Matching is byte-equal and case-sensitive; the users file
// has to carry the merchant string precisely as it appears in the extract.
func filterMerchant(rows []models.Transaction, merchantID string) []models.Transaction {
	matched := make([]models.Transaction, 0, len(rows))
	for _, row := range rows {
		if row.Merchant == merchantID {
			matched = append(matched, row)
		}
	}
	return matched
}

// aggregateDaily buckets rows by calendar day and computes per-day revenue,
// order count and AOV. Rows without a parseable date cannot be bucketed and
// are excluded here. A row without a parseable amount still keeps its day in
// the series but contributes to neither revenue nor the order count, so a
// day may legitimately carry orders == 0 and a nil AOV.
func aggregateDaily(rows []models.Transaction) []models.DailyAggregate {
	buckets := make(map[time.Time]*models.DailyAggregate)
	for _, row := range rows {
		if row.Date == nil {
			continue
		}
		day := truncateDay(*row.Date)

		agg, ok := buckets[day]
		if !ok {
			agg = &models.DailyAggregate{Date: day, Revenue: decimal.Zero}
			buckets[day] = agg
		}
		if row.Amount != nil {
			agg.Revenue = agg.Revenue.Add(*row.Amount)
			agg.Orders++
		}
	}

	daily := make([]models.DailyAggregate, 0, len(buckets))
	for _, agg := range buckets {
		if agg.Orders > 0 {
			aov := agg.Revenue.Div(decimal.NewFromInt(agg.Orders))
			agg.AOV = &aov
		}
		daily = append(daily, *agg)
	}
	sort.Slice(daily, func(i, j int) bool {
		return daily[i].Date.Before(daily[j].Date)
	})
	return daily
}

// resolveWindow fills missing bounds from the series itself and rejects an
// inverted window. Bounds outside the series are allowed; they just produce
// an empty subsequence, which is the warning state, not an error.
func resolveWindow(daily []models.DailyAggregate, start, end *time.Time) (time.Time, time.Time, error) {
	from := daily[0].Date
	to := daily[len(daily)-1].Date

	if start != nil {
		from = truncateDay(*start)
	}
	if end != nil {
		to = truncateDay(*end)
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	return from, to, nil
}

// filterRange returns the subsequence of daily whose dates fall inside the
// inclusive [from, to] window, order preserved.
func filterRange(daily []models.DailyAggregate, from, to time.Time) []models.DailyAggregate {
	window := make([]models.DailyAggregate, 0, len(daily))
	for _, day := range daily {
		if day.Date.Before(from) || day.Date.After(to) {
			continue
		}
		window = append(window, day)
	}
	return window
}

// truncateDay drops the time-of-day portion, keeping the calendar date.
func truncateDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

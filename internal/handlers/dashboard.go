package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/Ramiogue/dashboard-app2/internal/middleware"
	"github.com/Ramiogue/dashboard-app2/internal/services/dashboard"
	"github.com/Ramiogue/dashboard-app2/internal/services/dataset"
	"github.com/Ramiogue/dashboard-app2/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

const dateParamLayout = "2006-01-02"

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetRange returns the merchant's observed [min, max] aggregate dates,
// which bound the frontend's date picker.
func (h *DashboardHandler) GetRange(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return response.Unauthorized(c, "Invalid claims")
	}

	dateRange, err := h.dashboardService.Range(c.Context(), claims.MerchantID)
	if err != nil {
		return h.pipelineError(c, err)
	}

	return response.Success(c, "Date range retrieved", dateRange)
}

// GetDaily returns the daily aggregate rows for the requested window — the
// source for the charts and the table view.
func (h *DashboardHandler) GetDaily(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return response.Unauthorized(c, "Invalid claims")
	}

	start, end, err := parseWindow(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	daily, err := h.dashboardService.Daily(c.Context(), claims.MerchantID, start, end)
	if err != nil {
		return h.pipelineError(c, err)
	}

	if len(daily) == 0 {
		return response.Warning(c, "No transactions in the selected date range", daily)
	}
	return response.Success(c, "Daily aggregates retrieved", daily)
}

// GetSummary returns the KPI tiles for the requested window.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	claims, ok := middleware.Claims(c)
	if !ok {
		return response.Unauthorized(c, "Invalid claims")
	}

	start, end, err := parseWindow(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	summary, err := h.dashboardService.Summary(c.Context(), claims.MerchantID, start, end)
	if err != nil {
		return h.pipelineError(c, err)
	}

	if summary.Days == 0 {
		return response.Warning(c, "No transactions in the selected date range", summary)
	}
	return response.Success(c, "Summary retrieved", summary)
}

// pipelineError maps pipeline failures onto the distinct user-visible
// states. Only the empty-result case is non-fatal; everything else halts
// the render for this request.
func (h *DashboardHandler) pipelineError(c *fiber.Ctx, err error) error {
	var schemaErr *dataset.SchemaError
	switch {
	case errors.Is(err, dashboard.ErrNoTransactions):
		return response.Warning(c, err.Error(), nil)
	case errors.Is(err, dashboard.ErrInvalidRange):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, dataset.ErrDatasetNotFound):
		return response.ServerError(c, err.Error())
	case errors.As(err, &schemaErr):
		return response.ServerError(c, schemaErr.Error())
	default:
		log.Printf("dashboard pipeline error: %v", err)
		return response.ServerError(c, "Failed to build dashboard")
	}
}

// parseWindow reads the optional start/end query parameters. Absent bounds
// default to the merchant's own data range downstream.
func parseWindow(c *fiber.Ctx) (*time.Time, *time.Time, error) {
	var start, end *time.Time

	if raw := c.Query("start"); raw != "" {
		t, err := time.Parse(dateParamLayout, raw)
		if err != nil {
			return nil, nil, errors.New("invalid 'start' parameter, expected YYYY-MM-DD")
		}
		start = &t
	}
	if raw := c.Query("end"); raw != "" {
		t, err := time.Parse(dateParamLayout, raw)
		if err != nil {
			return nil, nil, errors.New("invalid 'end' parameter, expected YYYY-MM-DD")
		}
		end = &t
	}
	return start, end, nil
}

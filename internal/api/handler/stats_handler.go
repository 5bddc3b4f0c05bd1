package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cuongbtq/career-tracker/internal/aggregate"
	"github.com/cuongbtq/career-tracker/internal/domain"
	"github.com/cuongbtq/career-tracker/internal/report"
)

// GetAggregates handles GET /api/v1/stats/aggregates
func (h *StatsHandler) GetAggregates(c *gin.Context) {
	_, agg, err := h.compute()
	if err != nil {
		writeError(c, h.logger, "Failed to compute aggregates", err)
		return
	}
	c.JSON(http.StatusOK, agg)
}

// GetOverview handles GET /api/v1/stats/overview
func (h *StatsHandler) GetOverview(c *gin.Context) {
	_, agg, err := h.compute()
	if err != nil {
		writeError(c, h.logger, "Failed to compute overview", err)
		return
	}
	c.JSON(http.StatusOK, report.BuildOverview(agg))
}

// GetAnalytics handles GET /api/v1/stats/analytics
func (h *StatsHandler) GetAnalytics(c *gin.Context) {
	apps, agg, err := h.compute()
	if err != nil {
		writeError(c, h.logger, "Failed to compute analytics", err)
		return
	}
	c.JSON(http.StatusOK, report.BuildAnalytics(apps, agg, h.options.RecentLimit))
}

// GetReport handles GET /api/v1/stats/reports
func (h *StatsHandler) GetReport(c *gin.Context) {
	apps, agg, err := h.compute()
	if err != nil {
		writeError(c, h.logger, "Failed to compute report", err)
		return
	}
	c.JSON(http.StatusOK, report.BuildDetailed(apps, agg, h.options.TimelineLimit))
}

// compute aggregates a single snapshot so every view of one request is consistent
func (h *StatsHandler) compute() ([]domain.Application, *aggregate.Aggregates, error) {
	apps := h.store.Snapshot()
	agg, err := aggregate.Compute(apps, h.options.TopLocations)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to aggregate %d applications: %w", len(apps), err)
	}
	return apps, agg, nil
}

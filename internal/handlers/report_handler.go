package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/gonzalomaurino/canchas-api/internal/cache"
	"github.com/gonzalomaurino/canchas-api/internal/httpresp"
	"github.com/gonzalomaurino/canchas-api/internal/reports"
)

// ReportHandler serves the aggregate dashboards. Every endpoint goes
// through the read-through cache; report queries are fail-soft and answer
// with empty datasets rather than errors.
type ReportHandler struct {
	reports *reports.Service
	cache   *cache.Cache
}

func NewReportHandler(reports *reports.Service, cache *cache.Cache) *ReportHandler {
	return &ReportHandler{reports: reports, cache: cache}
}

func (h *ReportHandler) IncomePerCourt(c *gin.Context) {
	ctx := c.Request.Context()
	httpresp.OK(c, h.cache.Fetch(ctx, "reports:income_per_court", func() any {
		return h.reports.IncomePerCourt(ctx)
	}))
}

func (h *ReportHandler) PaymentsPerMethod(c *gin.Context) {
	ctx := c.Request.Context()
	httpresp.OK(c, h.cache.Fetch(ctx, "reports:payments_per_method", func() any {
		return h.reports.PaymentsPerMethod(ctx)
	}))
}

func (h *ReportHandler) StatusOverview(c *gin.Context) {
	ctx := c.Request.Context()
	httpresp.OK(c, h.cache.Fetch(ctx, "reports:status_overview", func() any {
		return h.reports.StatusOverview(ctx)
	}))
}

func (h *ReportHandler) MonthlyBudget(c *gin.Context) {
	ctx := c.Request.Context()
	httpresp.OK(c, h.cache.Fetch(ctx, "reports:monthly_budget", func() any {
		return h.reports.MonthlyBudget(ctx)
	}))
}

func (h *ReportHandler) TopClients(c *gin.Context) {
	ctx := c.Request.Context()
	httpresp.OK(c, h.cache.Fetch(ctx, "reports:top_clients", func() any {
		return h.reports.TopClients(ctx)
	}))
}

func (h *ReportHandler) CollectionSummary(c *gin.Context) {
	ctx := c.Request.Context()
	httpresp.OK(c, h.cache.Fetch(ctx, "reports:collection_summary", func() any {
		return h.reports.CollectionSummary(ctx)
	}))
}

func (h *ReportHandler) Projection(c *gin.Context) {
	ctx := c.Request.Context()
	httpresp.OK(c, h.cache.Fetch(ctx, "reports:projection", func() any {
		return h.reports.Projection(ctx)
	}))
}

func (h *ReportHandler) BookingsPerClient(c *gin.Context) {
	ctx := c.Request.Context()
	httpresp.OK(c, h.cache.Fetch(ctx, "reports:bookings_per_client", func() any {
		return h.reports.BookingsPerClient(ctx)
	}))
}

func (h *ReportHandler) BookingsPerCourt(c *gin.Context) {
	ctx := c.Request.Context()
	httpresp.OK(c, h.cache.Fetch(ctx, "reports:bookings_per_court", func() any {
		return h.reports.BookingsPerCourt(ctx)
	}))
}

func (h *ReportHandler) MonthlyUtilization(c *gin.Context) {
	ctx := c.Request.Context()
	httpresp.OK(c, h.cache.Fetch(ctx, "reports:monthly_utilization", func() any {
		return h.reports.MonthlyUtilization(ctx)
	}))
}

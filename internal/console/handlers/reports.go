package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"xcauditing-console/internal/auth"
	"xcauditing-console/internal/backend"
	"xcauditing-console/internal/cache"
	"xcauditing-console/internal/reports"
)

type ReportsHandler struct {
	sessions
	client *backend.Client
	engine *reports.Engine
	cache  *cache.Cache
}

func NewReportsHandler(client *backend.Client, engine *reports.Engine, store *auth.Store, cookieName string, c *cache.Cache) *ReportsHandler {
	return &ReportsHandler{
		sessions: sessions{store: store, cookieName: cookieName},
		client:   client,
		engine:   engine,
		cache:    c,
	}
}

type listReportsQuery struct {
	StaffName  string `form:"staffName"`
	EmployeeID string `form:"employeeId"`
	EvalPeriod string `form:"evalPeriod"`
	EvalType   string `form:"evalType"`
	PageSize   int    `form:"page_size,default=50"`
}

// reportView decorates a summary with its localized eval-type name.
type reportView struct {
	backend.WeeklyReportSummary
	EvalTypeName string `json:"eval_type_name"`
}

func viewOf(summary backend.WeeklyReportSummary) reportView {
	return reportView{
		WeeklyReportSummary: summary,
		EvalTypeName:        reports.EvalTypeNames[summary.EvalType],
	}
}

func (h *ReportsHandler) List(c *gin.Context) {
	var query listReportsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("Invalid query parameters"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	key := cache.Key(cache.KeyReports, "list",
		query.StaffName, query.EmployeeID, query.EvalPeriod, query.EvalType,
		strconv.Itoa(query.PageSize))
	var page backend.Page[backend.WeeklyReportSummary]
	if !h.cache.GetJSON(ctx, key, &page) {
		fresh, err := h.client.ListReportSummaries(ctx, backend.ListReportsQuery{
			StaffName:  query.StaffName,
			EmployeeID: query.EmployeeID,
			EvalPeriod: query.EvalPeriod,
			EvalType:   query.EvalType,
			PageSize:   query.PageSize,
		})
		if err != nil {
			h.fail(c, err)
			return
		}
		page = *fresh
		h.cache.SetJSON(ctx, key, page, cache.TTLShort)
	}

	rows := page.Rows()
	views := make([]reportView, 0, len(rows))
	for _, summary := range rows {
		views = append(views, viewOf(summary))
	}

	c.JSON(http.StatusOK, successWithMetaResponse("Reports retrieved successfully", views, gin.H{
		"total_elements": page.TotalElements,
	}))
}

func (h *ReportsHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	summary, err := h.client.GetReportSummary(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, successResponse("Report retrieved successfully", viewOf(*summary)))
}

// Details is the direct metric drill-down: the per-customer rows behind one
// aggregate number.
func (h *ReportsHandler) Details(c *gin.Context) {
	metric := c.Query("metric")
	if metric == "" {
		c.JSON(http.StatusBadRequest, errorResponse("Metric is required"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	rows, err := h.engine.Details(ctx, c.Param("id"), metric)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, successWithMetaResponse("Details retrieved successfully", rows, gin.H{
		"total_elements": len(rows),
	}))
}

// NotYetDue serves the first-week customers the 48-hour check has not applied
// to yet. When the companion report is missing the cohort is simply not
// computable; the client disables the affordance.
func (h *ReportsHandler) NotYetDue(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
	defer cancel()

	summary, err := h.client.GetReportSummary(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}

	cohort, err := h.engine.NotYetDueCohort(ctx, summary)
	switch {
	case errors.Is(err, reports.ErrNotFirstWeek):
		c.JSON(http.StatusBadRequest, errorResponse("Cohort is only defined for first-week reports"))
		return
	case errors.Is(err, reports.ErrNoCompanion):
		c.JSON(http.StatusConflict, APIResponse{
			Success: false,
			Message: "cohort_unavailable",
		})
		return
	case err != nil:
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, successWithMetaResponse("Cohort computed successfully", cohort, gin.H{
		"total_elements": len(cohort),
	}))
}

// MissingOrderCheck serves the complement of the total_order_check aggregate.
func (h *ReportsHandler) MissingOrderCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	cohort, err := h.engine.MissingOrderCheckCohort(ctx, c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, successWithMetaResponse("Cohort computed successfully", cohort, gin.H{
		"total_elements": len(cohort),
	}))
}

func (h *ReportsHandler) Periods(c *gin.Context) {
	weeks, _ := strconv.Atoi(c.DefaultQuery("weeks", "8"))
	c.JSON(http.StatusOK, successResponse("Periods generated successfully",
		reports.RecentWeekPeriods(weeks, time.Now())))
}

// FleetSummary aggregates one period's summaries across all staff for the
// overview cards.
func (h *ReportsHandler) FleetSummary(c *gin.Context) {
	evalPeriod := c.Query("evalPeriod")
	if evalPeriod == "" {
		c.JSON(http.StatusBadRequest, errorResponse("evalPeriod is required"))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	page, err := h.client.ListReportSummaries(ctx, backend.ListReportsQuery{
		EvalPeriod: evalPeriod,
		EvalType:   c.Query("evalType"),
		PageSize:   500,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, successResponse("Summary computed successfully", reports.Summarize(page.Rows())))
}

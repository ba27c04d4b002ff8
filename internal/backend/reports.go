package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

type ListReportsQuery struct {
	StaffName  string
	EmployeeID string
	EvalPeriod string
	EvalType   string
	PageSize   int
}

func (c *Client) ListReportSummaries(ctx context.Context, q ListReportsQuery) (*Page[WeeklyReportSummary], error) {
	query := url.Values{}
	if q.StaffName != "" {
		query.Set("staffName", q.StaffName)
	}
	if q.EmployeeID != "" {
		query.Set("employeeId", q.EmployeeID)
	}
	if q.EvalPeriod != "" {
		query.Set("evalPeriod", q.EvalPeriod)
	}
	if q.EvalType != "" {
		query.Set("evalType", q.EvalType)
	}
	if q.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(q.PageSize))
	}
	var page Page[WeeklyReportSummary]
	if err := c.do(ctx, http.MethodGet, "/weekly-report-summaries", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetReportSummary(ctx context.Context, id string) (*WeeklyReportSummary, error) {
	var summary WeeklyReportSummary
	if err := c.do(ctx, http.MethodGet, "/weekly-report-summaries/"+id, nil, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ReportDetails fetches the per-customer rows behind one aggregate metric;
// the backend performs the metric filter.
func (c *Client) ReportDetails(ctx context.Context, id, metric string, pageSize int) (*Page[EvaluationDetail], error) {
	query := url.Values{}
	if metric != "" {
		query.Set("metric", metric)
	}
	if pageSize > 0 {
		query.Set("page_size", strconv.Itoa(pageSize))
	}
	var page Page[EvaluationDetail]
	if err := c.do(ctx, http.MethodGet, "/weekly-report-summaries/"+id+"/details", query, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

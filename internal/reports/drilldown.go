package reports

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"xcauditing-console/internal/backend"
	"xcauditing-console/internal/cache"
)

const (
	EvalTypeFirstWeek     = "FIRST_WEEK"
	EvalTypeSecondWeek    = "SECOND_WEEK"
	EvalTypeThirdWeek     = "THIRD_WEEK"
	EvalTypeFourthWeek    = "FOURTH_WEEK"
	EvalTypeWithin48Hours = "WITHIN_48_HOURS"
)

// EvalTypeNames maps eval types to their display names.
var EvalTypeNames = map[string]string{
	EvalTypeFirstWeek:     "首周评估",
	EvalTypeSecondWeek:    "第二周评估",
	EvalTypeThirdWeek:     "第三周评估",
	EvalTypeFourthWeek:    "第四周评估",
	EvalTypeWithin48Hours: "加微后48小时检测",
}

// MetricTotalCustomers selects the full per-customer detail set of a report.
const MetricTotalCustomers = "totalCustomers"

var (
	// ErrNoCompanion means the WITHIN_48_HOURS companion report does not
	// exist; the cohort is not computable and its UI affordance is disabled.
	ErrNoCompanion = errors.New("reports: companion 48-hour report not found")

	// ErrNotFirstWeek means a 48-hour cohort was requested for a report type
	// it is not defined for.
	ErrNotFirstWeek = errors.New("reports: cohort only defined for first-week reports")
)

// Fetcher is the slice of the backend client the engine needs.
type Fetcher interface {
	GetReportSummary(ctx context.Context, id string) (*backend.WeeklyReportSummary, error)
	ReportDetails(ctx context.Context, id, metric string, pageSize int) (*backend.Page[backend.EvaluationDetail], error)
}

// Engine computes the derived report cohorts the backend does not return
// directly. Every distinct (reportID, metric, mode, compareReportID) tuple is
// an independent cache entry so switching metrics never reuses stale rows.
type Engine struct {
	fetcher  Fetcher
	cache    *cache.Cache
	pageSize int
}

func NewEngine(fetcher Fetcher, c *cache.Cache, pageSize int) *Engine {
	if pageSize <= 0 {
		pageSize = 500
	}
	return &Engine{fetcher: fetcher, cache: c, pageSize: pageSize}
}

// Details is the direct metric lookup: the backend performs the actual
// filter-by-metric, the engine only caches the rows per tuple.
func (e *Engine) Details(ctx context.Context, reportID, metric string) ([]backend.EvaluationDetail, error) {
	key := cache.Key(cache.KeyReportDetails, reportID, metric, "direct", "-")
	var cached []backend.EvaluationDetail
	if e.cache != nil && e.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	page, err := e.fetcher.ReportDetails(ctx, reportID, metric, e.pageSize)
	if err != nil {
		return nil, err
	}
	rows := page.Rows()
	if e.cache != nil {
		e.cache.SetJSON(ctx, key, rows, cache.TTLShort)
	}
	return rows, nil
}

// CompanionReportID resolves the WITHIN_48_HOURS report that pairs with a
// FIRST_WEEK report by substituting the eval-type token inside its id.
func CompanionReportID(firstWeekID string) (string, error) {
	if !strings.Contains(firstWeekID, EvalTypeFirstWeek) {
		return "", fmt.Errorf("reports: id %q carries no %s token", firstWeekID, EvalTypeFirstWeek)
	}
	return strings.Replace(firstWeekID, EvalTypeFirstWeek, EvalTypeWithin48Hours, 1), nil
}

// NotYetDueCohort returns the FIRST_WEEK customers that do not appear in the
// companion 48-hour report: customers who joined too recently for the 48-hour
// check to have applied. Both detail sets are fetched concurrently; the
// filter runs only after both resolve, and either failure fails the whole
// computation.
func (e *Engine) NotYetDueCohort(ctx context.Context, report *backend.WeeklyReportSummary) ([]backend.EvaluationDetail, error) {
	if report.EvalType != EvalTypeFirstWeek {
		return nil, ErrNotFirstWeek
	}
	companionID, err := CompanionReportID(report.ID)
	if err != nil {
		return nil, ErrNoCompanion
	}

	key := cache.Key(cache.KeyReportDetails, report.ID, MetricTotalCustomers, "not-yet-due", companionID)
	var cached []backend.EvaluationDetail
	if e.cache != nil && e.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type fetchResult struct {
		companion bool
		rows      []backend.EvaluationDetail
		err       error
	}
	results := make(chan fetchResult, 2)

	go func() {
		rows, err := e.Details(ctx, report.ID, MetricTotalCustomers)
		results <- fetchResult{rows: rows, err: err}
	}()
	go func() {
		rows, err := e.Details(ctx, companionID, MetricTotalCustomers)
		results <- fetchResult{companion: true, rows: rows, err: err}
	}()

	var firstWeek, within48 []backend.EvaluationDetail
	var firstErr error
	for i := 0; i < 2; i++ {
		r := <-results
		if r.err != nil {
			// Cancel the sibling fetch; no partial result is ever returned.
			cancel()
			if firstErr == nil {
				if r.companion && errors.Is(r.err, backend.ErrNotFound) {
					firstErr = ErrNoCompanion
				} else {
					firstErr = r.err
				}
			}
			continue
		}
		if r.companion {
			within48 = r.rows
		} else {
			firstWeek = r.rows
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}

	seen := make(map[string]struct{}, len(within48))
	for _, row := range within48 {
		seen[row.CustomerID] = struct{}{}
	}
	cohort := make([]backend.EvaluationDetail, 0, len(firstWeek))
	for _, row := range firstWeek {
		if _, ok := seen[row.CustomerID]; !ok {
			cohort = append(cohort, row)
		}
	}

	if e.cache != nil {
		e.cache.SetJSON(ctx, key, cohort, cache.TTLShort)
	}
	return cohort, nil
}

// MissingOrderCheckCohort returns the customers for whom the
// order-verification step was never completed: the complement of the
// total_order_check aggregate.
func (e *Engine) MissingOrderCheckCohort(ctx context.Context, reportID string) ([]backend.EvaluationDetail, error) {
	key := cache.Key(cache.KeyReportDetails, reportID, MetricTotalCustomers, "missing-order-check", "-")
	var cached []backend.EvaluationDetail
	if e.cache != nil && e.cache.GetJSON(ctx, key, &cached) {
		return cached, nil
	}

	rows, err := e.Details(ctx, reportID, MetricTotalCustomers)
	if err != nil {
		return nil, err
	}
	cohort := make([]backend.EvaluationDetail, 0, len(rows))
	for _, row := range rows {
		if row.HasOrderCheck != 1 {
			cohort = append(cohort, row)
		}
	}

	if e.cache != nil {
		e.cache.SetJSON(ctx, key, cohort, cache.TTLShort)
	}
	return cohort, nil
}

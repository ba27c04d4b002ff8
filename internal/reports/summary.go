package reports

import (
	"github.com/shopspring/decimal"

	"xcauditing-console/internal/backend"
)

// FleetSummary aggregates one period's report summaries across all staff.
type FleetSummary struct {
	TotalCustomers     int    `json:"total_customers"`
	CompletedCustomers int    `json:"completed_customers"`
	RiskWordTriggers   int    `json:"risk_word_triggers"`
	MaterialSend       int    `json:"material_send"`
	CourseRemind       int    `json:"course_remind"`
	HomeworkPublish    int    `json:"homework_publish"`
	FeedbackTrack      int    `json:"feedback_track"`
	WeekMaterialSend   int    `json:"week_material_send"`
	SundayLinkSend     int    `json:"sunday_link_send"`
	CompletionRatio    string `json:"completion_ratio"`
}

// Summarize totals the per-employee summaries and derives the completion
// ratio (completed / customers, 4 decimal places, "0" when the period has no
// customers).
func Summarize(summaries []backend.WeeklyReportSummary) FleetSummary {
	var out FleetSummary
	for _, s := range summaries {
		out.TotalCustomers += s.TotalCustomers
		out.CompletedCustomers += s.TotalIntroduceCompleted
		out.RiskWordTriggers += s.TotalRiskWordTrigger
		out.MaterialSend += s.TotalMaterialSend
		out.CourseRemind += s.TotalCourseRemind
		out.HomeworkPublish += s.TotalHomeworkPublish
		out.FeedbackTrack += s.TotalFeedbackTrack
		out.WeekMaterialSend += s.TotalWeekMaterialSend
		out.SundayLinkSend += s.TotalSundayLinkSend
	}

	if out.TotalCustomers == 0 {
		out.CompletionRatio = "0"
		return out
	}
	ratio := decimal.NewFromInt(int64(out.CompletedCustomers)).
		DivRound(decimal.NewFromInt(int64(out.TotalCustomers)), 4)
	out.CompletionRatio = ratio.String()
	return out
}

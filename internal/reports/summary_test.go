package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"xcauditing-console/internal/backend"
)

func TestSummarize(t *testing.T) {
	got := Summarize([]backend.WeeklyReportSummary{
		{
			TotalCustomers:          6,
			TotalIntroduceCompleted: 3,
			TotalRiskWordTrigger:    1,
			TotalMaterialSend:       4,
			TotalCourseRemind:       2,
			TotalHomeworkPublish:    5,
			TotalFeedbackTrack:      1,
			TotalWeekMaterialSend:   2,
			TotalSundayLinkSend:     1,
		},
		{
			TotalCustomers:          2,
			TotalIntroduceCompleted: 2,
			TotalMaterialSend:       1,
		},
	})

	assert.Equal(t, 8, got.TotalCustomers)
	assert.Equal(t, 5, got.CompletedCustomers)
	assert.Equal(t, 1, got.RiskWordTriggers)
	assert.Equal(t, 5, got.MaterialSend)
	assert.Equal(t, 2, got.CourseRemind)
	assert.Equal(t, 5, got.HomeworkPublish)
	assert.Equal(t, 1, got.FeedbackTrack)
	assert.Equal(t, 2, got.WeekMaterialSend)
	assert.Equal(t, 1, got.SundayLinkSend)
	assert.Equal(t, "0.625", got.CompletionRatio)
}

func TestSummarizeRounding(t *testing.T) {
	got := Summarize([]backend.WeeklyReportSummary{
		{TotalCustomers: 3, TotalIntroduceCompleted: 1},
	})
	assert.Equal(t, "0.3333", got.CompletionRatio)
}

func TestSummarizeEmptyPeriod(t *testing.T) {
	got := Summarize(nil)
	assert.Equal(t, 0, got.TotalCustomers)
	assert.Equal(t, "0", got.CompletionRatio)
}

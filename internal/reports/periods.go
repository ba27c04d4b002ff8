package reports

import (
	"strings"
	"time"
)

// WeekPeriodOption is one selectable statistics period. Value doubles as the
// evalPeriod request parameter (the end-of-week date, YYYY-MM-DD).
type WeekPeriodOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// RecentWeekPeriods generates the last N weekly periods counting back from
// now. Sunday is the period end day and each period spans 7 days, so
// start = end - 6 days.
func RecentWeekPeriods(weeks int, now time.Time) []WeekPeriodOption {
	if weeks <= 0 {
		weeks = 8
	}

	offset := int(now.Weekday()) // Sunday == 0
	latestEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, -offset)

	out := make([]WeekPeriodOption, 0, weeks)
	for i := 0; i < weeks; i++ {
		end := latestEnd.AddDate(0, 0, -7*i)
		start := end.AddDate(0, 0, -6)

		endYmd := end.Format("2006-01-02")
		out = append(out, WeekPeriodOption{
			Value: endYmd,
			Label: strings.ReplaceAll(endYmd, "-", ""),
			Start: start.Format("2006-01-02"),
			End:   endYmd,
		})
	}
	return out
}

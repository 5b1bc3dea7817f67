package visitor

import (
	"sort"
	"time"
)

// Aggregate reducers over fetched record lists. All of them are total over
// empty or nil input and never mutate their arguments. The reference day is
// always passed in explicitly.

// sameDay compares calendar days in the reference time's location.
func sameDay(t, ref time.Time) bool {
	y1, m1, d1 := t.In(ref.Location()).Date()
	y2, m2, d2 := ref.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// CountToday counts visitors whose scheduled visit date (not creation date)
// falls on the same calendar day as today.
func CountToday(visitors []Visitor, today time.Time) int {
	n := 0
	for _, v := range visitors {
		if sameDay(v.VisitDate, today) {
			n++
		}
	}
	return n
}

// CountByStatus counts visitors with exactly the given canonical status.
func CountByStatus(visitors []Visitor, status Status) int {
	n := 0
	for _, v := range visitors {
		if v.Status == status {
			n++
		}
	}
	return n
}

// CountActiveFlags counts flags that are still open.
func CountActiveFlags(flags []Flag) int {
	n := 0
	for _, f := range flags {
		if f.Status == FlagFlagged {
			n++
		}
	}
	return n
}

// CountReportsByStatus counts reports with exactly the given status.
func CountReportsByStatus(reports []SuspiciousReport, status ReportStatus) int {
	n := 0
	for _, r := range reports {
		if r.Status == status {
			n++
		}
	}
	return n
}

// RecentActivity returns the n most recently created visitors, newest first.
// The input slice is left untouched.
func RecentActivity(visitors []Visitor, n int) []Visitor {
	if n <= 0 || len(visitors) == 0 {
		return nil
	}
	out := make([]Visitor, len(visitors))
	copy(out, visitors)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// TrendPoint is one day's visitor count in a weekly trend.
type TrendPoint struct {
	Day   string    `json:"day"` // "Mon".."Sun"
	Date  time.Time `json:"date"`
	Count int       `json:"visitors"`
}

// WeeklyTrend buckets visit dates into the seven calendar days ending at
// today, oldest first. Counts are real aggregations over the supplied
// records, not placeholders.
func WeeklyTrend(visitors []Visitor, today time.Time) []TrendPoint {
	points := make([]TrendPoint, 7)
	for i := 0; i < 7; i++ {
		day := today.AddDate(0, 0, i-6)
		p := TrendPoint{Day: day.Format("Mon"), Date: day}
		for _, v := range visitors {
			if sameDay(v.VisitDate, day) {
				p.Count++
			}
		}
		points[i] = p
	}
	return points
}

package visitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountToday(t *testing.T) {
	t.Parallel()
	today := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)

	assert.Zero(t, CountToday(nil, today))
	assert.Zero(t, CountToday([]Visitor{}, today))

	visitors := []Visitor{
		{VisitDate: today.Add(5 * time.Hour)}, // same day, later clock time
		{VisitDate: yesterday},
	}
	assert.Equal(t, 1, CountToday(visitors, today))
}

func TestCountToday_UsesVisitDateNotCreation(t *testing.T) {
	t.Parallel()
	today := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	v := Visitor{VisitDate: today.AddDate(0, 0, 2), CreatedAt: today}
	assert.Zero(t, CountToday([]Visitor{v}, today))
}

func TestCountByStatus(t *testing.T) {
	t.Parallel()
	visitors := []Visitor{
		{Status: StatusPending},
		{Status: StatusPending},
		{Status: StatusCheckedIn},
	}
	assert.Equal(t, 2, CountByStatus(visitors, StatusPending))
	assert.Equal(t, 1, CountByStatus(visitors, StatusCheckedIn))
	assert.Zero(t, CountByStatus(visitors, StatusAlert))
	assert.Zero(t, CountByStatus(nil, StatusPending))
}

func TestFlagAndReportCounts(t *testing.T) {
	t.Parallel()
	flags := []Flag{{Status: FlagFlagged}, {Status: FlagResolved}, {Status: FlagFlagged}}
	assert.Equal(t, 2, CountActiveFlags(flags))
	assert.Zero(t, CountActiveFlags(nil))

	reports := []SuspiciousReport{
		{Status: ReportReported},
		{Status: ReportInvestigating},
		{Status: ReportResolved},
	}
	assert.Equal(t, 1, CountReportsByStatus(reports, ReportInvestigating))
	assert.Zero(t, CountReportsByStatus(nil, ReportReported))
}

func TestRecentActivity(t *testing.T) {
	t.Parallel()
	base := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	visitors := []Visitor{
		{ID: "old", CreatedAt: base.Add(-3 * time.Hour)},
		{ID: "new", CreatedAt: base},
		{ID: "mid", CreatedAt: base.Add(-1 * time.Hour)},
	}
	got := RecentActivity(visitors, 2)
	assert.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "mid", got[1].ID)

	// Input order untouched.
	assert.Equal(t, "old", visitors[0].ID)

	assert.Nil(t, RecentActivity(visitors, 0))
	assert.Nil(t, RecentActivity(nil, 5))
}

func TestWeeklyTrend(t *testing.T) {
	t.Parallel()
	today := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC) // a Monday
	visitors := []Visitor{
		{VisitDate: today},
		{VisitDate: today.AddDate(0, 0, -1)},
		{VisitDate: today.AddDate(0, 0, -1)},
		{VisitDate: today.AddDate(0, 0, -7)}, // outside the window
		{VisitDate: today.AddDate(0, 0, 1)},  // in the future, outside
	}
	trend := WeeklyTrend(visitors, today)
	assert.Len(t, trend, 7)
	assert.Equal(t, "Tue", trend[0].Day)
	assert.Equal(t, "Mon", trend[6].Day)
	assert.Equal(t, 1, trend[6].Count)
	assert.Equal(t, 2, trend[5].Count)
	for i := 0; i < 5; i++ {
		assert.Zero(t, trend[i].Count, "day %s", trend[i].Day)
	}
}

func TestWeeklyTrend_EmptyInput(t *testing.T) {
	t.Parallel()
	trend := WeeklyTrend(nil, time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC))
	assert.Len(t, trend, 7)
	for _, p := range trend {
		assert.Zero(t, p.Count)
	}
}

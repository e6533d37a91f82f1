package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/pontohr/backend-go/internal/domain/timetracking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func punchAt(t *testing.T, kind timetracking.Kind, value string) timetracking.PunchEvent {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return timetracking.PunchEvent{
		EmployeeID: "emp-1",
		CompanyID:  "co-1",
		Kind:       kind,
		Timestamp:  ts,
	}
}

func TestAggregateMonth_SingleFullDay(t *testing.T) {
	events := []timetracking.PunchEvent{
		punchAt(t, timetracking.KindIn, "2024-03-04T09:00:00Z"),
		punchAt(t, timetracking.KindOut, "2024-03-04T17:00:00Z"),
	}

	agg := aggregateMonth("emp-1", "Alice", "Analyst", "Engineering", events, time.UTC)

	require.Len(t, agg.Report.Days, 1)
	assert.Equal(t, "2024-03-04", agg.Report.Days[0].Date)
	assert.InDelta(t, 8.0, agg.Report.TotalHours, 1e-9)
	assert.InDelta(t, 0.0, agg.Report.TotalOvertime, 1e-9)
	assert.Empty(t, agg.Report.Warnings)
}

func TestAggregateMonth_TwoPairsWithOvertime(t *testing.T) {
	events := []timetracking.PunchEvent{
		punchAt(t, timetracking.KindIn, "2024-03-04T09:00:00Z"),
		punchAt(t, timetracking.KindOut, "2024-03-04T13:00:00Z"),
		punchAt(t, timetracking.KindIn, "2024-03-04T14:00:00Z"),
		punchAt(t, timetracking.KindOut, "2024-03-04T19:00:00Z"),
	}

	agg := aggregateMonth("emp-1", "Alice", "Analyst", "Engineering", events, time.UTC)

	assert.InDelta(t, 9.0, agg.Report.TotalHours, 1e-9)
	assert.InDelta(t, 1.0, agg.Report.TotalOvertime, 1e-9)
	assert.Empty(t, agg.Report.Warnings)
}

func TestAggregateMonth_OddEventCount(t *testing.T) {
	events := []timetracking.PunchEvent{
		punchAt(t, timetracking.KindIn, "2024-03-05T08:00:00Z"),
		punchAt(t, timetracking.KindOut, "2024-03-05T12:00:00Z"),
		punchAt(t, timetracking.KindIn, "2024-03-05T13:00:00Z"),
	}

	agg := aggregateMonth("emp-1", "Alice", "Analyst", "Engineering", events, time.UTC)

	// The unpaired event contributes no duration.
	assert.InDelta(t, 4.0, agg.Report.TotalHours, 1e-9)
	require.Len(t, agg.Report.Warnings, 1)
	assert.Equal(t, "incomplete entry on day 2024-03-05 for Alice", agg.Report.Warnings[0])
}

func TestAggregateMonth_PositionalPairingIgnoresKind(t *testing.T) {
	// Two consecutive "in" punches still pair positionally.
	events := []timetracking.PunchEvent{
		punchAt(t, timetracking.KindIn, "2024-03-06T09:00:00Z"),
		punchAt(t, timetracking.KindIn, "2024-03-06T15:00:00Z"),
	}

	agg := aggregateMonth("emp-1", "Alice", "Analyst", "Engineering", events, time.UTC)

	assert.InDelta(t, 6.0, agg.Report.TotalHours, 1e-9)
	assert.Empty(t, agg.Report.Warnings)
}

func TestAggregateMonth_ExcessiveHoursWarning(t *testing.T) {
	events := []timetracking.PunchEvent{
		punchAt(t, timetracking.KindIn, "2024-03-07T07:00:00Z"),
		punchAt(t, timetracking.KindOut, "2024-03-07T20:30:00Z"),
	}

	agg := aggregateMonth("emp-1", "Alice", "Analyst", "Engineering", events, time.UTC)

	assert.InDelta(t, 13.5, agg.Report.TotalHours, 1e-9)
	require.Len(t, agg.Report.Warnings, 1)
	assert.Equal(t, "excessive hours (13.50h) on day 2024-03-07 for Alice", agg.Report.Warnings[0])
}

func TestAggregateMonth_TwelveHoursExactlyIsNotExcessive(t *testing.T) {
	events := []timetracking.PunchEvent{
		punchAt(t, timetracking.KindIn, "2024-03-08T07:00:00Z"),
		punchAt(t, timetracking.KindOut, "2024-03-08T19:00:00Z"),
	}

	agg := aggregateMonth("emp-1", "Alice", "Analyst", "Engineering", events, time.UTC)

	assert.InDelta(t, 12.0, agg.Report.TotalHours, 1e-9)
	assert.Empty(t, agg.Report.Warnings)
}

func TestAggregateMonth_WarningOrderIncompleteBeforeExcessive(t *testing.T) {
	// The excessive day comes first chronologically, but incomplete-entry
	// warnings are always listed before excessive-hours warnings.
	events := []timetracking.PunchEvent{
		punchAt(t, timetracking.KindIn, "2024-03-11T06:00:00Z"),
		punchAt(t, timetracking.KindOut, "2024-03-11T19:30:00Z"),
		punchAt(t, timetracking.KindIn, "2024-03-12T09:00:00Z"),
	}

	agg := aggregateMonth("emp-1", "Alice", "Analyst", "Engineering", events, time.UTC)

	require.Len(t, agg.Report.Warnings, 2)
	assert.Equal(t, "incomplete entry on day 2024-03-12 for Alice", agg.Report.Warnings[0])
	assert.Equal(t, "excessive hours (13.50h) on day 2024-03-11 for Alice", agg.Report.Warnings[1])
}

func TestAggregateMonth_NegativeDurationPassesThrough(t *testing.T) {
	// Out-of-order clock data is not clamped.
	events := []timetracking.PunchEvent{
		punchAt(t, timetracking.KindOut, "2024-03-13T12:00:00Z"),
		punchAt(t, timetracking.KindIn, "2024-03-13T10:00:00Z"),
	}

	agg := aggregateMonth("emp-1", "Alice", "Analyst", "Engineering", events, time.UTC)

	assert.InDelta(t, -2.0, agg.Report.TotalHours, 1e-9)
	assert.InDelta(t, 0.0, agg.Report.TotalOvertime, 1e-9)
}

func TestAggregateMonth_OvertimeInvariant(t *testing.T) {
	cases := []struct {
		hours        float64
		wantOvertime float64
	}{
		{4, 0},
		{8, 0},
		{9.5, 1.5},
		{11, 3},
	}

	for _, c := range cases {
		start, _ := time.Parse(time.RFC3339, "2024-03-14T06:00:00Z")
		events := []timetracking.PunchEvent{
			{Kind: timetracking.KindIn, Timestamp: start},
			{Kind: timetracking.KindOut, Timestamp: start.Add(time.Duration(c.hours * float64(time.Hour)))},
		}

		agg := aggregateMonth("emp-1", "Alice", "Analyst", "Engineering", events, time.UTC)
		assert.InDelta(t, c.wantOvertime, agg.Report.TotalOvertime, 1e-9,
			fmt.Sprintf("overtime for a %.1fh day", c.hours))
	}
}

func TestAggregateMonth_CivilDateUsesReportTimezone(t *testing.T) {
	// 01:00 UTC is still the previous evening in UTC-3; both punches must
	// land in the bucket for the 15th, not the 16th.
	loc := time.FixedZone("UTC-3", -3*60*60)
	events := []timetracking.PunchEvent{
		punchAt(t, timetracking.KindIn, "2024-01-15T21:00:00Z"),
		punchAt(t, timetracking.KindOut, "2024-01-16T01:00:00Z"),
	}

	agg := aggregateMonth("emp-1", "Alice", "Analyst", "Engineering", events, loc)

	require.Len(t, agg.Report.Days, 1)
	assert.Equal(t, "2024-01-15", agg.Report.Days[0].Date)
	assert.InDelta(t, 4.0, agg.Report.TotalHours, 1e-9)
}

func TestComputeBalance(t *testing.T) {
	// expected = 8 * 22 = 176h
	b := computeBalance(180, 6)
	assert.Equal(t, "04:00", b.MonthlyCredits)
	assert.Equal(t, "00:00", b.MonthlyDebits)
	assert.Equal(t, "06:00", b.OvertimeBalance)
	assert.Equal(t, "-02:00", b.InitialBalance) // 180 - 176 - 6

	b = computeBalance(170, 0)
	assert.Equal(t, "00:00", b.MonthlyCredits)
	assert.Equal(t, "06:00", b.MonthlyDebits)
	assert.Equal(t, "-06:00", b.InitialBalance)
}

func TestComputeBalance_CreditsAndDebitsNeverBothPositive(t *testing.T) {
	for _, total := range []float64{0, 100, 175.5, 176, 176.25, 240} {
		b := computeBalance(total, 0)
		creditsPositive := b.MonthlyCredits != "00:00"
		debitsPositive := b.MonthlyDebits != "00:00"
		assert.False(t, creditsPositive && debitsPositive,
			fmt.Sprintf("credits and debits both positive for total %.2f", total))
	}
}

func TestFormatHours(t *testing.T) {
	cases := []struct {
		input float64
		want  string
	}{
		{0, "00:00"},
		{8, "08:00"},
		{-1.5, "-01:30"},
		{-0.25, "-00:15"},
		{7.75, "07:45"},
		{26.5, "26:30"},
	}
	for _, c := range cases {
		got := FormatHours(c.input)
		if got != c.want {
			t.Errorf("FormatHours(%v) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestPeriodBounds(t *testing.T) {
	from, to := periodBounds(2, 2024, time.UTC)
	assert.Equal(t, "2024-02-01T00:00:00Z", from.Format(time.RFC3339))
	assert.Equal(t, "2024-02-29T23:59:59Z", to.Format(time.RFC3339))

	from, to = periodBounds(12, 2023, time.UTC)
	assert.Equal(t, "2023-12-01T00:00:00Z", from.Format(time.RFC3339))
	assert.Equal(t, "2023-12-31T23:59:59Z", to.Format(time.RFC3339))
}

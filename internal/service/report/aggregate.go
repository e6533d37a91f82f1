package report

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pontohr/backend-go/internal/domain/report"
	"github.com/pontohr/backend-go/internal/domain/timetracking"
)

const (
	// StandardDayHours is the contracted working time of one day.
	StandardDayHours = 8.0

	// StandardWorkingDays is the number of working days a month is expected
	// to have when computing the monthly hour balance.
	StandardWorkingDays = 22

	// ExcessiveDayHours is the threshold above which a day is flagged.
	ExcessiveDayHours = 12.0
)

const civilDateLayout = "2006-01-02"

// civilDate derives the calendar date of an instant in the report timezone.
// Bucketing is always done against one fixed location, never the ambient
// locale of the process.
func civilDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(civilDateLayout)
}

// buildWorkDay pairs the day's punch events positionally: event 0 with
// event 1, event 2 with event 3, and so on. The declared in/out kind is
// ignored; sequential punches are treated as interval boundaries, which
// tolerates duplicate-kind and out-of-order clock data. Negative pair
// durations are added as-is, not clamped.
//
// The second return value reports whether the day ended with an unpaired
// event; that event contributes no duration.
func buildWorkDay(date string, events []timetracking.PunchEvent) (report.WorkDay, bool) {
	day := report.WorkDay{
		Date:    date,
		Punches: make([]report.Punch, 0, len(events)),
	}

	for _, e := range events {
		day.Punches = append(day.Punches, report.Punch{
			Kind:      string(e.Kind),
			Timestamp: e.Timestamp,
		})
	}

	for i := 0; i+1 < len(events); i += 2 {
		duration := events[i+1].Timestamp.Sub(events[i].Timestamp)
		day.TotalHours += duration.Hours()
	}

	day.OvertimeHours = math.Max(day.TotalHours-StandardDayHours, 0)

	incomplete := len(events)%2 != 0
	return day, incomplete
}

// employeeAggregate carries one employee's folded month plus the two warning
// sets. Incomplete-entry warnings are produced while days are built; the
// excessive-hours pass runs after all daily totals are known. The report
// concatenates them in that order, which is an observable output.
type employeeAggregate struct {
	Report             report.EmployeeMonthlyReport
	IncompleteWarnings []string
	ExcessiveWarnings  []string
}

// aggregateMonth folds one employee's punch events into a monthly report.
// Events must already be sorted ascending by timestamp.
func aggregateMonth(employeeID, employeeName, position, department string, events []timetracking.PunchEvent, loc *time.Location) employeeAggregate {
	buckets := make(map[string][]timetracking.PunchEvent)
	var dates []string
	for _, e := range events {
		date := civilDate(e.Timestamp, loc)
		if _, seen := buckets[date]; !seen {
			dates = append(dates, date)
		}
		buckets[date] = append(buckets[date], e)
	}
	sort.Strings(dates)

	agg := employeeAggregate{
		Report: report.EmployeeMonthlyReport{
			EmployeeID:   employeeID,
			EmployeeName: employeeName,
			Position:     position,
			Department:   department,
			Days:         make([]report.WorkDay, 0, len(dates)),
		},
	}

	for _, date := range dates {
		day, incomplete := buildWorkDay(date, buckets[date])
		if incomplete {
			agg.IncompleteWarnings = append(agg.IncompleteWarnings,
				fmt.Sprintf("incomplete entry on day %s for %s", date, employeeName))
		}

		agg.Report.Days = append(agg.Report.Days, day)
		agg.Report.TotalHours += day.TotalHours
		agg.Report.TotalOvertime += day.OvertimeHours
	}

	// Second pass, once every daily total is known.
	for _, day := range agg.Report.Days {
		if day.TotalHours > ExcessiveDayHours {
			agg.ExcessiveWarnings = append(agg.ExcessiveWarnings,
				fmt.Sprintf("excessive hours (%.2fh) on day %s for %s", day.TotalHours, day.Date, employeeName))
		}
	}

	agg.Report.Warnings = append(append([]string{}, agg.IncompleteWarnings...), agg.ExcessiveWarnings...)
	agg.Report.Balance = computeBalance(agg.Report.TotalHours, agg.Report.TotalOvertime)

	return agg
}

// computeBalance derives the monthly hour bank from the folded totals.
func computeBalance(totalHours, totalOvertime float64) report.MonthlyBalance {
	expected := StandardDayHours * StandardWorkingDays

	return report.MonthlyBalance{
		InitialBalance:  FormatHours(totalHours - expected - totalOvertime),
		OvertimeBalance: FormatHours(totalOvertime),
		MonthlyCredits:  FormatHours(math.Max(totalHours-expected, 0)),
		MonthlyDebits:   FormatHours(math.Max(expected-totalHours, 0)),
	}
}

// FormatHours renders a signed fractional-hour quantity as zero-padded
// HH:MM, independent of locale. FormatHours(0) == "00:00" and
// FormatHours(-1.5) == "-01:30".
func FormatHours(h float64) string {
	sign := ""
	if h < 0 {
		sign = "-"
		h = -h
	}
	hh := int(math.Floor(h))
	mm := int(math.Floor((h - float64(hh)) * 60))
	return fmt.Sprintf("%s%02d:%02d", sign, hh, mm)
}

// periodBounds returns the inclusive instant range of the month in loc:
// the first instant of day 1 through 23:59:59 of the last day.
func periodBounds(month, year int, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

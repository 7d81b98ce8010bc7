package timesheet

import (
	"github.com/gmt-app/puantaj-backend-go/internal/domain/timesheet"
)

// DefaultToleranceMinutes is the band around the expected duration within
// which a worked day is displayed as on target.
const DefaultToleranceMinutes = 30

// AggregatePeriod rolls an ordered day sequence for one person up into
// period totals. Holiday, weekly-rest and leave days contribute to neither
// side of the totals; the totals themselves use exact differences, not the
// tolerance-banded day classification.
func AggregatePeriod(days []timesheet.DayStatus) timesheet.PeriodSummary {
	var summary timesheet.PeriodSummary
	if len(days) == 0 {
		return summary
	}

	summary.PersonID = days[0].PersonID
	summary.PeriodStart = days[0].Date
	summary.PeriodEnd = days[len(days)-1].Date

	for _, day := range days {
		if day.Kind.OffDuty() {
			continue
		}

		summary.TotalExpectedMinutes += day.ExpectedMinutes
		if day.WorkedMinutes != nil {
			summary.TotalWorkedMinutes += *day.WorkedMinutes
		}
		if day.CheckIn != nil {
			summary.DaysPresent++
		}
	}

	if summary.TotalWorkedMinutes > summary.TotalExpectedMinutes {
		summary.OvertimeMinutes = summary.TotalWorkedMinutes - summary.TotalExpectedMinutes
	} else {
		summary.ShortfallMinutes = summary.TotalExpectedMinutes - summary.TotalWorkedMinutes
	}

	return summary
}

// ClassifyDay is the display-level verdict for one worked day. Days within
// the tolerance band of the expected duration are on target.
func ClassifyDay(workedMinutes, expectedMinutes, toleranceMinutes int) timesheet.DayClassification {
	switch {
	case workedMinutes < expectedMinutes-toleranceMinutes:
		return timesheet.ClassShort
	case workedMinutes > expectedMinutes+toleranceMinutes:
		return timesheet.ClassOver
	default:
		return timesheet.ClassOnTarget
	}
}

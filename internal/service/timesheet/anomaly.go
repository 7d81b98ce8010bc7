package timesheet

import (
	"github.com/gmt-app/puantaj-backend-go/internal/domain/timesheet"
)

// DetectAnomalies extracts the period anomaly list from a resolved day
// sequence. Anomalies are informational; they never block aggregation.
func DetectAnomalies(days []timesheet.DayStatus) []timesheet.Anomaly {
	var anomalies []timesheet.Anomaly

	for _, day := range days {
		if day.HasAnomaly(timesheet.AnomalyMissingCheckout) {
			anomalies = append(anomalies, timesheet.Anomaly{
				Kind:        timesheet.AnomalyMissingCheckout,
				PersonID:    day.PersonID,
				Date:        day.Date,
				CheckInTime: day.CheckIn,
			})
		}

		switch {
		case day.HasAnomaly(timesheet.AnomalyUnexplainedAbsence):
			anomalies = append(anomalies, timesheet.Anomaly{
				Kind:     timesheet.AnomalyUnexplainedAbsence,
				PersonID: day.PersonID,
				Date:     day.Date,
				Reason:   timesheet.AbsenceNoRecord,
			})
		case day.HasAnomaly(timesheet.AnomalyUndefinedShift) && day.CheckIn == nil && day.CheckOut == nil:
			// Absent with no usable shift definition: reported as an
			// unexplained absence whose reason points at the shift.
			anomalies = append(anomalies, timesheet.Anomaly{
				Kind:     timesheet.AnomalyUnexplainedAbsence,
				PersonID: day.PersonID,
				Date:     day.Date,
				Reason:   timesheet.AbsenceUndefinedShift,
			})
		}
	}

	return anomalies
}

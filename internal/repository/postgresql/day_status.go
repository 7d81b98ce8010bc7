package postgresql

import (
	"context"
	"fmt"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/timesheet"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/database"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
	"github.com/jackc/pgx/v5"
)

type dayStatusRepository struct {
	db *database.DB
}

// ReplaceForDate implements timesheet.DayStatusRepository. Delete and rewrite
// run in one transaction so a failed run never loses the previous snapshot or
// leaves a half-written day behind.
func (r *dayStatusRepository) ReplaceForDate(ctx context.Context, date dateutil.Date, statuses []timesheet.DayStatus) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM day_status_snapshots WHERE date = $1`, date.Time()); err != nil {
			return fmt.Errorf("failed to clear previous day status snapshots: %w", err)
		}

		query := `
			INSERT INTO day_status_snapshots (
				person_id, date, kind, leave_type, holiday_name,
				check_in, check_out, worked_minutes, expected_minutes, anomalies
			) VALUES (
				$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
			)
			ON CONFLICT (person_id, date) DO UPDATE SET
				kind = EXCLUDED.kind,
				leave_type = EXCLUDED.leave_type,
				holiday_name = EXCLUDED.holiday_name,
				check_in = EXCLUDED.check_in,
				check_out = EXCLUDED.check_out,
				worked_minutes = EXCLUDED.worked_minutes,
				expected_minutes = EXCLUDED.expected_minutes,
				anomalies = EXCLUDED.anomalies,
				snapshotted_at = NOW()
		`

		for _, s := range statuses {
			anomalies := make([]string, 0, len(s.Anomalies))
			for _, a := range s.Anomalies {
				anomalies = append(anomalies, string(a))
			}

			if _, err := tx.Exec(ctx, query,
				s.PersonID,
				s.Date.Time(),
				string(s.Kind),
				s.LeaveType,
				s.HolidayName,
				s.CheckIn,
				s.CheckOut,
				s.WorkedMinutes,
				s.ExpectedMinutes,
				anomalies,
			); err != nil {
				return fmt.Errorf("failed to insert day status snapshot: %w", err)
			}
		}

		return nil
	})
}

func NewDayStatusRepository(db *database.DB) timesheet.DayStatusRepository {
	return &dayStatusRepository{db: db}
}

package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/schedule"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/database"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
	"github.com/google/uuid"
)

type planRepository struct {
	db *database.DB
}

// Upsert implements schedule.PlanRepository. One entry per person-day; a
// second upsert for the same day replaces the first.
func (r *planRepository) Upsert(ctx context.Context, entry schedule.PlanEntry) (schedule.PlanEntry, error) {
	q := GetQuerier(ctx, r.db)

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	query := `
		INSERT INTO shift_plan_entries (
			id, person_id, date, shift_window, break_minutes, is_weekly_rest
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)
		ON CONFLICT (person_id, date) DO UPDATE SET
			shift_window = EXCLUDED.shift_window,
			break_minutes = EXCLUDED.break_minutes,
			is_weekly_rest = EXCLUDED.is_weekly_rest,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.ID,
		entry.PersonID,
		entry.Date.Time(),
		entry.Window,
		entry.BreakMinutes,
		entry.IsWeeklyRest,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)

	if err != nil {
		return schedule.PlanEntry{}, fmt.Errorf("failed to upsert shift plan entry: %w", err)
	}

	return entry, nil
}

// ListByRange implements schedule.PlanRepository.
func (r *planRepository) ListByRange(ctx context.Context, from, to dateutil.Date, personID string) ([]schedule.PlanEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, person_id, date, shift_window, break_minutes, is_weekly_rest,
			   created_at, updated_at
		FROM shift_plan_entries
		WHERE date >= $1
		  AND date <= $2
		  AND ($3 = '' OR person_id = $3)
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, from.Time(), to.Time(), personID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift plan entries: %w", err)
	}
	defer rows.Close()

	var entries []schedule.PlanEntry
	for rows.Next() {
		var e schedule.PlanEntry
		var date time.Time
		if err := rows.Scan(
			&e.ID, &e.PersonID, &date, &e.Window, &e.BreakMinutes, &e.IsWeeklyRest,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan shift plan entry: %w", err)
		}
		e.Date = dateutil.DateOf(date)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shift plan entries: %w", err)
	}

	return entries, nil
}

func NewPlanRepository(db *database.DB) schedule.PlanRepository {
	return &planRepository{db: db}
}

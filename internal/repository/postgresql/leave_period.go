package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/leave"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/database"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
	"github.com/google/uuid"
)

type leavePeriodRepository struct {
	db *database.DB
}

// Create implements leave.PeriodRepository.
func (r *leavePeriodRepository) Create(ctx context.Context, period leave.Period) (leave.Period, error) {
	q := GetQuerier(ctx, r.db)

	if period.ID == "" {
		period.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leave_periods (
			id, person_id, start_date, end_date, type, status, note
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		period.ID,
		period.PersonID,
		period.StartDate.Time(),
		period.EndDate.Time(),
		period.Type,
		string(period.Status),
		period.Note,
	).Scan(&period.CreatedAt, &period.UpdatedAt)

	if err != nil {
		return leave.Period{}, fmt.Errorf("failed to create leave period: %w", err)
	}

	return period, nil
}

// ListApprovedOverlapping implements leave.PeriodRepository.
func (r *leavePeriodRepository) ListApprovedOverlapping(ctx context.Context, from, to dateutil.Date) ([]leave.Period, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.person_id, l.start_date, l.end_date, l.type, l.status, l.note,
			   l.created_at, l.updated_at,
			   p.first_name || ' ' || p.last_name AS person_name
		FROM leave_periods l
		LEFT JOIN persons p ON p.id = l.person_id
		WHERE l.status = 'approved'
		  AND l.end_date >= $1
		  AND l.start_date <= $2
		ORDER BY l.start_date
	`

	rows, err := q.Query(ctx, query, from.Time(), to.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to list leave periods: %w", err)
	}
	defer rows.Close()

	var periods []leave.Period
	for rows.Next() {
		var p leave.Period
		var start, end time.Time
		var status string
		if err := rows.Scan(
			&p.ID, &p.PersonID, &start, &end, &p.Type, &status, &p.Note,
			&p.CreatedAt, &p.UpdatedAt,
			&p.PersonName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave period: %w", err)
		}
		p.StartDate = dateutil.DateOf(start)
		p.EndDate = dateutil.DateOf(end)
		p.Status = leave.PeriodStatus(status)
		periods = append(periods, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave periods: %w", err)
	}

	return periods, nil
}

func NewLeavePeriodRepository(db *database.DB) leave.PeriodRepository {
	return &leavePeriodRepository{db: db}
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/attendance"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/database"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type holidayOverrideRepository struct {
	db *database.DB
}

// Create implements attendance.HolidayOverrideRepository.
func (r *holidayOverrideRepository) Create(ctx context.Context, override attendance.HolidayOverride) (attendance.HolidayOverride, error) {
	q := GetQuerier(ctx, r.db)

	if override.ID == "" {
		override.ID = uuid.New().String()
	}

	query := `
		INSERT INTO holiday_overrides (id, person_id, date)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, override.ID, override.PersonID, override.Date.Time()).
		Scan(&override.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.HolidayOverride{}, attendance.ErrOverrideExists
		}
		return attendance.HolidayOverride{}, fmt.Errorf("failed to create holiday override: %w", err)
	}

	return override, nil
}

// Delete implements attendance.HolidayOverrideRepository.
func (r *holidayOverrideRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM holiday_overrides WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete holiday override: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrOverrideNotFound
	}

	return nil
}

// ListByRange implements attendance.HolidayOverrideRepository.
func (r *holidayOverrideRepository) ListByRange(ctx context.Context, from, to dateutil.Date) ([]attendance.HolidayOverride, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, person_id, date, created_at
		FROM holiday_overrides
		WHERE date >= $1 AND date <= $2
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, from.Time(), to.Time())
	if err != nil {
		return nil, fmt.Errorf("failed to list holiday overrides: %w", err)
	}
	defer rows.Close()

	var overrides []attendance.HolidayOverride
	for rows.Next() {
		var o attendance.HolidayOverride
		var date time.Time
		if err := rows.Scan(&o.ID, &o.PersonID, &date, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday override: %w", err)
		}
		o.Date = dateutil.DateOf(date)
		overrides = append(overrides, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holiday overrides: %w", err)
	}

	return overrides, nil
}

func NewHolidayOverrideRepository(db *database.DB) attendance.HolidayOverrideRepository {
	return &holidayOverrideRepository{db: db}
}

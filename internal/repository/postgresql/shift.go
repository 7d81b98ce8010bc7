package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/schedule"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type shiftRepository struct {
	db *database.DB
}

// GetDefault implements schedule.ShiftRepository.
func (r *shiftRepository) GetDefault(ctx context.Context, personID string) (schedule.ShiftDefinition, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT person_id, shift_window, break_minutes
		FROM shift_definitions
		WHERE person_id = $1
	`

	var shift schedule.ShiftDefinition
	err := q.QueryRow(ctx, query, personID).Scan(
		&shift.PersonID, &shift.Window, &shift.BreakMinutes,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.ShiftDefinition{}, schedule.ErrShiftNotFound
		}
		return schedule.ShiftDefinition{}, fmt.Errorf("failed to get shift definition: %w", err)
	}

	return shift, nil
}

// Upsert implements schedule.ShiftRepository.
func (r *shiftRepository) Upsert(ctx context.Context, shift schedule.ShiftDefinition) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO shift_definitions (person_id, shift_window, break_minutes)
		VALUES ($1, $2, $3)
		ON CONFLICT (person_id) DO UPDATE SET
			shift_window = EXCLUDED.shift_window,
			break_minutes = EXCLUDED.break_minutes
	`

	if _, err := q.Exec(ctx, query, shift.PersonID, shift.Window, shift.BreakMinutes); err != nil {
		return fmt.Errorf("failed to upsert shift definition: %w", err)
	}

	return nil
}

func NewShiftRepository(db *database.DB) schedule.ShiftRepository {
	return &shiftRepository{db: db}
}

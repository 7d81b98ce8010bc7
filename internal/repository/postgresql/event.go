package postgresql

import (
	"context"
	"fmt"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/attendance"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/database"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
	"github.com/google/uuid"
)

type eventRepository struct {
	db *database.DB
}

// Create implements attendance.EventRepository.
func (r *eventRepository) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	if event.ID == "" {
		event.ID = uuid.New().String()
	}

	query := `
		INSERT INTO attendance_events (
			id, person_id, ts, kind, manual, distance_meters, excuse_note
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		event.ID,
		event.PersonID,
		event.Timestamp,
		string(event.Kind),
		event.Manual,
		event.DistanceMeters,
		event.ExcuseNote,
	).Scan(&event.CreatedAt)

	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	return event, nil
}

// ListByRange implements attendance.EventRepository.
func (r *eventRepository) ListByRange(ctx context.Context, from, to dateutil.Date, personID string) ([]attendance.Event, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.person_id, e.ts, e.kind, e.manual, e.distance_meters, e.excuse_note,
			   e.created_at,
			   p.first_name || ' ' || p.last_name AS person_name
		FROM attendance_events e
		LEFT JOIN persons p ON p.id = e.person_id
		WHERE e.ts >= $1
		  AND e.ts < $2
		  AND ($3 = '' OR e.person_id = $3)
		ORDER BY e.ts
	`

	rows, err := q.Query(ctx, query, from.Time(), to.AddDays(1).Time(), personID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		var e attendance.Event
		var kind string
		if err := rows.Scan(
			&e.ID, &e.PersonID, &e.Timestamp, &kind, &e.Manual, &e.DistanceMeters, &e.ExcuseNote,
			&e.CreatedAt,
			&e.PersonName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance event: %w", err)
		}
		e.Kind = attendance.EventKind(kind)
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance events: %w", err)
	}

	return events, nil
}

func NewEventRepository(db *database.DB) attendance.EventRepository {
	return &eventRepository{db: db}
}

package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gmt-app/puantaj-backend-go/internal/domain/person"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/database"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/dateutil"
	"github.com/jackc/pgx/v5"
)

type personRepository struct {
	db *database.DB
}

// GetByID implements person.PersonRepository.
func (r *personRepository) GetByID(ctx context.Context, id string) (person.Person, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, first_name, last_name, registration_no, birth_date, group_tags, active,
			   created_at, updated_at
		FROM persons
		WHERE id = $1
	`

	var p person.Person
	var birthDate *time.Time
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.RegistrationNo, &birthDate, &p.GroupTags, &p.Active,
		&p.CreatedAt, &p.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return person.Person{}, person.ErrPersonNotFound
		}
		return person.Person{}, fmt.Errorf("failed to get person: %w", err)
	}

	if birthDate != nil {
		d := dateutil.DateOf(*birthDate)
		p.BirthDate = &d
	}

	return p, nil
}

// ListActive implements person.PersonRepository.
func (r *personRepository) ListActive(ctx context.Context) ([]person.Person, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, first_name, last_name, registration_no, birth_date, group_tags, active,
			   created_at, updated_at
		FROM persons
		WHERE active = TRUE
		ORDER BY first_name, last_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list persons: %w", err)
	}
	defer rows.Close()

	var persons []person.Person
	for rows.Next() {
		var p person.Person
		var birthDate *time.Time
		if err := rows.Scan(
			&p.ID, &p.FirstName, &p.LastName, &p.RegistrationNo, &birthDate, &p.GroupTags, &p.Active,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		if birthDate != nil {
			d := dateutil.DateOf(*birthDate)
			p.BirthDate = &d
		}
		persons = append(persons, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate persons: %w", err)
	}

	return persons, nil
}

func NewPersonRepository(db *database.DB) person.PersonRepository {
	return &personRepository{db: db}
}

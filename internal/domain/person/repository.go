package person

import "context"

type PersonRepository interface {
	GetByID(ctx context.Context, id string) (Person, error)

	// ListActive retrieves all active persons ordered by name.
	ListActive(ctx context.Context) ([]Person, error)
}

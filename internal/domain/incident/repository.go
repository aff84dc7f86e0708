package incident

import "context"

// Repository is the persistence port for incidents. List returns rows in
// creation order. Delete takes the surrogate key, never a row position.
type Repository interface {
	Create(ctx context.Context, inc *Incident) error
	GetByID(ctx context.Context, id uint) (*Incident, error)
	List(ctx context.Context) ([]*Incident, error)
	Update(ctx context.Context, inc *Incident) error
	Delete(ctx context.Context, id uint) error
}

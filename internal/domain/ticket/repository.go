package ticket

import "context"

// Repository is the persistence port for tickets. List returns rows in
// creation order. Delete takes the surrogate key, never a row position.
type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	GetByID(ctx context.Context, id uint) (*Ticket, error)
	List(ctx context.Context) ([]*Ticket, error)
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, id uint) error
}

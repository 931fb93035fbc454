package position

import "context"

type PositionRepository interface {
	Create(ctx context.Context, p Position) (Position, error)
	GetByID(ctx context.Context, id string) (Position, error)
	Update(ctx context.Context, p Position) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Position, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
}

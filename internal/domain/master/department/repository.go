package department

import "context"

type DepartmentRepository interface {
	Create(ctx context.Context, d Department) (Department, error)
	GetByID(ctx context.Context, id string) (Department, error)
	Update(ctx context.Context, d Department) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Department, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
}

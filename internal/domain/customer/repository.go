package customer

import "context"

type CustomerRepository interface {
	Create(ctx context.Context, c Customer) (Customer, error)
	GetByID(ctx context.Context, id string) (Customer, error)
	Update(ctx context.Context, c Customer) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListCustomersFilter) ([]Customer, int64, error)

	CodeExists(ctx context.Context, code string, excludeID string) (bool, error)
	EmailExists(ctx context.Context, email string, excludeID string) (bool, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

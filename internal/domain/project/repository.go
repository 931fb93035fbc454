package project

import "context"

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	Update(ctx context.Context, p Project) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListProjectsFilter) ([]Project, int64, error)

	CodeExists(ctx context.Context, code string, excludeID string) (bool, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

package project

import "context"

type Service interface {
	Create(ctx context.Context, req CreateProjectRequest) (ProjectResponse, error)
	Update(ctx context.Context, req UpdateProjectRequest) (ProjectResponse, error)
	Get(ctx context.Context, id string) (ProjectResponse, error)
	List(ctx context.Context, filter ListProjectsFilter) (ListProjectsResponse, error)
	Delete(ctx context.Context, id string) error
}

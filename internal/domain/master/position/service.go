package position

import "context"

type Service interface {
	CreatePosition(ctx context.Context, req CreatePositionRequest) (PositionResponse, error)
	UpdatePosition(ctx context.Context, req UpdatePositionRequest) (PositionResponse, error)
	GetPosition(ctx context.Context, id string) (PositionResponse, error)
	ListPositions(ctx context.Context) ([]PositionResponse, error)
	DeletePosition(ctx context.Context, id string) error
}

package document

import "context"

type DocumentRepository interface {
	Create(ctx context.Context, d Document) (Document, error)
	GetByID(ctx context.Context, id string) (Document, error)
	Update(ctx context.Context, d Document) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListDocumentsFilter) ([]Document, int64, error)

	CodeExists(ctx context.Context, code string, excludeID string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

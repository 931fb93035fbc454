package document

import "context"

type Service interface {
	Create(ctx context.Context, req CreateDocumentRequest) (DocumentResponse, error)
	Update(ctx context.Context, req UpdateDocumentRequest) (DocumentResponse, error)
	Get(ctx context.Context, id string) (DocumentResponse, error)
	List(ctx context.Context, filter ListDocumentsFilter) (ListDocumentsResponse, error)
	Delete(ctx context.Context, id string) error
}

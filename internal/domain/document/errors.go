package document

import "errors"

var (
	ErrDocumentNotFound  = errors.New("document not found")
	ErrDocumentCodeTaken = errors.New("document code already exists")
)

package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/document"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
)

type DocumentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService document.Service
}

func NewDocumentHandler(documentService document.Service) DocumentHandler {
	return &documentHandlerImpl{
		documentService: documentService,
	}
}

// Create implements DocumentHandler.
func (h *documentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req document.CreateDocumentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create document request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.documentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document created successfully", result)
}

// Update implements DocumentHandler.
func (h *documentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req document.UpdateDocumentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode update document request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.documentService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document updated successfully", result)
}

// Get implements DocumentHandler.
func (h *documentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.documentService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements DocumentHandler.
func (h *documentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := document.ListDocumentsFilter{
		Page:  parseIntParam(r, "page", 1),
		Limit: parseIntParam(r, "limit", 20),
	}

	if docType := r.URL.Query().Get("doc_type"); docType != "" {
		filter.DocType = &docType
	}

	if employeeID := r.URL.Query().Get("employee_id"); employeeID != "" {
		filter.EmployeeID = &employeeID
	}

	results, err := h.documentService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results.Documents, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: results.TotalItems,
		TotalPages: totalPages(results.TotalItems, filter.Limit),
	})
}

// Delete implements DocumentHandler.
func (h *documentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.documentService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document deleted successfully", nil)
}

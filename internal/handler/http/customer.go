package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/customer"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
)

type CustomerHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ValidateImport(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type customerHandlerImpl struct {
	customerService customer.Service
}

func NewCustomerHandler(customerService customer.Service) CustomerHandler {
	return &customerHandlerImpl{
		customerService: customerService,
	}
}

// Create implements CustomerHandler.
func (h *customerHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req customer.CreateCustomerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create customer request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.customerService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Customer created successfully", result)
}

// Update implements CustomerHandler.
func (h *customerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req customer.UpdateCustomerRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode update customer request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.customerService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Customer updated successfully", result)
}

// Get implements CustomerHandler.
func (h *customerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.customerService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements CustomerHandler.
func (h *customerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := customer.ListCustomersFilter{
		Search: r.URL.Query().Get("search"),
		Page:   parseIntParam(r, "page", 1),
		Limit:  parseIntParam(r, "limit", 20),
	}

	results, err := h.customerService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results.Customers, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: results.TotalItems,
		TotalPages: totalPages(results.TotalItems, filter.Limit),
	})
}

// Delete implements CustomerHandler.
func (h *customerHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.customerService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Customer deleted successfully", nil)
}

type importCustomersRequest struct {
	Rows []customer.CreateCustomerRequest `json:"rows"`
}

// ValidateImport implements CustomerHandler.
func (h *customerHandlerImpl) ValidateImport(w http.ResponseWriter, r *http.Request) {
	var req importCustomersRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode customer import validation request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.customerService.ValidateImportData(r.Context(), req.Rows)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Import implements CustomerHandler.
func (h *customerHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var req importCustomersRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode customer import request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.customerService.ImportCustomers(r.Context(), req.Rows)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Import completed", result)
}

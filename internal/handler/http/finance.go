package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/finance"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
)

type FinanceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	ApproveBatch(w http.ResponseWriter, r *http.Request)
	RejectBatch(w http.ResponseWriter, r *http.Request)
	ValidateImport(w http.ResponseWriter, r *http.Request)
	Import(w http.ResponseWriter, r *http.Request)
}

type financeHandlerImpl struct {
	financeService finance.Service
}

func NewFinanceHandler(financeService finance.Service) FinanceHandler {
	return &financeHandlerImpl{
		financeService: financeService,
	}
}

func userIDFromClaims(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	userID, _ := claims["user_id"].(string)
	return userID
}

// Create implements FinanceHandler.
func (h *financeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req finance.CreateTransactionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode create transaction request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.financeService.Create(r.Context(), req, userIDFromClaims(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Transaction created successfully", result)
}

// Update implements FinanceHandler.
func (h *financeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req finance.UpdateTransactionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode update transaction request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.financeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transaction updated successfully", result)
}

// Get implements FinanceHandler.
func (h *financeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.financeService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements FinanceHandler.
func (h *financeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := finance.ListTransactionsFilter{}

	if typ := r.URL.Query().Get("type"); typ != "" {
		t := finance.Type(typ)
		filter.Type = &t
	}

	if category := r.URL.Query().Get("category"); category != "" {
		filter.Category = &category
	}

	if status := r.URL.Query().Get("status"); status != "" {
		s := finance.Status(status)
		filter.Status = &s
	}

	if projectID := r.URL.Query().Get("project_id"); projectID != "" {
		filter.ProjectID = &projectID
	}

	if from := r.URL.Query().Get("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			response.BadRequest(w, "Parameter 'from' must be a YYYY-MM-DD date", nil)
			return
		}
		filter.From = &t
	}

	if to := r.URL.Query().Get("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			response.BadRequest(w, "Parameter 'to' must be a YYYY-MM-DD date", nil)
			return
		}
		filter.To = &t
	}

	filter.Page = parseIntParam(r, "page", 1)
	filter.Limit = parseIntParam(r, "limit", 20)

	results, err := h.financeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results.Transactions, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: results.TotalItems,
		TotalPages: totalPages(results.TotalItems, filter.Limit),
	})
}

// Delete implements FinanceHandler.
func (h *financeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.financeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transaction deleted successfully", nil)
}

// Approve implements FinanceHandler.
func (h *financeHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.financeService.Approve(r.Context(), id, userIDFromClaims(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transaction approved successfully", result)
}

// Cancel implements FinanceHandler.
func (h *financeHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.financeService.Cancel(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transaction cancelled", result)
}

// Reject implements FinanceHandler.
func (h *financeHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode reject transaction request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.financeService.Reject(r.Context(), id, req.Reason, userIDFromClaims(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transaction rejected", result)
}

// SetStatus implements FinanceHandler.
func (h *financeHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req finance.SetStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode set status request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.financeService.SetStatus(r.Context(), req, userIDFromClaims(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transaction status updated", result)
}

type batchIDsRequest struct {
	IDs    []string `json:"ids"`
	Reason string   `json:"reason,omitempty"`
}

// ApproveBatch implements FinanceHandler.
func (h *financeHandlerImpl) ApproveBatch(w http.ResponseWriter, r *http.Request) {
	var req batchIDsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode batch approve request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if len(req.IDs) == 0 {
		response.BadRequest(w, "Field 'ids' must not be empty", nil)
		return
	}

	result := h.financeService.ApproveMany(r.Context(), req.IDs, userIDFromClaims(r))
	response.Success(w, result)
}

// RejectBatch implements FinanceHandler.
func (h *financeHandlerImpl) RejectBatch(w http.ResponseWriter, r *http.Request) {
	var req batchIDsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode batch reject request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if len(req.IDs) == 0 {
		response.BadRequest(w, "Field 'ids' must not be empty", nil)
		return
	}

	result := h.financeService.RejectMany(r.Context(), req.IDs, req.Reason, userIDFromClaims(r))
	response.Success(w, result)
}

type importTransactionsRequest struct {
	Rows []finance.CreateTransactionRequest `json:"rows"`
}

// ValidateImport implements FinanceHandler.
func (h *financeHandlerImpl) ValidateImport(w http.ResponseWriter, r *http.Request) {
	var req importTransactionsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode import validation request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.financeService.ValidateImportData(r.Context(), req.Rows, userIDFromClaims(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Import implements FinanceHandler.
func (h *financeHandlerImpl) Import(w http.ResponseWriter, r *http.Request) {
	var req importTransactionsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode import request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.financeService.ImportBatch(r.Context(), req.Rows, userIDFromClaims(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Import completed", result)
}

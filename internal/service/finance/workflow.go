package finance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/finance"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/validator"
)

// Approve implements finance.Service.
func (s *FinanceServiceImpl) Approve(ctx context.Context, id string, approverID string) (finance.TransactionResponse, error) {
	tx, err := s.TransactionRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, finance.ErrTransactionNotFound) {
			return finance.TransactionResponse{}, finance.ErrTransactionNotFound
		}
		return finance.TransactionResponse{}, fmt.Errorf("failed to get transaction: %w", err)
	}

	if tx.Status != finance.StatusPendingApproval {
		return finance.TransactionResponse{}, finance.ErrNotPendingApproval
	}

	now := s.now()
	tx.Status = finance.StatusApproved
	tx.ApprovedBy = &approverID
	tx.ApprovedAt = &now

	if err := s.TransactionRepository.UpdateStatus(ctx, tx); err != nil {
		return finance.TransactionResponse{}, fmt.Errorf("failed to update transaction status: %w", err)
	}
	return finance.NewTransactionResponse(tx), nil
}

// Reject implements finance.Service.
func (s *FinanceServiceImpl) Reject(ctx context.Context, id string, reason string, approverID string) (finance.TransactionResponse, error) {
	if strings.TrimSpace(reason) == "" {
		return finance.TransactionResponse{}, finance.ErrRejectReasonMissing
	}

	tx, err := s.TransactionRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, finance.ErrTransactionNotFound) {
			return finance.TransactionResponse{}, finance.ErrTransactionNotFound
		}
		return finance.TransactionResponse{}, fmt.Errorf("failed to get transaction: %w", err)
	}

	if !finance.CanTransition(tx.Status, finance.StatusRejected) {
		return finance.TransactionResponse{}, finance.ErrIllegalTransition
	}

	now := s.now()
	tx.Status = finance.StatusRejected
	tx.RejectReason = &reason
	tx.ApprovedBy = &approverID
	tx.ApprovedAt = &now

	if err := s.TransactionRepository.UpdateStatus(ctx, tx); err != nil {
		return finance.TransactionResponse{}, fmt.Errorf("failed to update transaction status: %w", err)
	}
	return finance.NewTransactionResponse(tx), nil
}

// Cancel implements finance.Service.
func (s *FinanceServiceImpl) Cancel(ctx context.Context, id string) (finance.TransactionResponse, error) {
	tx, err := s.TransactionRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, finance.ErrTransactionNotFound) {
			return finance.TransactionResponse{}, finance.ErrTransactionNotFound
		}
		return finance.TransactionResponse{}, fmt.Errorf("failed to get transaction: %w", err)
	}

	if !finance.CanTransition(tx.Status, finance.StatusCancelled) {
		return finance.TransactionResponse{}, finance.ErrIllegalTransition
	}

	tx.Status = finance.StatusCancelled
	if err := s.TransactionRepository.UpdateStatus(ctx, tx); err != nil {
		return finance.TransactionResponse{}, fmt.Errorf("failed to update transaction status: %w", err)
	}
	return finance.NewTransactionResponse(tx), nil
}

// SetStatus implements finance.Service: a generic transition guarded
// by the adjacency table.
func (s *FinanceServiceImpl) SetStatus(ctx context.Context, req finance.SetStatusRequest, actorID string) (finance.TransactionResponse, error) {
	if !finance.IsValidStatus(req.Status) {
		return finance.TransactionResponse{}, validator.ValidationErrors{{
			Field: "status", Message: "status is not a recognized value",
		}}
	}

	tx, err := s.TransactionRepository.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, finance.ErrTransactionNotFound) {
			return finance.TransactionResponse{}, finance.ErrTransactionNotFound
		}
		return finance.TransactionResponse{}, fmt.Errorf("failed to get transaction: %w", err)
	}

	if !finance.CanTransition(tx.Status, req.Status) {
		return finance.TransactionResponse{}, finance.ErrIllegalTransition
	}

	tx.Status = req.Status
	if req.Status == finance.StatusApproved {
		now := s.now()
		tx.ApprovedBy = &actorID
		tx.ApprovedAt = &now
	}

	if err := s.TransactionRepository.UpdateStatus(ctx, tx); err != nil {
		return finance.TransactionResponse{}, fmt.Errorf("failed to update transaction status: %w", err)
	}
	return finance.NewTransactionResponse(tx), nil
}

// ApproveMany implements finance.Service. Each id is applied
// independently; failures accumulate instead of aborting the batch.
func (s *FinanceServiceImpl) ApproveMany(ctx context.Context, ids []string, approverID string) finance.BatchResult {
	result := finance.BatchResult{}
	for _, id := range ids {
		if _, err := s.Approve(ctx, id, approverID); err != nil {
			result.ErrorCount++
			result.Errors = append(result.Errors, finance.BatchError{ID: id, Message: err.Error()})
			continue
		}
		result.SuccessCount++
	}
	return result
}

// RejectMany implements finance.Service.
func (s *FinanceServiceImpl) RejectMany(ctx context.Context, ids []string, reason string, approverID string) finance.BatchResult {
	result := finance.BatchResult{}
	for _, id := range ids {
		if _, err := s.Reject(ctx, id, reason, approverID); err != nil {
			result.ErrorCount++
			result.Errors = append(result.Errors, finance.BatchError{ID: id, Message: err.Error()})
			continue
		}
		result.SuccessCount++
	}
	return result
}

// ValidateImportData implements finance.Service: every row is checked
// and all violations come back with 1-indexed row numbers. Nothing is
// persisted. Codes are checked against the store and against earlier
// rows in the same batch. A store failure aborts the pass; a row must
// never report as valid on an unverified lookup.
func (s *FinanceServiceImpl) ValidateImportData(ctx context.Context, rows []finance.CreateTransactionRequest, recordedBy string) (finance.BatchResult, error) {
	result := finance.BatchResult{}
	seenCodes := make(map[string]int)

	for i, row := range rows {
		rowNumber := i + 1
		tx := row.ToTransaction(recordedBy)

		errs := validator.All(finance.Rules(&tx, s.catalog, s.now())...)
		for _, e := range errs {
			result.Errors = append(result.Errors, finance.BatchError{
				RowNumber: rowNumber,
				Message:   e.Field + ": " + e.Message,
			})
		}

		rowFailed := len(errs) > 0

		if tx.Code != "" {
			if firstRow, dup := seenCodes[tx.Code]; dup {
				result.Errors = append(result.Errors, finance.BatchError{
					RowNumber: rowNumber,
					Message:   fmt.Sprintf("code: duplicates row %d in this import", firstRow),
				})
				rowFailed = true
			} else {
				seenCodes[tx.Code] = rowNumber
				taken, err := s.TransactionRepository.CodeExists(ctx, tx.Code, "")
				if err != nil {
					return finance.BatchResult{}, fmt.Errorf("failed to check code uniqueness for row %d: %w", rowNumber, err)
				}
				if taken {
					result.Errors = append(result.Errors, finance.BatchError{
						RowNumber: rowNumber,
						Message:   "code: transaction code already exists",
					})
					rowFailed = true
				}
			}
		}

		if err := s.checkRelations(ctx, &tx); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				return finance.BatchResult{}, fmt.Errorf("failed to check relations for row %d: %w", rowNumber, err)
			}
			for _, e := range verrs {
				result.Errors = append(result.Errors, finance.BatchError{
					RowNumber: rowNumber,
					Message:   e.Field + ": " + e.Message,
				})
			}
			rowFailed = true
		}

		if rowFailed {
			result.ErrorCount++
		} else {
			result.SuccessCount++
		}
	}
	return result, nil
}

// ImportBatch implements finance.Service. The whole batch is validated
// first so a validation failure never leaves a partial import; only
// persistence failures during the insert phase are tolerated per row.
func (s *FinanceServiceImpl) ImportBatch(ctx context.Context, rows []finance.CreateTransactionRequest, recordedBy string) (finance.BatchResult, error) {
	validation, err := s.ValidateImportData(ctx, rows, recordedBy)
	if err != nil {
		return finance.BatchResult{}, err
	}
	if validation.ErrorCount > 0 {
		validation.SuccessCount = 0
		return validation, nil
	}

	result := finance.BatchResult{}
	for i, row := range rows {
		rowNumber := i + 1
		tx := row.ToTransaction(recordedBy)

		if tx.Code == "" {
			code, err := s.generateCode(ctx)
			if err != nil {
				result.ErrorCount++
				result.Errors = append(result.Errors, finance.BatchError{
					RowNumber: rowNumber,
					Message:   err.Error(),
				})
				continue
			}
			tx.Code = code
		}

		tx.ID = uuid.Must(uuid.NewV7()).String()
		if _, err := s.TransactionRepository.Create(ctx, tx); err != nil {
			result.ErrorCount++
			result.Errors = append(result.Errors, finance.BatchError{
				RowNumber: rowNumber,
				Message:   err.Error(),
			})
			continue
		}
		result.SuccessCount++
	}
	return result, nil
}

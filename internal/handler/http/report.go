package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/domain/report"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	EmployeeAttendance(w http.ResponseWriter, r *http.Request)
	FinanceSummary(w http.ResponseWriter, r *http.Request)
	ProjectBudgets(w http.ResponseWriter, r *http.Request)
	WorkforceSummary(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// EmployeeAttendance implements ReportHandler. Month and year default
// to the current period when omitted.
func (h *reportHandlerImpl) EmployeeAttendance(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	now := time.Now()
	req := report.PeriodRequest{
		Month: int(now.Month()),
		Year:  now.Year(),
	}

	if month := r.URL.Query().Get("month"); month != "" {
		m, err := strconv.Atoi(month)
		if err != nil {
			response.BadRequest(w, "Parameter 'month' must be a number", nil)
			return
		}
		req.Month = m
	}

	if year := r.URL.Query().Get("year"); year != "" {
		y, err := strconv.Atoi(year)
		if err != nil {
			response.BadRequest(w, "Parameter 'year' must be a number", nil)
			return
		}
		req.Year = y
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.EmployeeAttendance(r.Context(), employeeID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// FinanceSummary implements ReportHandler.
func (h *reportHandlerImpl) FinanceSummary(w http.ResponseWriter, r *http.Request) {
	req := report.YearRequest{Year: time.Now().Year()}

	if year := r.URL.Query().Get("year"); year != "" {
		y, err := strconv.Atoi(year)
		if err != nil {
			response.BadRequest(w, "Parameter 'year' must be a number", nil)
			return
		}
		req.Year = y
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.FinanceSummary(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ProjectBudgets implements ReportHandler.
func (h *reportHandlerImpl) ProjectBudgets(w http.ResponseWriter, r *http.Request) {
	results, err := h.reportService.ProjectBudgets(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// WorkforceSummary implements ReportHandler.
func (h *reportHandlerImpl) WorkforceSummary(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.WorkforceSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

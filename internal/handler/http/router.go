package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/middleware"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/jwt"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Auth       AuthHandler
	Attendance AttendanceHandler
	Finance    FinanceHandler
	Employee   EmployeeHandler
	Customer   CustomerHandler
	Master     MasterHandler
	Project    ProjectHandler
	Document   DocumentHandler
	Salary     SalaryHandler
	Report     ReportHandler
	File       FileHandler
}

func NewRouter(jwtService jwt.Service, h Handlers, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffdesk"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Admin only: account provisioning
			r.With(middleware.RequireAdmin).Post("/auth/register", h.Auth.Register)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", h.Attendance.CheckIn)
				r.Post("/check-out", h.Attendance.CheckOut)
				r.Get("/validate", h.Attendance.Validate)
				r.Get("/", h.Attendance.List)
				r.Get("/{id}", h.Attendance.Get)
				r.Post("/proof", h.File.UploadAttendanceProof)
			})

			r.Route("/finance/transactions", func(r chi.Router) {
				r.Get("/", h.Finance.List)
				r.Post("/", h.Finance.Create)
				r.Get("/{id}", h.Finance.Get)
				r.Put("/{id}", h.Finance.Update)
				r.Delete("/{id}", h.Finance.Delete)
				r.Post("/{id}/cancel", h.Finance.Cancel)

				r.Post("/import/validate", h.Finance.ValidateImport)
				r.Post("/import", h.Finance.Import)

				// Manager or admin: approval decisions
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/{id}/approve", h.Finance.Approve)
					r.Post("/{id}/reject", h.Finance.Reject)
					r.Put("/{id}/status", h.Finance.SetStatus)
					r.Post("/batch/approve", h.Finance.ApproveBatch)
					r.Post("/batch/reject", h.Finance.RejectBatch)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/customers", func(r chi.Router) {
				r.Get("/", h.Customer.List)
				r.Post("/", h.Customer.Create)
				r.Get("/{id}", h.Customer.Get)
				r.Put("/{id}", h.Customer.Update)
				r.Delete("/{id}", h.Customer.Delete)
				r.Post("/import/validate", h.Customer.ValidateImport)
				r.Post("/import", h.Customer.Import)
			})

			r.Route("/master", func(r chi.Router) {
				r.Route("/departments", func(r chi.Router) {
					r.Get("/", h.Master.ListDepartments)
					r.Get("/{id}", h.Master.GetDepartment)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireAdmin)
						r.Post("/", h.Master.CreateDepartment)
						r.Put("/{id}", h.Master.UpdateDepartment)
						r.Delete("/{id}", h.Master.DeleteDepartment)
					})
				})

				r.Route("/positions", func(r chi.Router) {
					r.Get("/", h.Master.ListPositions)
					r.Get("/{id}", h.Master.GetPosition)

					r.Group(func(r chi.Router) {
						r.Use(middleware.RequireAdmin)
						r.Post("/", h.Master.CreatePosition)
						r.Put("/{id}", h.Master.UpdatePosition)
						r.Delete("/{id}", h.Master.DeletePosition)
					})
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.Project.List)
				r.Post("/", h.Project.Create)
				r.Get("/{id}", h.Project.Get)
				r.Put("/{id}", h.Project.Update)
				r.Delete("/{id}", h.Project.Delete)
			})

			r.Route("/documents", func(r chi.Router) {
				r.Get("/", h.Document.List)
				r.Post("/", h.Document.Create)
				r.Get("/{id}", h.Document.Get)
				r.Put("/{id}", h.Document.Update)
				r.Delete("/{id}", h.Document.Delete)
				r.Post("/scan", h.File.UploadDocumentScan)
			})

			// Manager or admin: payroll
			r.Route("/salaries", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/", h.Salary.List)
				r.Post("/", h.Salary.Create)
				r.Get("/{id}", h.Salary.Get)
				r.Put("/{id}", h.Salary.Update)
				r.Delete("/{id}", h.Salary.Delete)
				r.Post("/{id}/mark-paid", h.Salary.MarkPaid)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/attendance/{employeeID}", h.Report.EmployeeAttendance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/finance/summary", h.Report.FinanceSummary)
					r.Get("/projects/budgets", h.Report.ProjectBudgets)
					r.Get("/workforce", h.Report.WorkforceSummary)
				})
			})
		})
	})

	return r
}

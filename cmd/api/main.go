package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/staffdesk/staffdesk-backend-go/internal/config"
	"github.com/staffdesk/staffdesk-backend-go/internal/fixtures"
	appHTTP "github.com/staffdesk/staffdesk-backend-go/internal/handler/http"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/jwt"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/storage"
	"github.com/staffdesk/staffdesk-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffdesk/staffdesk-backend-go/internal/service/attendance"
	authService "github.com/staffdesk/staffdesk-backend-go/internal/service/auth"
	customerService "github.com/staffdesk/staffdesk-backend-go/internal/service/customer"
	documentService "github.com/staffdesk/staffdesk-backend-go/internal/service/document"
	employeeService "github.com/staffdesk/staffdesk-backend-go/internal/service/employee"
	"github.com/staffdesk/staffdesk-backend-go/internal/service/file"
	financeService "github.com/staffdesk/staffdesk-backend-go/internal/service/finance"
	"github.com/staffdesk/staffdesk-backend-go/internal/service/master"
	projectService "github.com/staffdesk/staffdesk-backend-go/internal/service/project"
	reportService "github.com/staffdesk/staffdesk-backend-go/internal/service/report"
	salaryService "github.com/staffdesk/staffdesk-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	positionRepo := postgresql.NewPositionRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	transactionRepo := postgresql.NewTransactionRepository(db)
	customerRepo := postgresql.NewCustomerRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	documentRepo := postgresql.NewDocumentRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	catalog := fixtures.DefaultCatalog()

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileSvc := file.NewFileService(fileStorage)
	authSvc := authService.NewAuthService(userRepo, jwtService, employeeRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, catalog)
	attendanceSvc := attendanceService.NewAttendanceService(sessionRepo, employeeRepo, catalog, cfg.Attendance)
	financeSvc := financeService.NewFinanceService(transactionRepo, projectRepo, customerRepo, employeeRepo, catalog)
	customerSvc := customerService.NewCustomerService(customerRepo)
	projectSvc := projectService.NewProjectService(projectRepo, customerRepo)
	documentSvc := documentService.NewDocumentService(documentRepo, projectRepo, customerRepo, employeeRepo, catalog)
	salarySvc := salaryService.NewSalaryService(salaryRepo, employeeRepo)
	masterSvc := master.NewMasterService(departmentRepo, positionRepo)
	reportSvc := reportService.NewReportService(sessionRepo, transactionRepo, projectRepo, employeeRepo, catalog)

	router := appHTTP.NewRouter(jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Finance:    appHTTP.NewFinanceHandler(financeSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Customer:   appHTTP.NewCustomerHandler(customerSvc),
		Master:     appHTTP.NewMasterHandler(masterSvc, masterSvc),
		Project:    appHTTP.NewProjectHandler(projectSvc),
		Document:   appHTTP.NewDocumentHandler(documentSvc),
		Salary:     appHTTP.NewSalaryHandler(salarySvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		File:       appHTTP.NewFileHandler(fileSvc),
	}, []string{cfg.App.FrontendURL})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

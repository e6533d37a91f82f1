package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pontohr/backend-go/internal/config"
	appHTTP "github.com/pontohr/backend-go/internal/handler/http"
	"github.com/pontohr/backend-go/internal/pkg/database"
	"github.com/pontohr/backend-go/internal/pkg/email"
	"github.com/pontohr/backend-go/internal/pkg/jwt"
	"github.com/pontohr/backend-go/internal/pkg/oauth"
	"github.com/pontohr/backend-go/internal/pkg/storage"
	"github.com/pontohr/backend-go/internal/repository/postgresql"
	absenceService "github.com/pontohr/backend-go/internal/service/absence"
	authService "github.com/pontohr/backend-go/internal/service/auth"
	employeeService "github.com/pontohr/backend-go/internal/service/employee"
	"github.com/pontohr/backend-go/internal/service/file"
	reportService "github.com/pontohr/backend-go/internal/service/report"
	timeTrackingService "github.com/pontohr/backend-go/internal/service/timetracking"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	reportLocation := time.Local
	if cfg.App.ReportTimezone != "" {
		reportLocation, err = time.LoadLocation(cfg.App.ReportTimezone)
		if err != nil {
			log.Fatal("Invalid REPORT_TIMEZONE: ", err)
		}
	}

	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	punchRepo := postgresql.NewPunchEventRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}
	fileSvc := file.NewFileService(fileStorage)

	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}

	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, companyRepo)
	timeTrackingSvc := timeTrackingService.NewTimeTrackingService(punchRepo, reportLocation)
	absenceSvc := absenceService.NewAbsenceService(absenceRepo, employeeRepo, fileSvc, emailSvc)
	reportSvc := reportService.NewReportService(companyRepo, employeeRepo, punchRepo, absenceRepo, reportLocation)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	timeTrackingHandler := appHTTP.NewTimeTrackingHandler(timeTrackingSvc)
	absenceHandler := appHTTP.NewAbsenceHandler(absenceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		timeTrackingHandler,
		absenceHandler,
		reportHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opshub-hq/opshub-backend-go/internal/config"
	appHTTP "github.com/opshub-hq/opshub-backend-go/internal/handler/http"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/cron"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/database"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/jwt"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/oauth"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/prefs"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/storage"
	"github.com/opshub-hq/opshub-backend-go/internal/repository/postgresql"
	attendanceService "github.com/opshub-hq/opshub-backend-go/internal/service/attendance"
	serviceAuth "github.com/opshub-hq/opshub-backend-go/internal/service/auth"
	categoryService "github.com/opshub-hq/opshub-backend-go/internal/service/category"
	employeeService "github.com/opshub-hq/opshub-backend-go/internal/service/employee"
	leaveService "github.com/opshub-hq/opshub-backend-go/internal/service/leave"
	memoService "github.com/opshub-hq/opshub-backend-go/internal/service/memo"
	nteService "github.com/opshub-hq/opshub-backend-go/internal/service/nte"
	reportService "github.com/opshub-hq/opshub-backend-go/internal/service/report"
	scheduleService "github.com/opshub-hq/opshub-backend-go/internal/service/schedule"
	surveyService "github.com/opshub-hq/opshub-backend-go/internal/service/survey"
	ticketService "github.com/opshub-hq/opshub-backend-go/internal/service/ticket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	ticketRepo := postgresql.NewTicketRepository(db)
	memoRepo := postgresql.NewMemoRepository(db)
	categoryRepo := postgresql.NewCategoryRepository(db)
	assigneeRepo := postgresql.NewAssigneeRepository(db)
	creditRepo := postgresql.NewCreditRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	recordRepo := postgresql.NewAttendanceRecordRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	surveyRepo := postgresql.NewSurveyRepository(db)
	nteRepo := postgresql.NewNTERecordRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

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

	prefsStore, err := prefs.NewStore(cfg.Preferences.Path)
	if err != nil {
		log.Fatal("Failed to open preferences store:", err)
	}
	defer prefsStore.Close()

	authSvc := serviceAuth.NewAuthService(db, userRepo, refreshTokenRepo, jwtService, fileStorage, cfg.App.CompanyEmailDomain, cfg.JWT.ExpiryWarnThreshold)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	ticketSvc := ticketService.NewTicketService(db, ticketRepo)
	memoSvc := memoService.NewMemoService(db, memoRepo)
	categorySvc := categoryService.NewCategoryService(db, categoryRepo, assigneeRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(db, creditRepo)
	scheduleSvc := scheduleService.NewScheduleService(db, scheduleRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, recordRepo, sessionRepo)
	surveySvc := surveyService.NewSurveyService(db, surveyRepo)
	nteSvc := nteService.NewNTEService(db, nteRepo, employeeRepo)
	reportSvc := reportService.NewReportService(db, employeeRepo, scheduleRepo, recordRepo, sessionRepo, ticketRepo, surveyRepo, memoRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Ticket:      appHTTP.NewTicketHandler(ticketSvc),
		Memo:        appHTTP.NewMemoHandler(memoSvc),
		Category:    appHTTP.NewCategoryHandler(categorySvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		Schedule:    appHTTP.NewScheduleHandler(scheduleSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Survey:      appHTTP.NewSurveyHandler(surveySvc),
		NTE:         appHTTP.NewNTEHandler(nteSvc),
		Report:      appHTTP.NewReportHandler(reportSvc),
		Preferences: appHTTP.NewPreferencesHandler(prefsStore),
	})

	scheduler := cron.NewScheduler()
	scheduler.AddJob("refresh-token-sweep", time.Minute, authSvc.SweepExpiringTokens)
	scheduler.AddJob("stale-session-close", 5*time.Minute, attendanceSvc.CloseStaleSessions)
	scheduler.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down")
	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
}

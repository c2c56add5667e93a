package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/opshub-hq/opshub-backend-go/internal/config"
	"github.com/opshub-hq/opshub-backend-go/internal/handler/http/middleware"
	"github.com/opshub-hq/opshub-backend-go/internal/pkg/jwt"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth        AuthHandler
	Employee    EmployeeHandler
	Ticket      TicketHandler
	Memo        MemoHandler
	Category    CategoryHandler
	Leave       LeaveHandler
	Schedule    ScheduleHandler
	Attendance  AttendanceHandler
	Survey      SurveyHandler
	NTE         NTEHandler
	Report      ReportHandler
	Preferences PreferencesHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "opshub"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Uploaded avatars are served straight off disk.
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Auth.Register)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", h.Auth.OAuthCallbackGoogle)
			})

			r.Route("/login", func(r chi.Router) {
				r.Post("/", h.Auth.Login)
				r.Route("/oauth", func(r chi.Router) {
					r.Get("/google", h.Auth.LoginWithGoogle)
				})
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", h.Auth.GetProfile)
				r.Put("/", h.Auth.UpdateProfile)
				r.Post("/avatar", h.Auth.UploadAvatar)
			})

			r.Route("/preferences", func(r chi.Router) {
				r.Get("/", h.Preferences.Get)
				r.Put("/", h.Preferences.Put)
				r.Delete("/", h.Preferences.Delete)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
				})
			})

			r.Route("/tickets", func(r chi.Router) {
				r.Get("/", h.Ticket.List)
				r.Post("/", h.Ticket.Create)
				r.Get("/{id}", h.Ticket.Get)
				r.Put("/{id}", h.Ticket.Update)
				r.Post("/{id}/notes", h.Ticket.AddNote)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Delete("/{id}", h.Ticket.Delete)
				})
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", h.Category.ListCategories)
				r.Get("/assignees", h.Category.ListAssignees)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Category.CreateCategory)
					r.Delete("/{id}", h.Category.DeleteCategory)
					r.Post("/assignees", h.Category.CreateAssignee)
					r.Put("/assignees/{id}/active", h.Category.SetAssigneeActive)
					r.Delete("/assignees/{id}", h.Category.DeleteAssignee)
				})
			})

			r.Route("/memos", func(r chi.Router) {
				r.Get("/", h.Memo.List)
				r.Get("/{id}", h.Memo.Get)
				r.Post("/{id}/acknowledge", h.Memo.Acknowledge)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Memo.Create)
					r.Put("/{id}", h.Memo.Update)
					r.Delete("/{id}", h.Memo.Delete)
				})
			})

			r.Route("/leave-credits", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.Leave.ListCredits)
				r.Put("/", h.Leave.UpsertCredit)
				r.Get("/{employeeID}", h.Leave.GetCredit)
				r.Post("/{employeeID}/history", h.Leave.AppendHistory)
			})

			r.Route("/schedule", func(r chi.Router) {
				r.Get("/", h.Schedule.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", h.Schedule.UpsertShift)
					r.Delete("/{id}", h.Schedule.Delete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/time-in", h.Attendance.TimeIn)
				r.Post("/time-out", h.Attendance.TimeOut)
				r.Get("/sessions/active", h.Attendance.GetActiveSession)
				r.Get("/sessions", h.Attendance.ListSessions)
				r.Post("/sessions/{id}/notes", h.Attendance.AddSessionNote)

				r.Route("/records", func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Attendance.ListRecords)
					r.Put("/", h.Attendance.UpsertRecord)
				})
			})

			r.Route("/surveys", func(r chi.Router) {
				r.Get("/", h.Survey.List)
				r.Get("/{id}", h.Survey.Get)
				r.Post("/{id}/responses", h.Survey.SubmitResponse)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Survey.Create)
					r.Delete("/{id}", h.Survey.Delete)
				})
			})

			r.Route("/nte", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", h.NTE.List)
				r.Post("/", h.NTE.Create)
				r.Get("/{id}", h.NTE.Get)
				r.Put("/{id}", h.NTE.Update)
				r.Delete("/{id}", h.NTE.Delete)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/absenteeism", h.Report.Absenteeism)
				r.Post("/export", h.Report.Export)
			})
		})
	})
	return r
}

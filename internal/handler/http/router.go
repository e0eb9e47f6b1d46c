package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stafftrack/attendance-backend-go/internal/handler/http/middleware"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	logHandler LogHandler,
	attendanceHandler AttendanceHandler,
	permissionHandler PermissionHandler,
	employeeHandler EmployeeHandler,
	adminRoleIDs []int,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/logs", func(r chi.Router) {
				r.Post("/", logHandler.Record)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(adminRoleIDs...))
					r.Get("/", logHandler.ListAll)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/my", attendanceHandler.GetMyAttendance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(adminRoleIDs...))
					r.Post("/by-roles", attendanceHandler.GetAttendanceByRoles)
				})
			})

			r.Route("/permissions", func(r chi.Router) {
				r.Post("/", permissionHandler.Request)
				r.Get("/my", permissionHandler.ListMine)
				r.Post("/{permissionID}/review", permissionHandler.Review)
			})

			r.Route("/employees", func(r chi.Router) {
				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireRole(adminRoleIDs...))
					r.Get("/", employeeHandler.List)
					r.Get("/{employeeID}/logs", logHandler.ListByEmployee)
					r.Get("/{employeeID}/attendance", attendanceHandler.GetEmployeeAttendance)
				})
			})
		})
	})
	return r
}

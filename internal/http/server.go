package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"

	"github.com/DHBWLoerrach/LectureSchedulerBackend/internal/config"
	"github.com/DHBWLoerrach/LectureSchedulerBackend/internal/services"
)

type Server struct {
	DB         *sqlx.DB
	Config     config.Config
	Tokens     services.TokenService
	MetricsHub *services.MetricsHub
}

func NewServer(db *sqlx.DB, cfg config.Config, hub *services.MetricsHub) *Server {
	tokens := services.TokenService{
		Secret: []byte(cfg.JWTSecret),
		Issuer: cfg.JWTIssuer,
		TTL:    time.Duration(cfg.TokenTTLSeconds) * time.Second,
	}
	return &Server{
		DB:         db,
		Config:     cfg,
		Tokens:     tokens,
		MetricsHub: hub,
	}
}

// Router wires the HTTP surface. Every route except /login and the websocket
// endpoint sits behind the auth guard; the module/program/course routes were
// unauthenticated in the legacy deployment and are gated here on purpose.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.Config.CorsOrigins,
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
			MaxAge:         300,
		}))
	}

	r.Post("/login", s.Login)
	r.Get("/ws/metrics", s.MetricsSocket)

	r.Group(func(auth chi.Router) {
		auth.Use(s.WithAuth)

		auth.Get("/api/protected", s.Protected)
		auth.Get("/audit/get", s.AuditTrail)

		auth.Route("/employees", func(employees chi.Router) {
			employees.Post("/create", s.CreateEmployee)
			employees.Get("/show", s.ShowEmployees)
			employees.Post("/edit", s.EditEmployee)
			employees.Delete("/delete", s.DeleteEmployees)
		})

		auth.Route("/modules", func(modules chi.Router) {
			modules.Get("/show", s.ShowModules)
			modules.Post("/create", s.CreateModule)
			modules.Put("/edit", s.EditModule)
			modules.Delete("/delete", s.DeleteModules)
		})

		auth.Route("/sgs", func(programs chi.Router) {
			programs.Get("/show", s.ShowPrograms)
			programs.Post("/create", s.CreateProgram)
			programs.Put("/edit", s.EditProgram)
			programs.Put("/hours", s.EditProgramHours)
			programs.Delete("/delete", s.DeletePrograms)
		})

		auth.Route("/courses", func(courses chi.Router) {
			courses.Post("/calendar", s.CourseCalendar)
			courses.Post("/calendar/update", s.UpdateCourseCalendar)
			courses.Get("/show", s.ShowCourses)
			courses.Post("/create", s.CreateCourse)
			courses.Put("/edit", s.EditCourse)
			courses.Delete("/delete", s.DeleteCourses)
		})

		auth.With(RequireTopPrivilege).Get("/metrics/history", s.MetricsHistory)
	})

	return r
}

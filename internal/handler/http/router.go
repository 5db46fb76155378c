package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/hris-core/hris-backend-go/internal/handler/http/response"
)

// Handlers groups every resource handler mounted by NewRouter.
type Handlers struct {
	Employee   EmployeeHandler
	Holiday    HolidayHandler
	Schedule   ScheduleHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Payroll    PayrollHandler
	RankFile   RankFileHandler
}

type RouterOptions struct {
	Logger         *slog.Logger
	LogLevel       slog.Level
	AllowedOrigins []string
}

func NewRouter(opts RouterOptions, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Link"},
		MaxAge:         300,
	}))

	if opts.Logger != nil {
		r.Use(httplog.RequestLogger(opts.Logger, &httplog.Options{
			Level:  opts.LogLevel,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/ping"))

	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.Employee.List)
		r.Post("/", h.Employee.Create)
		r.Get("/{id}", h.Employee.Get)
		r.Put("/{id}", h.Employee.Update)
		r.Delete("/{id}", h.Employee.Delete)
	})

	r.Route("/holidays", func(r chi.Router) {
		r.Get("/", h.Holiday.List)
		r.Post("/", h.Holiday.Create)
		r.Get("/{id}", h.Holiday.Get)
		r.Put("/{id}", h.Holiday.Update)
		r.Delete("/{id}", h.Holiday.Delete)
	})

	r.Route("/schedules", func(r chi.Router) {
		r.Get("/", h.Schedule.List)
		r.Post("/", h.Schedule.Create)
		r.Get("/{id}", h.Schedule.Get)
		r.Put("/{id}", h.Schedule.Update)
		r.Delete("/{id}", h.Schedule.Delete)
	})

	r.Route("/time-tracking", func(r chi.Router) {
		r.Get("/", h.Attendance.List)
		r.Post("/clock-in", h.Attendance.ClockIn)
		r.Post("/clock-out", h.Attendance.ClockOut)
		r.Post("/upload", h.Attendance.Upload)
		r.Get("/{id}", h.Attendance.Get)
		r.Put("/{id}", h.Attendance.Update)
		r.Delete("/{id}", h.Attendance.Delete)
	})

	r.Route("/leave", func(r chi.Router) {
		r.Route("/requests", func(r chi.Router) {
			r.Get("/", h.Leave.ListRequests)
			r.Post("/", h.Leave.CreateRequest)
			r.Get("/{id}", h.Leave.GetRequest)
			r.Put("/{id}", h.Leave.UpdateRequest)
		})
		r.Route("/balance", func(r chi.Router) {
			r.Get("/", h.Leave.ListBalances)
			r.Post("/", h.Leave.UpsertBalance)
			r.Put("/update", h.Leave.UpdateBalance)
		})
	})

	r.Route("/payroll", func(r chi.Router) {
		r.Get("/", h.Payroll.ListPayrollRecords)
		r.Post("/process", h.Payroll.ProcessPayroll)
		r.Get("/{id}", h.Payroll.GetPayrollRecord)
	})

	r.Route("/rank-file", func(r chi.Router) {
		r.Get("/", h.RankFile.List)
		r.Post("/", h.RankFile.Create)
		r.Get("/{id}", h.RankFile.Get)
		r.Put("/{id}", h.RankFile.Update)
		r.Delete("/{id}", h.RankFile.Delete)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		response.NotFound(w, "Not found")
	})

	return r
}

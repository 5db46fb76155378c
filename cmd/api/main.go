package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/httplog/v3"
	"github.com/hris-core/hris-backend-go/internal/config"
	appHTTP "github.com/hris-core/hris-backend-go/internal/handler/http"
	"github.com/hris-core/hris-backend-go/internal/pkg/database"
	"github.com/hris-core/hris-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hris-core/hris-backend-go/internal/service/attendance"
	employeeService "github.com/hris-core/hris-backend-go/internal/service/employee"
	holidayService "github.com/hris-core/hris-backend-go/internal/service/holiday"
	leaveService "github.com/hris-core/hris-backend-go/internal/service/leave"
	payrollService "github.com/hris-core/hris-backend-go/internal/service/payroll"
	rankFileService "github.com/hris-core/hris-backend-go/internal/service/rankfile"
	scheduleService "github.com/hris-core/hris-backend-go/internal/service/schedule"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Server error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	level, _ := cfg.SlogLevel()
	logFormat := httplog.SchemaECS.Concise(!cfg.IsDevelopment())
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", cfg.App.Name),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("error applying migrations: %w", err)
		}
	}

	tx := postgresql.NewTransactor(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	clockRecordRepo := postgresql.NewClockRecordRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)
	rankFileRepo := postgresql.NewRankFileRepository(db)

	payrollSvc := payrollService.NewPayrollService(
		tx,
		payrollRepo,
		employeeRepo,
		payrollService.NewAttendanceReader(clockRecordRepo),
		payrollService.NewLeaveReader(leaveRequestRepo),
		decimal.NewFromFloat(cfg.Payroll.DefaultHourlyRate),
	)

	router := appHTTP.NewRouter(
		appHTTP.RouterOptions{
			Logger:         logger,
			LogLevel:       level,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		appHTTP.Handlers{
			Employee:   appHTTP.NewEmployeeHandler(employeeService.NewEmployeeService(employeeRepo)),
			Holiday:    appHTTP.NewHolidayHandler(holidayService.NewHolidayService(holidayRepo)),
			Schedule:   appHTTP.NewScheduleHandler(scheduleService.NewScheduleService(tx, scheduleRepo)),
			Attendance: appHTTP.NewAttendanceHandler(attendanceService.NewAttendanceService(tx, clockRecordRepo)),
			Leave:      appHTTP.NewLeaveHandler(leaveService.NewLeaveService(tx, leaveRequestRepo, leaveBalanceRepo)),
			Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
			RankFile:   appHTTP.NewRankFileHandler(rankFileService.NewRankFileService(rankFileRepo)),
		},
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Duration(cfg.Server.ReadTimeout),
		WriteTimeout: cfg.Server.Duration(cfg.Server.WriteTimeout),
		IdleTimeout:  cfg.Server.Duration(cfg.Server.IdleTimeout),
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Server running", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.Duration(cfg.Server.ShutdownTimeout))
		defer cancel()

		slog.Info("Shutting down server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

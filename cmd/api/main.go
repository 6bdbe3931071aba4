package main

import (
	"fmt"
	"net/http"

	"github.com/staffhub-ops/hr-backend-go/internal/config"
	appHTTP "github.com/staffhub-ops/hr-backend-go/internal/handler/http"
	"github.com/staffhub-ops/hr-backend-go/internal/pkg/database"
	"github.com/staffhub-ops/hr-backend-go/internal/pkg/jwt"
	"github.com/staffhub-ops/hr-backend-go/internal/pkg/timeutil"
	"github.com/staffhub-ops/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffhub-ops/hr-backend-go/internal/service/attendance"
	authService "github.com/staffhub-ops/hr-backend-go/internal/service/auth"
	bonusService "github.com/staffhub-ops/hr-backend-go/internal/service/bonus"
	leaveService "github.com/staffhub-ops/hr-backend-go/internal/service/leave"
	overtimeService "github.com/staffhub-ops/hr-backend-go/internal/service/overtime"
	payrollService "github.com/staffhub-ops/hr-backend-go/internal/service/payroll"
	scheduleService "github.com/staffhub-ops/hr-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	norm, err := timeutil.NewNormalizer(cfg.Business.Timezone)
	if err != nil {
		fmt.Println("Error loading business timezone:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	staffRepo := postgresql.NewStaffRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	importSvc := attendanceService.NewImportService(attendanceRepo, norm)
	overtimeSvc := overtimeService.NewOvertimeService(attendanceRepo, scheduleRepo, norm, cfg.Business.OvertimeThresholdMinutes)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, holidayRepo, staffRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, staffRepo)
	bonusEvaluator := bonusService.NewStreakEvaluator(
		cfg.Business.AbsenceAllowance,
		cfg.Business.LatenessAllowance,
		cfg.Business.BonusBase,
		cfg.Business.BonusStep,
		cfg.Business.BonusStepCap,
	)
	payrollSvc := payrollService.NewPayrollService(
		staffRepo,
		attendanceRepo,
		scheduleRepo,
		holidayRepo,
		leaveRepo,
		payrollRepo,
		bonusEvaluator,
		norm,
		cfg.Business,
	)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(importSvc, overtimeSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		cfg.App,
		jwtService,
		authHandler,
		attendanceHandler,
		scheduleHandler,
		leaveHandler,
		payrollHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server running on port", cfg.App.Port)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

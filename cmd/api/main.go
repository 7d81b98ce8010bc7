package main

import (
	"fmt"
	"net/http"

	"github.com/gmt-app/puantaj-backend-go/internal/config"
	"github.com/gmt-app/puantaj-backend-go/internal/domain/schedule"
	appHTTP "github.com/gmt-app/puantaj-backend-go/internal/handler/http"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/cron"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/database"
	"github.com/gmt-app/puantaj-backend-go/internal/pkg/jwt"
	"github.com/gmt-app/puantaj-backend-go/internal/repository/postgresql"
	accessService "github.com/gmt-app/puantaj-backend-go/internal/service/access"
	attendanceService "github.com/gmt-app/puantaj-backend-go/internal/service/attendance"
	calendarService "github.com/gmt-app/puantaj-backend-go/internal/service/calendar"
	leaveService "github.com/gmt-app/puantaj-backend-go/internal/service/leave"
	scheduleService "github.com/gmt-app/puantaj-backend-go/internal/service/schedule"
	timesheetService "github.com/gmt-app/puantaj-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	personRepo := postgresql.NewPersonRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	overrideRepo := postgresql.NewHolidayOverrideRepository(db)
	leavePeriodRepo := postgresql.NewLeavePeriodRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	planRepo := postgresql.NewPlanRepository(db)
	dayStatusRepo := postgresql.NewDayStatusRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	accessSvc := accessService.NewAccessService(cfg.Access.PINHash, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(eventRepo, overrideRepo, personRepo)
	leaveSvc := leaveService.NewLeaveService(leavePeriodRepo, personRepo)
	scheduleSvc := scheduleService.NewScheduleService(shiftRepo, planRepo, personRepo)
	timesheetSvc := timesheetService.NewTimesheetService(
		personRepo,
		eventRepo,
		overrideRepo,
		leavePeriodRepo,
		shiftRepo,
		planRepo,
		dayStatusRepo,
		cfg.Timesheet.ToleranceMinutes,
		schedule.ShiftDefinition{
			Window:       cfg.Timesheet.DefaultShiftWindow,
			BreakMinutes: cfg.Timesheet.DefaultBreakMinutes,
		},
	)
	calendarSvc := calendarService.NewCalendarService(personRepo)

	scheduler := cron.NewScheduler()
	cron.NewTimesheetJobs(timesheetSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	accessHandler := appHTTP.NewAccessHandler(accessSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)
	calendarHandler := appHTTP.NewCalendarHandler(calendarSvc)

	router := appHTTP.NewRouter(
		JWTService,
		accessHandler,
		attendanceHandler,
		leaveHandler,
		scheduleHandler,
		timesheetHandler,
		calendarHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

package main

import (
	"fmt"
	"net/http"

	"github.com/stafftrack/attendance-backend-go/internal/config"
	appHTTP "github.com/stafftrack/attendance-backend-go/internal/handler/http"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/clock"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/database"
	"github.com/stafftrack/attendance-backend-go/internal/pkg/jwt"
	"github.com/stafftrack/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/stafftrack/attendance-backend-go/internal/service/attendance"
	authService "github.com/stafftrack/attendance-backend-go/internal/service/auth"
	employeeService "github.com/stafftrack/attendance-backend-go/internal/service/employee"
	logService "github.com/stafftrack/attendance-backend-go/internal/service/employeelog"
	permissionService "github.com/stafftrack/attendance-backend-go/internal/service/permission"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.PoolMaxConns, cfg.Database.PoolMinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	logRepo := postgresql.NewLogRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	permissionRepo := postgresql.NewPermissionRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	logSvc := logService.NewLogService(logRepo, clock.Real())
	permissionSvc := permissionService.NewPermissionService(db, permissionRepo, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		logRepo,
		shiftRepo,
		permissionRepo,
		employeeRepo,
		clock.Real(),
	)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	logHandler := appHTTP.NewLogHandler(logSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, employeeSvc)
	permissionHandler := appHTTP.NewPermissionHandler(permissionSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		JWTService,
		authHandler,
		logHandler,
		attendanceHandler,
		permissionHandler,
		employeeHandler,
		cfg.App.AdminRoleIDs,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

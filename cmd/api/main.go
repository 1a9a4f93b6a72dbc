package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/techniqueiron/ironworks-backend-go/internal/config"
	appHTTP "github.com/techniqueiron/ironworks-backend-go/internal/handler/http"
	"github.com/techniqueiron/ironworks-backend-go/internal/pkg/database"
	"github.com/techniqueiron/ironworks-backend-go/internal/pkg/jwt"
	"github.com/techniqueiron/ironworks-backend-go/internal/repository/postgresql"
	authService "github.com/techniqueiron/ironworks-backend-go/internal/service/auth"
	attendanceService "github.com/techniqueiron/ironworks-backend-go/internal/service/attendance"
	dashboardService "github.com/techniqueiron/ironworks-backend-go/internal/service/dashboard"
	financeService "github.com/techniqueiron/ironworks-backend-go/internal/service/finance"
	paymentService "github.com/techniqueiron/ironworks-backend-go/internal/service/payment"
	payrollService "github.com/techniqueiron/ironworks-backend-go/internal/service/payroll"
	settingService "github.com/techniqueiron/ironworks-backend-go/internal/service/setting"
	workerService "github.com/techniqueiron/ironworks-backend-go/internal/service/worker"
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

	adminRepo := postgresql.NewAdminAuthRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	transactionRepo := postgresql.NewTransactionRepository(db)
	paymentRepo := postgresql.NewWorkerPaymentRepository(db)
	settingRepo := postgresql.NewSettingRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(adminRepo, jwtSvc)
	workerSvc := workerService.NewWorkerService(db, workerRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, workerRepo)
	financeSvc := financeService.NewFinanceService(transactionRepo)
	paymentSvc := paymentService.NewPaymentService(paymentRepo, workerRepo)
	settingSvc := settingService.NewSettingService(settingRepo)
	payrollSvc := payrollService.NewPayrollService(workerRepo, attendanceRepo, paymentRepo)
	dashboardSvc := dashboardService.NewDashboardService(workerRepo, attendanceRepo, transactionRepo, settingSvc)

	if err := authSvc.EnsureAdmin(context.Background(), cfg.Admin.Username, cfg.Admin.Password); err != nil {
		log.Fatal("Failed to seed admin credential: ", err)
	}

	router := appHTTP.NewRouter(jwtSvc, cfg.App.Env, cfg.App.AllowedOrigins, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Worker:     appHTTP.NewWorkerHandler(workerSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Finance:    appHTTP.NewFinanceHandler(financeSvc),
		Payment:    appHTTP.NewPaymentHandler(paymentSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
		Setting:    appHTTP.NewSettingHandler(settingSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}

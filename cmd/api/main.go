package main

import (
	"fmt"
	"net/http"

	"github.com/slipsalary/payroll-backend-go/internal/config"
	appHTTP "github.com/slipsalary/payroll-backend-go/internal/handler/http"
	"github.com/slipsalary/payroll-backend-go/internal/pkg/archive"
	"github.com/slipsalary/payroll-backend-go/internal/pkg/database"
	"github.com/slipsalary/payroll-backend-go/internal/pkg/email"
	"github.com/slipsalary/payroll-backend-go/internal/pkg/jwt"
	"github.com/slipsalary/payroll-backend-go/internal/repository/postgresql"
	authService "github.com/slipsalary/payroll-backend-go/internal/service/auth"
	payrollService "github.com/slipsalary/payroll-backend-go/internal/service/payroll"
	payslipService "github.com/slipsalary/payroll-backend-go/internal/service/payslip"
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

	employeeRepo := postgresql.NewEmployeeRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.TokenTTLMin)
	arch := archive.New(cfg.Archive.Dir)
	mailer := email.NewMailer(cfg.SMTP)

	authSvc := authService.NewAuthService(employeeRepo, jwtService)
	payrollSvc := payrollService.NewPayrollService(employeeRepo, arch, mailer)
	payslipSvc := payslipService.NewPayslipService(employeeRepo, arch, mailer)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService, cfg.JWT.Secret, cfg.JWT.TokenTTLMin)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	payslipHandler := appHTTP.NewPayslipHandler(payslipSvc)

	router := appHTTP.NewRouter(jwtService, employeeRepo, authHandler, payrollHandler, payslipHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}

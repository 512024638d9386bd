package employee

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

type EmployeeRepository interface {
	// GetActiveByID returns an active employee regardless of role.
	GetActiveByID(ctx context.Context, empID int) (Employee, error)

	// GetActiveManager returns the employee only if it is active and has
	// the MANAGER role, otherwise ErrManagerNotFound.
	GetActiveManager(ctx context.Context, empID int) (Employee, error)

	// GetByEmailAndCNP resolves login credentials against active employees.
	GetByEmailAndCNP(ctx context.Context, email, cnp string) (Employee, error)

	// ListDirectReports returns the manager's active direct reports in
	// ascending employee-id order.
	ListDirectReports(ctx context.Context, managerID int) ([]Employee, error)

	// FindDirectReportByName matches first and last name case-insensitively
	// within the manager's active roster.
	FindDirectReportByName(ctx context.Context, managerID int, firstName, lastName string) (Employee, error)

	// BonusTotals sums bonus amounts per employee where effective_month
	// equals monthStart exactly.
	BonusTotals(ctx context.Context, monthStart time.Time) (map[int]decimal.Decimal, error)

	// VacationDaysTaken sums, per employee, the inclusive overlap in days of
	// each vacation record with [periodStart, periodEnd].
	VacationDaysTaken(ctx context.Context, periodStart, periodEnd time.Time) (map[int]int, error)
}

package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/slipsalary/payroll-backend-go/internal/domain/employee"
	"github.com/slipsalary/payroll-backend-go/internal/pkg/database"
)

const employeeColumns = `emp_id, first_name, last_name, cnp, email, role, grade, base_salary, manager_id, hire_date, is_active`

type employeeRepositoryImpl struct {
	db database.Querier
}

func NewEmployeeRepository(db database.Querier) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.EmpID, &emp.FirstName, &emp.LastName, &emp.CNP, &emp.Email,
		&emp.Role, &emp.Grade, &emp.BaseSalary, &emp.ManagerID,
		&emp.HireDate, &emp.IsActive,
	)
	if err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetActiveByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActiveByID(ctx context.Context, empID int) (employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE emp_id = $1 AND is_active = TRUE
	`

	emp, err := scanEmployee(e.db.QueryRow(ctx, query, empID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetActiveManager implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetActiveManager(ctx context.Context, empID int) (employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE emp_id = $1 AND role = $2 AND is_active = TRUE
	`

	emp, err := scanEmployee(e.db.QueryRow(ctx, query, empID, employee.RoleManager))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrManagerNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// GetByEmailAndCNP implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByEmailAndCNP(ctx context.Context, email, cnp string) (employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE email = $1 AND cnp = $2 AND is_active = TRUE
	`

	emp, err := scanEmployee(e.db.QueryRow(ctx, query, email, cnp))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// ListDirectReports implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListDirectReports(ctx context.Context, managerID int) ([]employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE manager_id = $1 AND is_active = TRUE
		ORDER BY emp_id ASC
	`

	rows, err := e.db.Query(ctx, query, managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}

// FindDirectReportByName implements employee.EmployeeRepository.
// Name matching is a case-insensitive exact match scoped to the manager's
// own active roster.
func (e *employeeRepositoryImpl) FindDirectReportByName(ctx context.Context, managerID int, firstName, lastName string) (employee.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		WHERE first_name ILIKE $2 AND last_name ILIKE $3
			AND manager_id = $1 AND is_active = TRUE
		LIMIT 1
	`

	emp, err := scanEmployee(e.db.QueryRow(ctx, query, managerID, firstName, lastName))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}
	return emp, nil
}

// BonusTotals implements employee.EmployeeRepository. The month match is an
// exact date equality on effective_month, not a range check.
func (e *employeeRepositoryImpl) BonusTotals(ctx context.Context, monthStart time.Time) (map[int]decimal.Decimal, error) {
	query := `
		SELECT emp_id, COALESCE(SUM(amount), 0) AS bonus_total
		FROM bonuses
		WHERE effective_month = $1
		GROUP BY emp_id
	`

	rows, err := e.db.Query(ctx, query, monthStart)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	totals := make(map[int]decimal.Decimal)
	for rows.Next() {
		var empID int
		var total decimal.Decimal
		if err := rows.Scan(&empID, &total); err != nil {
			return nil, err
		}
		totals[empID] = total
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return totals, nil
}

// VacationDaysTaken implements employee.EmployeeRepository. Overlap length
// is inclusive on both ends; multiple records for the same employee sum
// together without dedup.
func (e *employeeRepositoryImpl) VacationDaysTaken(ctx context.Context, periodStart, periodEnd time.Time) (map[int]int, error) {
	query := `
		SELECT emp_id,
			SUM(GREATEST(0, LEAST(end_date, $2) - GREATEST(start_date, $1) + 1)) AS vac_days
		FROM vacations
		WHERE end_date >= $1 AND start_date <= $2
		GROUP BY emp_id
	`

	rows, err := e.db.Query(ctx, query, periodStart, periodEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	days := make(map[int]int)
	for rows.Next() {
		var empID, vacDays int
		if err := rows.Scan(&empID, &vacDays); err != nil {
			return nil, err
		}
		days[empID] = vacDays
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return days, nil
}

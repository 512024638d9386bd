package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	EmpID      int
	FirstName  string
	LastName   string
	CNP        string
	Email      string
	Role       Role
	Grade      *string
	BaseSalary decimal.Decimal
	ManagerID  *int
	HireDate   time.Time
	IsActive   bool
}

// FullName returns "First Last" the way the reports print it.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
	RoleAdmin    Role = "ADMIN"
)

type Bonus struct {
	BonusID        int
	EmpID          int
	Name           string
	Amount         decimal.Decimal
	EffectiveMonth time.Time
	CreatedAt      time.Time
}

type Vacation struct {
	VacID     int
	EmpID     int
	StartDate time.Time
	EndDate   time.Time
	Type      VacationType
	CreatedAt time.Time
}

type VacationType string

const (
	VacationPaid   VacationType = "PAID"
	VacationUnpaid VacationType = "UNPAID"
)

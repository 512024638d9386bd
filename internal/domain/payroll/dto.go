package payroll

import (
	"github.com/shopspring/decimal"
)

// AggregatedRow is one line of the monthly CSV report: the salary figures
// computed for a single direct report over the current period.
type AggregatedRow struct {
	EmpID        int
	FullName     string
	SalaryToPay  decimal.Decimal
	VacationDays int
	BonusTotal   decimal.Decimal
}

type PeriodResponse struct {
	MonthStart string `json:"month_start"`
	MonthEnd   string `json:"month_end"`
}

type CreateAggregatedResponse struct {
	Status             string         `json:"status"`
	ManagerID          int            `json:"manager_id"`
	Period             PeriodResponse `json:"period"`
	WorkingDaysInMonth int            `json:"working_days_in_month"`
	Rows               int            `json:"rows"`
	FilePath           string         `json:"file_path"`
}

type SendAggregatedResponse struct {
	Status     string `json:"status"`
	To         string `json:"to"`
	File       string `json:"file"`
	ArchivedTo string `json:"archived_to"`
}

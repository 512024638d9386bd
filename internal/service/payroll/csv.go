package payroll

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/slipsalary/payroll-backend-go/internal/domain/payroll"
)

// csvHeader is the fixed 5-column report header. Downstream consumers parse
// these exact strings, do not reword them.
var csvHeader = []string{
	"Employee name",
	"Salary to be paid (current month)",
	"Working days in month",
	"Vacation days (taken)",
	"Additional bonuses (current month)",
}

// BuildAggregatedCSV renders the aggregation rows to the report's tabular
// format. The working-day figure is a whole-month context value, evaluated
// once for the roster rather than adjusted per employee.
func BuildAggregatedCSV(rows []payroll.AggregatedRow, workingDays int) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.FullName,
			row.SalaryToPay.StringFixed(2),
			strconv.Itoa(workingDays),
			strconv.Itoa(row.VacationDays),
			row.BonusTotal.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush CSV: %w", err)
	}
	return buf.Bytes(), nil
}

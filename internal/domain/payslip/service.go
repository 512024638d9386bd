package payslip

import (
	"context"

	"github.com/slipsalary/payroll-backend-go/internal/domain/auth"
)

type PayslipService interface {
	// CreatePayslips generates one encrypted PDF payslip per active direct
	// report for the current month.
	CreatePayslips(ctx context.Context, mgr auth.Identity) (CreatePayslipsResponse, error)

	// SendPayslips emails each generated payslip to the employee resolved
	// from its filename and archives the dispatched files.
	SendPayslips(ctx context.Context, mgr auth.Identity) (SendPayslipsResponse, error)
}

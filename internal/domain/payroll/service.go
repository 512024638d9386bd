package payroll

import (
	"context"

	"github.com/slipsalary/payroll-backend-go/internal/domain/auth"
)

type PayrollService interface {
	// CreateAggregated generates the current-month CSV report for the
	// manager's direct reports and persists it to the archive.
	CreateAggregated(ctx context.Context, mgr auth.Identity) (CreateAggregatedResponse, error)

	// SendAggregated emails the most recent CSV report to the manager and
	// moves it into the sent area.
	SendAggregated(ctx context.Context, mgr auth.Identity) (SendAggregatedResponse, error)
}

package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/slipsalary/payroll-backend-go/internal/domain/auth"
	"github.com/slipsalary/payroll-backend-go/internal/domain/employee"
	"github.com/slipsalary/payroll-backend-go/internal/domain/payroll"
	"github.com/slipsalary/payroll-backend-go/internal/pkg/archive"
	"github.com/slipsalary/payroll-backend-go/internal/pkg/email"
	"github.com/slipsalary/payroll-backend-go/internal/pkg/period"
)

type PayrollServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	arch         *archive.Archive
	mailer       email.Mailer
	now          func() time.Time
}

func NewPayrollService(
	employeeRepo employee.EmployeeRepository,
	arch *archive.Archive,
	mailer email.Mailer,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		employeeRepo: employeeRepo,
		arch:         arch,
		mailer:       mailer,
		now:          time.Now,
	}
}

// CreateAggregated implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreateAggregated(ctx context.Context, mgr auth.Identity) (payroll.CreateAggregatedResponse, error) {
	today := s.now()
	p := period.MonthBounds(today)
	workingDays := period.BusinessDaysInMonth(today)

	rows, err := s.aggregateRoster(ctx, mgr.EmpID, p)
	if err != nil {
		return payroll.CreateAggregatedResponse{}, err
	}

	data, err := BuildAggregatedCSV(rows, workingDays)
	if err != nil {
		return payroll.CreateAggregatedResponse{}, err
	}

	path := s.arch.CSVPath(mgr.EmpID, p.YM(), p.YMKey())
	if err := s.arch.WriteFile(path, data); err != nil {
		return payroll.CreateAggregatedResponse{}, err
	}

	slog.Info("csv_generated", "manager_id", mgr.EmpID, "rows", len(rows), "file", path)

	return payroll.CreateAggregatedResponse{
		Status:    "ok",
		ManagerID: mgr.EmpID,
		Period: payroll.PeriodResponse{
			MonthStart: p.Start.Format("2006-01-02"),
			MonthEnd:   p.End.Format("2006-01-02"),
		},
		WorkingDaysInMonth: workingDays,
		Rows:               len(rows),
		FilePath:           path,
	}, nil
}

// aggregateRoster resolves the manager's active direct reports and joins in
// the period's bonus totals and vacation-day counts, defaulting to zero for
// employees without matching records.
func (s *PayrollServiceImpl) aggregateRoster(ctx context.Context, managerID int, p period.Period) ([]payroll.AggregatedRow, error) {
	bonuses, err := s.employeeRepo.BonusTotals(ctx, p.Start)
	if err != nil {
		return nil, fmt.Errorf("failed to query bonus totals: %w", err)
	}

	vacations, err := s.employeeRepo.VacationDaysTaken(ctx, p.Start, p.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query vacation days: %w", err)
	}

	reports, err := s.employeeRepo.ListDirectReports(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list direct reports: %w", err)
	}

	rows := make([]payroll.AggregatedRow, 0, len(reports))
	for _, e := range reports {
		bonusTotal := bonuses[e.EmpID]
		rows = append(rows, payroll.AggregatedRow{
			EmpID:        e.EmpID,
			FullName:     e.FullName(),
			SalaryToPay:  e.BaseSalary.Add(bonusTotal),
			VacationDays: vacations[e.EmpID],
			BonusTotal:   bonusTotal,
		})
	}
	return rows, nil
}

// SendAggregated implements payroll.PayrollService.
func (s *PayrollServiceImpl) SendAggregated(ctx context.Context, mgr auth.Identity) (payroll.SendAggregatedResponse, error) {
	path, err := s.arch.FindLatestCSV(mgr.EmpID)
	if err != nil {
		if errors.Is(err, archive.ErrNoArtifact) {
			return payroll.SendAggregatedResponse{}, payroll.ErrNoReportFound
		}
		return payroll.SendAggregatedResponse{}, fmt.Errorf("failed to locate latest CSV: %w", err)
	}

	subject := fmt.Sprintf("Aggregated Employee Data for Manager %s", mgr.FullName())
	body := fmt.Sprintf(
		"Hello %s!\n\n"+
			"Please find attached the aggregated employee data for your team.\n"+
			"Generated file: %s\n\n"+
			"Best regards,\n"+
			"Slip Salary App",
		mgr.FirstName, filepath.Base(path),
	)

	if err := s.mailer.Send(email.Message{
		To:             mgr.Email,
		Subject:        subject,
		Body:           body,
		AttachmentPath: path,
		MIMEType:       "text/csv",
	}); err != nil {
		return payroll.SendAggregatedResponse{}, err
	}

	slog.Info("csv_sent", "to", mgr.Email, "file", filepath.Base(path))

	archivedTo, err := s.arch.ArchiveSent(path)
	if err != nil {
		return payroll.SendAggregatedResponse{}, err
	}

	return payroll.SendAggregatedResponse{
		Status:     "sent",
		To:         mgr.Email,
		File:       path,
		ArchivedTo: archivedTo,
	}, nil
}

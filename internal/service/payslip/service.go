package payslip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/slipsalary/payroll-backend-go/internal/domain/auth"
	"github.com/slipsalary/payroll-backend-go/internal/domain/employee"
	"github.com/slipsalary/payroll-backend-go/internal/domain/payslip"
	"github.com/slipsalary/payroll-backend-go/internal/pkg/archive"
	"github.com/slipsalary/payroll-backend-go/internal/pkg/email"
	"github.com/slipsalary/payroll-backend-go/internal/pkg/pdf"
	"github.com/slipsalary/payroll-backend-go/internal/pkg/period"
)

type PayslipServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	arch         *archive.Archive
	mailer       email.Mailer
	generatePDF  func(slip pdf.Payslip, path string) error
	now          func() time.Time
}

func NewPayslipService(
	employeeRepo employee.EmployeeRepository,
	arch *archive.Archive,
	mailer email.Mailer,
) payslip.PayslipService {
	return &PayslipServiceImpl{
		employeeRepo: employeeRepo,
		arch:         arch,
		mailer:       mailer,
		generatePDF:  pdf.Generate,
		now:          time.Now,
	}
}

// CreatePayslips implements payslip.PayslipService. A failure mid-roster
// aborts the call; payslips already written stay on disk.
func (s *PayslipServiceImpl) CreatePayslips(ctx context.Context, mgr auth.Identity) (payslip.CreatePayslipsResponse, error) {
	today := s.now()
	p := period.MonthBounds(today)

	bonuses, err := s.employeeRepo.BonusTotals(ctx, p.Start)
	if err != nil {
		return payslip.CreatePayslipsResponse{}, fmt.Errorf("failed to query bonus totals: %w", err)
	}

	vacations, err := s.employeeRepo.VacationDaysTaken(ctx, p.Start, p.End)
	if err != nil {
		return payslip.CreatePayslipsResponse{}, fmt.Errorf("failed to query vacation days: %w", err)
	}

	reports, err := s.employeeRepo.ListDirectReports(ctx, mgr.EmpID)
	if err != nil {
		return payslip.CreatePayslipsResponse{}, fmt.Errorf("failed to list direct reports: %w", err)
	}

	if err := s.arch.EnsureDir(s.arch.PDFDir(mgr.EmpID, p.YM())); err != nil {
		return payslip.CreatePayslipsResponse{}, err
	}

	generated := []string{}
	for _, e := range reports {
		grade := ""
		if e.Grade != nil {
			grade = *e.Grade
		}
		bonusTotal := bonuses[e.EmpID]

		slip := pdf.Payslip{
			FullName:     e.FullName(),
			CNP:          e.CNP,
			Email:        e.Email,
			Grade:        grade,
			HireDate:     e.HireDate,
			BaseSalary:   e.BaseSalary,
			BonusTotal:   bonusTotal,
			VacationDays: vacations[e.EmpID],
			SalaryToPay:  e.BaseSalary.Add(bonusTotal),
		}

		path := s.arch.PDFPath(mgr.EmpID, p.YM(), e.FirstName, e.LastName, p.YMKey())
		if err := s.generatePDF(slip, path); err != nil {
			return payslip.CreatePayslipsResponse{}, err
		}
		generated = append(generated, path)
	}

	slog.Info("pdfs_generated", "manager_id", mgr.EmpID, "count", len(generated))

	return payslip.CreatePayslipsResponse{
		Status:         "ok",
		ManagerID:      mgr.EmpID,
		GeneratedFiles: generated,
	}, nil
}

// SendPayslips implements payslip.PayslipService. Files whose names do not
// resolve to a unique active direct report with an email address are
// reported in the skip list; an SMTP transport failure aborts the rest of
// the batch.
func (s *PayslipServiceImpl) SendPayslips(ctx context.Context, mgr auth.Identity) (payslip.SendPayslipsResponse, error) {
	files, err := s.arch.FindPDFs(mgr.EmpID)
	if err != nil {
		if errors.Is(err, archive.ErrNoArtifact) {
			return payslip.SendPayslipsResponse{}, payslip.ErrNoPayslipsFound
		}
		return payslip.SendPayslipsResponse{}, fmt.Errorf("failed to locate payslips: %w", err)
	}

	sent := []payslip.SentPayslip{}
	skipped := []payslip.SkippedPayslip{}

	for _, path := range files {
		base := filepath.Base(path)
		firstName, lastName, ok := splitPayslipName(base)
		if !ok {
			skipped = append(skipped, payslip.SkippedPayslip{File: base, Reason: payslip.SkipReasonInvalidName})
			continue
		}

		emp, err := s.employeeRepo.FindDirectReportByName(ctx, mgr.EmpID, firstName, lastName)
		if err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				skipped = append(skipped, payslip.SkippedPayslip{File: base, Reason: payslip.SkipReasonNotFound})
				slog.Warn("pdf_skipped", "file", base, "reason", payslip.SkipReasonNotFound)
				continue
			}
			return payslip.SendPayslipsResponse{}, fmt.Errorf("failed to resolve recipient for %s: %w", base, err)
		}
		if emp.Email == "" {
			skipped = append(skipped, payslip.SkippedPayslip{File: base, Reason: payslip.SkipReasonNotFound})
			continue
		}

		subject := fmt.Sprintf("Payslip - %s", s.now().Format("January 2006"))
		body := fmt.Sprintf(
			"Hello %s,\n\n"+
				"Please find attached your payslip for the current month.\n"+
				"The PDF is password-protected with your CNP.\n\n"+
				"Best regards,\n"+
				"Slip Salary App",
			emp.FirstName,
		)

		if err := s.mailer.Send(email.Message{
			To:             emp.Email,
			Subject:        subject,
			Body:           body,
			AttachmentPath: path,
			MIMEType:       "application/pdf",
		}); err != nil {
			return payslip.SendPayslipsResponse{}, err
		}

		slog.Info("pdf_sent", "to", emp.Email, "file", base)

		archivedTo, err := s.arch.ArchiveSent(path)
		if err != nil {
			return payslip.SendPayslipsResponse{}, err
		}

		sent = append(sent, payslip.SentPayslip{
			Employee:   emp.FullName(),
			Email:      emp.Email,
			File:       base,
			ArchivedTo: archivedTo,
		})
	}

	return payslip.SendPayslipsResponse{
		Status:    "sent",
		ManagerID: mgr.EmpID,
		SentTo:    sent,
		Skipped:   skipped,
	}, nil
}

// splitPayslipName extracts the recipient's first and last name from a file
// named {first}_{last}_{YYYY_MM}.pdf.
func splitPayslipName(base string) (firstName, lastName string, ok bool) {
	name := strings.TrimSuffix(base, filepath.Ext(base))
	parts := strings.Split(name, "_")
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

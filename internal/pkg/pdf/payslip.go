// Package pdf renders the per-employee payslip document and applies the
// password protection that keeps it readable only by its recipient.
package pdf

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/shopspring/decimal"
)

// Payslip carries everything printed on a single payslip page.
type Payslip struct {
	FullName     string
	CNP          string
	Email        string
	Grade        string
	HireDate     time.Time
	BaseSalary   decimal.Decimal
	BonusTotal   decimal.Decimal
	VacationDays int
	SalaryToPay  decimal.Decimal
}

// Generate renders the payslip to path and re-saves it AES-128 encrypted
// with the employee's CNP as both owner and user password. The document is
// unreadable without the recipient's own national ID.
func Generate(slip Payslip, path string) error {
	if err := render(slip, path); err != nil {
		return err
	}
	return encrypt(path, slip.CNP)
}

func render(slip Payslip, path string) error {
	doc := fpdf.New("P", "pt", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 18)
	doc.Text(50, 80, "Payslip - current month")

	doc.SetFont("Helvetica", "", 12)
	const top = 120.0
	doc.Text(50, top, fmt.Sprintf("Employee name: %s", slip.FullName))
	doc.Text(50, top+20, fmt.Sprintf("CNP: %s", slip.CNP))
	doc.Text(50, top+40, fmt.Sprintf("Email: %s", slip.Email))
	doc.Text(50, top+60, fmt.Sprintf("Grade: %s", slip.Grade))
	doc.Text(50, top+80, fmt.Sprintf("Hire date: %s", slip.HireDate.Format("2006-01-02")))

	doc.SetFont("Helvetica", "B", 14)
	doc.Text(50, top+120, "Salary details")
	doc.SetFont("Helvetica", "", 12)
	doc.Text(50, top+140, fmt.Sprintf("Base salary: %s RON", slip.BaseSalary.StringFixed(2)))
	doc.Text(50, top+160, fmt.Sprintf("Bonuses (current month): %s RON", slip.BonusTotal.StringFixed(2)))
	doc.Text(50, top+180, fmt.Sprintf("Vacation days: %d", slip.VacationDays))
	doc.Text(50, top+200, fmt.Sprintf("Total salary to pay: %s RON", slip.SalaryToPay.StringFixed(2)))

	if err := doc.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to render payslip: %w", err)
	}
	return nil
}

func encrypt(path, password string) error {
	conf := model.NewAESConfiguration(password, password, 128)
	if err := api.EncryptFile(path, "", conf); err != nil {
		return fmt.Errorf("failed to encrypt payslip: %w", err)
	}
	return nil
}

package payslip

import "errors"

var (
	// ErrNoPayslipsFound means no generated PDFs exist for the manager.
	ErrNoPayslipsFound = errors.New("no PDF files found for manager")
)

package payroll

import "errors"

var (
	// ErrNoReportFound means no aggregated CSV has been generated yet.
	ErrNoReportFound = errors.New("no aggregated CSV found for manager")
)

package payslip

type CreatePayslipsResponse struct {
	Status         string   `json:"status"`
	ManagerID      int      `json:"manager_id"`
	GeneratedFiles []string `json:"generated_files"`
}

type SentPayslip struct {
	Employee   string `json:"employee"`
	Email      string `json:"email"`
	File       string `json:"file"`
	ArchivedTo string `json:"archived_to"`
}

type SkippedPayslip struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

type SendPayslipsResponse struct {
	Status    string           `json:"status"`
	ManagerID int              `json:"manager_id"`
	SentTo    []SentPayslip    `json:"sent_to"`
	Skipped   []SkippedPayslip `json:"skipped"`
}

// Skip reasons reported back to the caller for files that could not be
// matched to a recipient. Transport failures are not skips.
const (
	SkipReasonInvalidName = "invalid_name"
	SkipReasonNotFound    = "employee_not_found_or_no_email"
)

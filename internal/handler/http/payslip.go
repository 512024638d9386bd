package http

import (
	"net/http"

	"github.com/slipsalary/payroll-backend-go/internal/domain/auth"
	"github.com/slipsalary/payroll-backend-go/internal/domain/payslip"
	"github.com/slipsalary/payroll-backend-go/internal/handler/http/response"
)

type PayslipHandler interface {
	CreatePayslips(w http.ResponseWriter, r *http.Request)
	SendPayslips(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	payslipService payslip.PayslipService
}

func NewPayslipHandler(payslipService payslip.PayslipService) PayslipHandler {
	return &payslipHandlerImpl{payslipService: payslipService}
}

func (h *payslipHandlerImpl) CreatePayslips(w http.ResponseWriter, r *http.Request) {
	mgr, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.payslipService.CreatePayslips(r.Context(), mgr)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

func (h *payslipHandlerImpl) SendPayslips(w http.ResponseWriter, r *http.Request) {
	mgr, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.payslipService.SendPayslips(r.Context(), mgr)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

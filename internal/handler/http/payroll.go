package http

import (
	"net/http"

	"github.com/slipsalary/payroll-backend-go/internal/domain/auth"
	"github.com/slipsalary/payroll-backend-go/internal/domain/payroll"
	"github.com/slipsalary/payroll-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	CreateAggregated(w http.ResponseWriter, r *http.Request)
	SendAggregated(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) CreateAggregated(w http.ResponseWriter, r *http.Request) {
	mgr, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.payrollService.CreateAggregated(r.Context(), mgr)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

func (h *payrollHandlerImpl) SendAggregated(w http.ResponseWriter, r *http.Request) {
	mgr, ok := auth.IdentityFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.payrollService.SendAggregated(r.Context(), mgr)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.OK(w, result)
}

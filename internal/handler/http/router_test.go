package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slipsalary/payroll-backend-go/internal/domain/auth"
	"github.com/slipsalary/payroll-backend-go/internal/domain/employee"
	"github.com/slipsalary/payroll-backend-go/internal/domain/payroll"
	"github.com/slipsalary/payroll-backend-go/internal/domain/payslip"
	"github.com/slipsalary/payroll-backend-go/internal/pkg/jwt"
	authservice "github.com/slipsalary/payroll-backend-go/internal/service/auth"
)

type stubEmployeeRepo struct {
	emp employee.Employee
	err error
}

func (s *stubEmployeeRepo) GetActiveByID(context.Context, int) (employee.Employee, error) {
	return s.emp, s.err
}

func (s *stubEmployeeRepo) GetActiveManager(context.Context, int) (employee.Employee, error) {
	return s.emp, s.err
}

func (s *stubEmployeeRepo) GetByEmailAndCNP(context.Context, string, string) (employee.Employee, error) {
	return s.emp, s.err
}

func (s *stubEmployeeRepo) ListDirectReports(context.Context, int) ([]employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) FindDirectReportByName(context.Context, int, string, string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) BonusTotals(context.Context, time.Time) (map[int]decimal.Decimal, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) VacationDaysTaken(context.Context, time.Time, time.Time) (map[int]int, error) {
	return nil, nil
}

type stubPayrollService struct {
	createErr error
	sendErr   error
	gotMgr    auth.Identity
}

func (s *stubPayrollService) CreateAggregated(_ context.Context, mgr auth.Identity) (payroll.CreateAggregatedResponse, error) {
	s.gotMgr = mgr
	if s.createErr != nil {
		return payroll.CreateAggregatedResponse{}, s.createErr
	}
	return payroll.CreateAggregatedResponse{Status: "ok", ManagerID: mgr.EmpID}, nil
}

func (s *stubPayrollService) SendAggregated(_ context.Context, mgr auth.Identity) (payroll.SendAggregatedResponse, error) {
	s.gotMgr = mgr
	if s.sendErr != nil {
		return payroll.SendAggregatedResponse{}, s.sendErr
	}
	return payroll.SendAggregatedResponse{Status: "sent", To: mgr.Email}, nil
}

type stubPayslipService struct {
	createErr error
	sendErr   error
}

func (s *stubPayslipService) CreatePayslips(_ context.Context, mgr auth.Identity) (payslip.CreatePayslipsResponse, error) {
	if s.createErr != nil {
		return payslip.CreatePayslipsResponse{}, s.createErr
	}
	return payslip.CreatePayslipsResponse{Status: "ok", ManagerID: mgr.EmpID}, nil
}

func (s *stubPayslipService) SendPayslips(_ context.Context, mgr auth.Identity) (payslip.SendPayslipsResponse, error) {
	if s.sendErr != nil {
		return payslip.SendPayslipsResponse{}, s.sendErr
	}
	return payslip.SendPayslipsResponse{Status: "sent", ManagerID: mgr.EmpID}, nil
}

type testEnv struct {
	router   http.Handler
	jwt      jwt.Service
	repo     *stubEmployeeRepo
	payroll  *stubPayrollService
	payslips *stubPayslipService
}

func activeManager() employee.Employee {
	return employee.Employee{
		EmpID:     3,
		FirstName: "Radu",
		LastName:  "Manager",
		CNP:       "1800101123456",
		Email:     "radu.manager@example.com",
		Role:      employee.RoleManager,
		IsActive:  true,
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	jwtService := jwt.NewJWTService("test-secret", 120)
	repo := &stubEmployeeRepo{emp: activeManager()}
	payrollSvc := &stubPayrollService{}
	payslipSvc := &stubPayslipService{}

	authHandler := NewAuthHandler(authservice.NewAuthService(repo, jwtService), jwtService, "test-secret", 120)
	router := NewRouter(
		jwtService,
		repo,
		authHandler,
		NewPayrollHandler(payrollSvc),
		NewPayslipHandler(payslipSvc),
	)

	return &testEnv{
		router:   router,
		jwt:      jwtService,
		repo:     repo,
		payroll:  payrollSvc,
		payslips: payslipSvc,
	}
}

func (e *testEnv) request(t *testing.T, method, target, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) managerToken(t *testing.T) string {
	t.Helper()
	token, _, err := e.jwt.GenerateAccessToken(activeManager())
	require.NoError(t, err)
	return token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRoot(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Slip Salary App - Connected", rec.Body.String())
}

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/auth/login",
		`{"email":"radu.manager@example.com","cnp":"1800101123456"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["access_token"])
	assert.Equal(t, float64(3), body["emp_id"])
	assert.Equal(t, "MANAGER", body["role"])
	assert.Equal(t, float64(120*60), body["expires_in"])
	assert.Equal(t, "Radu Manager", body["name"])
}

func TestLoginEndpoint_MalformedBody(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/auth/login", `{not json`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email and cnp are required", decodeBody(t, rec)["error"])
}

func TestLoginEndpoint_MissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodPost, "/auth/login", `{}`, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginEndpoint_InvalidCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.repo.err = employee.ErrEmployeeNotFound

	rec := env.request(t, http.MethodPost, "/auth/login",
		`{"email":"nobody@example.com","cnp":"1800101123456"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid credentials", decodeBody(t, rec)["error"])
}

func TestProtectedEndpoint_MissingToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/createAggregatedEmployeeData", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedEndpoint_GarbageToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/createAggregatedEmployeeData", "", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedEndpoint_NonAccessTokenType(t *testing.T) {
	env := newTestEnv(t)

	now := time.Now()
	_, token, err := env.jwt.JWTAuth().Encode(map[string]interface{}{
		"sub":  "3",
		"type": "refresh",
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	})
	require.NoError(t, err)

	rec := env.request(t, http.MethodGet, "/createAggregatedEmployeeData", "", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid token", decodeBody(t, rec)["error"])
}

func TestProtectedEndpoint_InactiveUser(t *testing.T) {
	env := newTestEnv(t)
	token := env.managerToken(t)
	env.repo.err = employee.ErrEmployeeNotFound

	rec := env.request(t, http.MethodGet, "/createAggregatedEmployeeData", "", token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "user not found or inactive", decodeBody(t, rec)["error"])
}

func TestProtectedEndpoint_NonManagerRole(t *testing.T) {
	env := newTestEnv(t)
	token := env.managerToken(t)
	env.repo.emp.Role = employee.RoleEmployee

	rec := env.request(t, http.MethodGet, "/createAggregatedEmployeeData", "", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "manager role required", decodeBody(t, rec)["error"])
}

func TestProtectedEndpoint_ManagerIDMismatch(t *testing.T) {
	env := newTestEnv(t)
	token := env.managerToken(t)

	rec := env.request(t, http.MethodGet, "/createAggregatedEmployeeData?manager_id=7", "", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "manager can only access their own data", decodeBody(t, rec)["error"])
}

func TestProtectedEndpoint_ManagerIDMismatchInBody(t *testing.T) {
	env := newTestEnv(t)
	token := env.managerToken(t)

	rec := env.request(t, http.MethodPost, "/createAggregatedEmployeeData", `{"manager_id":7}`, token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestProtectedEndpoint_MatchingManagerID(t *testing.T) {
	env := newTestEnv(t)
	token := env.managerToken(t)

	rec := env.request(t, http.MethodGet, "/createAggregatedEmployeeData?manager_id=3", "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(3), body["manager_id"])
	assert.Equal(t, 3, env.payroll.gotMgr.EmpID)
	assert.Equal(t, "radu.manager@example.com", env.payroll.gotMgr.Email)
}

func TestSendAggregatedEndpoint_NoReport(t *testing.T) {
	env := newTestEnv(t)
	token := env.managerToken(t)
	env.payroll.sendErr = payroll.ErrNoReportFound

	rec := env.request(t, http.MethodPost, "/sendAggregatedEmployeeData", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No aggregated CSV found for manager", decodeBody(t, rec)["error"])
}

func TestSendPayslipsEndpoint_NoFiles(t *testing.T) {
	env := newTestEnv(t)
	token := env.managerToken(t)
	env.payslips.sendErr = payslip.ErrNoPayslipsFound

	rec := env.request(t, http.MethodGet, "/sendPdfToEmployees", "", token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No PDF files found for manager_id", decodeBody(t, rec)["error"])
}

func TestCreatePayslipsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	token := env.managerToken(t)

	rec := env.request(t, http.MethodPost, "/createPdfForEmployees", "", token)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestDebugJWT(t *testing.T) {
	env := newTestEnv(t)
	token := env.managerToken(t)

	rec := env.request(t, http.MethodGet, "/auth/debug-jwt", "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["has_bearer_prefix"])
	assert.Equal(t, true, body["decode_ok"])

	payload, ok := body["payload"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "3", payload["sub"])
	assert.Equal(t, "MANAGER", payload["role"])
}

func TestDebugJWT_WithoutToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(t, http.MethodGet, "/auth/debug-jwt", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["has_authorization_header"])
	assert.Equal(t, float64(0), body["token_length"])
}

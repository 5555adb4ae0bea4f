package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"employee-portal-backend/internal/apperror"
	"employee-portal-backend/internal/auth"
	"employee-portal-backend/internal/middleware"
	"employee-portal-backend/internal/model"
	"employee-portal-backend/internal/service"
)

type stubLeaveService struct {
	applyFn          func(caller auth.Caller, leaveDate string) (*model.Attendance, error)
	approveFn        func(caller auth.Caller, leaveID uint) error
	listApprovableFn func(caller auth.Caller) ([]model.Attendance, error)
}

func (s *stubLeaveService) Apply(caller auth.Caller, leaveDate string) (*model.Attendance, error) {
	if s.applyFn == nil {
		return &model.Attendance{}, nil
	}
	return s.applyFn(caller, leaveDate)
}

func (s *stubLeaveService) Approve(caller auth.Caller, leaveID uint) error {
	if s.approveFn == nil {
		return nil
	}
	return s.approveFn(caller, leaveID)
}

func (s *stubLeaveService) ListApprovable(caller auth.Caller) ([]model.Attendance, error) {
	if s.listApprovableFn == nil {
		return nil, nil
	}
	return s.listApprovableFn(caller)
}

func (s *stubLeaveService) ListPending(caller auth.Caller) ([]model.Attendance, error) {
	return nil, nil
}

func (s *stubLeaveService) ListByEmployee(empID string) ([]model.Attendance, error) {
	return nil, nil
}

func (s *stubLeaveService) ListAll(page, limit int) ([]model.Attendance, service.Pagination, error) {
	return nil, service.Pagination{}, nil
}

func newTestApp(svc service.LeaveService) *fiber.App {
	app := fiber.New()
	hdl := NewAttendanceHandler(svc)

	api := app.Group("/api/attendance", middleware.Auth)
	api.Post("/apply", hdl.ApplyLeave)
	api.Patch("/approve/:id", hdl.ApproveLeave)
	api.Get("/getLeavesForApproval", hdl.GetLeavesForApproval)
	return app
}

func authedRequest(t *testing.T, method, target, body string, caller auth.Caller) *http.Request {
	t.Helper()

	token, err := auth.NewToken(caller, []byte("test-secret"), time.Hour)
	require.NoError(t, err)

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	return req
}

func TestApproveLeaveStatusMapping(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"success", nil, fiber.StatusOK},
		{"forbidden", apperror.New(apperror.CodeForbidden, "you can only approve leaves for your direct subordinates"), fiber.StatusForbidden},
		{"not found", apperror.New(apperror.CodeNotFound, "leave not found"), fiber.StatusNotFound},
		{"conflict", apperror.New(apperror.CodeConflict, "leave already approved"), fiber.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubLeaveService{
				approveFn: func(caller auth.Caller, leaveID uint) error {
					assert.Equal(t, uint(42), leaveID)
					assert.Equal(t, "EMP004", caller.EmpID)
					return tt.err
				},
			}
			app := newTestApp(svc)

			req := authedRequest(t, http.MethodPatch, "/api/attendance/approve/42", "", auth.EmployeeCaller("EMP004", "manager"))
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestApproveLeaveRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	app := newTestApp(&stubLeaveService{})

	req := httptest.NewRequest(http.MethodPatch, "/api/attendance/approve/42", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestApplyLeavePassesCaller(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := &stubLeaveService{
		applyFn: func(caller auth.Caller, leaveDate string) (*model.Attendance, error) {
			assert.Equal(t, "EMP010", caller.EmpID)
			assert.Equal(t, "2026-03-15", leaveDate)
			return &model.Attendance{ID: 1, EmployeeID: caller.EmpID, AttendanceDate: leaveDate, IsAbsent: true}, nil
		},
	}
	app := newTestApp(svc)

	req := authedRequest(t, http.MethodPost, "/api/attendance/apply", `{"leave_date":"2026-03-15"}`, auth.EmployeeCaller("EMP010", "employee"))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestGetLeavesForApprovalReturnsCount(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	svc := &stubLeaveService{
		listApprovableFn: func(caller auth.Caller) ([]model.Attendance, error) {
			assert.True(t, caller.Owner)
			return []model.Attendance{
				{ID: 2, AttendanceDate: "2026-03-16", IsAbsent: true},
				{ID: 1, AttendanceDate: "2026-03-15", IsAbsent: true},
			}, nil
		},
	}
	app := newTestApp(svc)

	req := authedRequest(t, http.MethodGet, "/api/attendance/getLeavesForApproval", "", auth.OwnerCaller())
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Leaves []model.Attendance `json:"leaves"`
		Count  int                `json:"count"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body.Count)
	require.Len(t, body.Leaves, 2)
	assert.Equal(t, uint(2), body.Leaves[0].ID)
}

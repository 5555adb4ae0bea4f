package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"employee-portal-backend/internal/apperror"
	"employee-portal-backend/internal/auth"
	"employee-portal-backend/internal/model"
)

type stubAttendanceRepo struct {
	createFn         func(record *model.Attendance) error
	listApprovableFn func(caller auth.Caller) ([]model.Attendance, error)
	listAllFn        func(offset, limit int) ([]model.Attendance, int64, error)
}

func (s *stubAttendanceRepo) Create(record *model.Attendance) error {
	if s.createFn == nil {
		return nil
	}
	return s.createFn(record)
}

func (s *stubAttendanceRepo) GetByID(id uint) (*model.Attendance, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubAttendanceRepo) ListApprovable(caller auth.Caller) ([]model.Attendance, error) {
	if s.listApprovableFn == nil {
		return nil, nil
	}
	return s.listApprovableFn(caller)
}

func (s *stubAttendanceRepo) ListPending(caller auth.Caller) ([]model.Attendance, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) ListByEmployee(empID string) ([]model.Attendance, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) ListAll(offset, limit int) ([]model.Attendance, int64, error) {
	if s.listAllFn == nil {
		return nil, 0, nil
	}
	return s.listAllFn(offset, limit)
}

func strPtr(s string) *string { return &s }

func TestApplyCreatesPendingAbsence(t *testing.T) {
	var created *model.Attendance
	repo := &stubAttendanceRepo{
		createFn: func(record *model.Attendance) error {
			created = record
			return nil
		},
	}
	svc := NewLeaveService(nil, repo, &stubEmployeeRepo{}, nil)

	record, err := svc.Apply(auth.EmployeeCaller("EMP010", "employee"), "2026-03-15")
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "EMP010", record.EmployeeID)
	assert.Equal(t, "2026-03-15", record.AttendanceDate)
	assert.True(t, record.IsAbsent)
	assert.False(t, record.IsApproved)
	assert.Nil(t, record.ApprovedBy)
}

func TestApplyRejectsOwnerAndBadDates(t *testing.T) {
	svc := NewLeaveService(nil, &stubAttendanceRepo{}, &stubEmployeeRepo{}, nil)

	_, err := svc.Apply(auth.OwnerCaller(), "2026-03-15")
	assert.Equal(t, apperror.CodeValidation, apperror.GetCode(err))

	_, err = svc.Apply(auth.EmployeeCaller("EMP010", "employee"), "")
	assert.Equal(t, apperror.CodeValidation, apperror.GetCode(err))

	_, err = svc.Apply(auth.EmployeeCaller("EMP010", "employee"), "15-03-2026")
	assert.Equal(t, apperror.CodeValidation, apperror.GetCode(err))
}

func TestApprovalUpdatesDirectReportRule(t *testing.T) {
	leave := &model.Attendance{ID: 7, EmployeeID: "EMP010", IsAbsent: true}
	owner := &model.Employee{ID: "EMP010", Role: "employee", ManagerID: strPtr("EMP004")}

	// The direct manager approves and is recorded.
	updates, err := approvalUpdates(auth.EmployeeCaller("EMP004", "manager"), leave, owner)
	require.NoError(t, err)
	assert.Equal(t, true, updates["is_approved"])
	assert.Equal(t, "EMP004", updates["approved_by"])

	// A different manager is rejected before any state is touched.
	_, err = approvalUpdates(auth.EmployeeCaller("EMP005", "manager"), leave, owner)
	assert.Equal(t, apperror.CodeForbidden, apperror.GetCode(err))
}

func TestApprovalUpdatesOwnerLeavesApproverUnset(t *testing.T) {
	leave := &model.Attendance{ID: 7, EmployeeID: "EMP010", IsAbsent: true}
	owner := &model.Employee{ID: "EMP010", Role: "employee"}

	updates, err := approvalUpdates(auth.OwnerCaller(), leave, owner)
	require.NoError(t, err)
	assert.Equal(t, true, updates["is_approved"])
	assert.Nil(t, updates["approved_by"])
}

func TestApprovalUpdatesHRRule(t *testing.T) {
	leave := &model.Attendance{ID: 3, EmployeeID: "EMP002", IsAbsent: true}
	hrOwned := &model.Employee{ID: "EMP002", Role: "hr", ManagerID: strPtr("EMP001")}

	// HR on HR fails regardless of manager wiring.
	_, err := approvalUpdates(auth.EmployeeCaller("EMP006", "hr"), leave, hrOwned)
	assert.Equal(t, apperror.CodeForbidden, apperror.GetCode(err))

	// The owner is unconditional.
	_, err = approvalUpdates(auth.OwnerCaller(), leave, hrOwned)
	assert.NoError(t, err)
}

func TestApprovalUpdatesDoubleApprovalConflicts(t *testing.T) {
	leave := &model.Attendance{ID: 7, EmployeeID: "EMP010", IsAbsent: true, IsApproved: true, ApprovedBy: strPtr("EMP004")}
	owner := &model.Employee{ID: "EMP010", Role: "employee", ManagerID: strPtr("EMP004")}

	_, err := approvalUpdates(auth.EmployeeCaller("EMP004", "manager"), leave, owner)
	assert.Equal(t, apperror.CodeConflict, apperror.GetCode(err))

	// An unauthorized caller still sees Forbidden, not Conflict.
	_, err = approvalUpdates(auth.EmployeeCaller("EMP005", "manager"), leave, owner)
	assert.Equal(t, apperror.CodeForbidden, apperror.GetCode(err))
}

func TestApprovalUpdatesEmployeeForbidden(t *testing.T) {
	leave := &model.Attendance{ID: 9, EmployeeID: "EMP011", IsAbsent: true}
	owner := &model.Employee{ID: "EMP011", Role: "employee", ManagerID: strPtr("EMP010")}

	_, err := approvalUpdates(auth.EmployeeCaller("EMP010", "employee"), leave, owner)
	assert.Equal(t, apperror.CodeForbidden, apperror.GetCode(err))
}

func TestListApprovableShortCircuitsForEmployees(t *testing.T) {
	repo := &stubAttendanceRepo{
		listApprovableFn: func(caller auth.Caller) ([]model.Attendance, error) {
			t.Fatal("repository must not be queried for employee callers")
			return nil, nil
		},
	}
	svc := NewLeaveService(nil, repo, &stubEmployeeRepo{}, nil)

	leaves, err := svc.ListApprovable(auth.EmployeeCaller("EMP010", "employee"))
	require.NoError(t, err)
	assert.Empty(t, leaves)
}

func TestListAllPagination(t *testing.T) {
	var gotOffset, gotLimit int
	repo := &stubAttendanceRepo{
		listAllFn: func(offset, limit int) ([]model.Attendance, int64, error) {
			gotOffset, gotLimit = offset, limit
			return make([]model.Attendance, 10), 25, nil
		},
	}
	svc := NewLeaveService(nil, repo, &stubEmployeeRepo{}, nil)

	_, pagination, err := svc.ListAll(2, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, gotOffset)
	assert.Equal(t, 10, gotLimit)
	assert.Equal(t, int64(25), pagination.Total)
	assert.Equal(t, 3, pagination.TotalPages)
}

// The visibility filter and the approval authorizer must agree: a leave shows
// up on a caller's approval screen exactly when approving it would not be
// Forbidden. visibleTo mirrors the repository's SQL conditions.
func TestVisibilityMatchesAuthority(t *testing.T) {
	emp001 := "EMP001"
	emp003 := "EMP003"

	staff := []model.Employee{
		{ID: "EMP001", Role: "manager"},
		{ID: "EMP002", Role: "hr", ManagerID: &emp001},
		{ID: "EMP003", Role: "team leader", ManagerID: &emp001},
		{ID: "EMP004", Role: "employee", ManagerID: &emp003},
		{ID: "EMP005", Role: "employee"},
		{ID: "EMP006", Role: "hr", ManagerID: &emp001},
	}
	byID := map[string]model.Employee{}
	for _, emp := range staff {
		byID[emp.ID] = emp
	}

	var leaves []model.Attendance
	for i, emp := range staff {
		leaves = append(leaves, model.Attendance{ID: uint(i + 1), EmployeeID: emp.ID, IsAbsent: true})
	}

	visibleTo := func(caller auth.Caller, owner model.Employee) bool {
		switch {
		case caller.Owner:
			return true
		case auth.NormalizeRole(caller.Role) == auth.RoleHR:
			return auth.NormalizeRole(owner.Role) != auth.RoleHR
		case auth.NormalizeRole(caller.Role) == auth.RoleEmployee:
			return false
		default:
			return owner.ManagerID != nil && *owner.ManagerID == caller.EmpID
		}
	}

	callers := []auth.Caller{
		auth.OwnerCaller(),
		auth.EmployeeCaller("EMP001", "manager"),
		auth.EmployeeCaller("EMP002", "hr"),
		auth.EmployeeCaller("EMP003", "team leader"),
		auth.EmployeeCaller("EMP004", "employee"),
		auth.EmployeeCaller("EMP006", "hr"),
	}

	for _, caller := range callers {
		for _, leave := range leaves {
			owner := byID[leave.EmployeeID]
			assert.Equal(t,
				visibleTo(caller, owner),
				auth.CanApprove(caller, owner.Role, owner.ManagerID),
				"caller=%+v leave owner=%s", caller, owner.ID,
			)
		}
	}
}

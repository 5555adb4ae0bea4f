package auth

import "employee-portal-backend/internal/apperror"

var (
	ErrSelfManager     = apperror.New(apperror.CodeValidation, "employee cannot be their own manager")
	ErrEmployeeManager = apperror.New(apperror.CodeValidation, "manager cannot have role 'employee'")
)

// CanApprove is the single approval-authority rule. ownerRole and
// ownerManagerID describe the employee owning the leave, read fresh from the
// store at decision time, never from the caller's session.
//
//   - owner approves anything
//   - hr approves anything except another hr's leave
//   - employee approves nothing
//   - every other role only approves its direct reports
func CanApprove(caller Caller, ownerRole string, ownerManagerID *string) bool {
	if caller.Owner {
		return true
	}

	switch NormalizeRole(caller.Role) {
	case RoleHR:
		return NormalizeRole(ownerRole) != RoleHR
	case RoleEmployee:
		return false
	default:
		return ownerManagerID != nil && *ownerManagerID == caller.EmpID
	}
}

// ValidateManagerAssignment enforces the hierarchy constraints on wiring an
// employee to a manager. strict additionally rejects managers with the
// employee role (the edit path); initial assignment mirrors the original
// looser rule. Existence of both ids is the caller's concern.
func ValidateManagerAssignment(empID, managerID, managerRole string, strict bool) error {
	if empID == managerID {
		return ErrSelfManager
	}
	if strict && NormalizeRole(managerRole) == RoleEmployee {
		return ErrEmployeeManager
	}
	return nil
}

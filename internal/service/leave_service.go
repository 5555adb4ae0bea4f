package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"employee-portal-backend/internal/apperror"
	"employee-portal-backend/internal/auth"
	"employee-portal-backend/internal/mailer"
	"employee-portal-backend/internal/model"
	"employee-portal-backend/internal/repository"
)

type LeaveService interface {
	Apply(caller auth.Caller, leaveDate string) (*model.Attendance, error)
	Approve(caller auth.Caller, leaveID uint) error
	ListApprovable(caller auth.Caller) ([]model.Attendance, error)
	ListPending(caller auth.Caller) ([]model.Attendance, error)
	ListByEmployee(empID string) ([]model.Attendance, error)
	ListAll(page, limit int) ([]model.Attendance, Pagination, error)
}

type leaveService struct {
	db         *gorm.DB
	attendance repository.AttendanceRepository
	employees  repository.EmployeeRepository
	mail       *mailer.Mailer
}

func NewLeaveService(db *gorm.DB, attendance repository.AttendanceRepository, employees repository.EmployeeRepository, mail *mailer.Mailer) LeaveService {
	return &leaveService{
		db:         db,
		attendance: attendance,
		employees:  employees,
		mail:       mail,
	}
}

func (s *leaveService) Apply(caller auth.Caller, leaveDate string) (*model.Attendance, error) {
	if caller.Owner {
		return nil, apperror.New(apperror.CodeValidation, "the owner has no leave records")
	}
	if leaveDate == "" {
		return nil, apperror.New(apperror.CodeValidation, "leave_date is required")
	}
	if _, err := time.Parse("2006-01-02", leaveDate); err != nil {
		return nil, apperror.New(apperror.CodeValidation, "leave_date must be YYYY-MM-DD")
	}

	record := model.Attendance{
		EmployeeID:     caller.EmpID,
		AttendanceDate: leaveDate,
		IsAbsent:       true,
	}
	if err := s.attendance.Create(&record); err != nil {
		return nil, fmt.Errorf("create leave: %w", err)
	}

	// Respond immediately; the manager notification runs in the background.
	go s.notifyManager(caller.EmpID, leaveDate)

	return &record, nil
}

// Approve re-reads the owning employee's current role and manager inside a
// single transaction, with the employee row locked, so a concurrent manager
// reassignment cannot slip between the authority check and the write.
func (s *leaveService) Approve(caller auth.Caller, leaveID uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var leave model.Attendance
		if err := tx.First(&leave, leaveID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.New(apperror.CodeNotFound, "leave not found")
			}
			return fmt.Errorf("load leave: %w", err)
		}

		var owner model.Employee
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&owner, "id = ?", leave.EmployeeID).Error; err != nil {
			return fmt.Errorf("load leave owner: %w", err)
		}

		updates, err := approvalUpdates(caller, &leave, &owner)
		if err != nil {
			return err
		}

		if err := tx.Model(&model.Attendance{}).Where("id = ?", leave.ID).Updates(updates).Error; err != nil {
			return fmt.Errorf("approve leave: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{"leave_id": leaveID, "approver": approverLabel(caller)}).Info("leave approved")
	return nil
}

// approvalUpdates decides an approval attempt against the owning employee's
// current role and manager. Authority is checked before the double-approval
// guard, so an unauthorized second approver still gets Forbidden.
func approvalUpdates(caller auth.Caller, leave *model.Attendance, owner *model.Employee) (map[string]interface{}, error) {
	if !auth.CanApprove(caller, owner.Role, owner.ManagerID) {
		if auth.NormalizeRole(caller.Role) == auth.RoleHR {
			return nil, apperror.New(apperror.CodeForbidden, "HR cannot approve leaves for other HR employees")
		}
		return nil, apperror.New(apperror.CodeForbidden, "you can only approve leaves for your direct subordinates")
	}

	if leave.IsApproved {
		return nil, apperror.New(apperror.CodeConflict, "leave already approved")
	}

	// The synthetic owner is not an employee row, so its approvals leave
	// approved_by empty.
	updates := map[string]interface{}{"is_approved": true}
	if caller.Owner {
		updates["approved_by"] = nil
	} else {
		updates["approved_by"] = caller.EmpID
	}
	return updates, nil
}

func (s *leaveService) ListApprovable(caller auth.Caller) ([]model.Attendance, error) {
	if !caller.Owner && auth.NormalizeRole(caller.Role) == auth.RoleEmployee {
		// Employees have no approval authority, so their approval
		// screen is always empty.
		return []model.Attendance{}, nil
	}

	list, err := s.attendance.ListApprovable(caller)
	if err != nil {
		return nil, fmt.Errorf("list approvable leaves: %w", err)
	}
	return list, nil
}

func (s *leaveService) ListPending(caller auth.Caller) ([]model.Attendance, error) {
	list, err := s.attendance.ListPending(caller)
	if err != nil {
		return nil, fmt.Errorf("list pending leaves: %w", err)
	}
	return list, nil
}

func (s *leaveService) ListByEmployee(empID string) ([]model.Attendance, error) {
	list, err := s.attendance.ListByEmployee(empID)
	if err != nil {
		return nil, fmt.Errorf("list employee leaves: %w", err)
	}
	return list, nil
}

func (s *leaveService) ListAll(page, limit int) ([]model.Attendance, Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	list, total, err := s.attendance.ListAll((page-1)*limit, limit)
	if err != nil {
		return nil, Pagination{}, fmt.Errorf("list leaves: %w", err)
	}
	return list, newPagination(total, page, limit), nil
}

func (s *leaveService) notifyManager(empID, leaveDate string) {
	if s.mail == nil || !s.mail.Enabled() {
		return
	}

	emp, err := s.employees.FindByID(empID)
	if err != nil {
		logrus.WithError(err).WithField("emp_id", empID).Warn("leave notification: employee lookup failed")
		return
	}
	if emp.Manager == nil || emp.Manager.Email == "" {
		return
	}

	_ = s.mail.NotifyLeaveApplied(emp.Manager.Email, emp.Name, leaveDate)
}

func approverLabel(caller auth.Caller) string {
	if caller.Owner {
		return "owner"
	}
	return caller.EmpID
}

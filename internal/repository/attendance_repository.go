package repository

import (
	"employee-portal-backend/internal/auth"
	"employee-portal-backend/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	Create(record *model.Attendance) error
	GetByID(id uint) (*model.Attendance, error)
	ListApprovable(caller auth.Caller) ([]model.Attendance, error)
	ListPending(caller auth.Caller) ([]model.Attendance, error)
	ListByEmployee(empID string) ([]model.Attendance, error)
	ListAll(offset, limit int) ([]model.Attendance, int64, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) Create(record *model.Attendance) error {
	return r.db.Create(record).Error
}

func (r *attendanceRepository) GetByID(id uint) (*model.Attendance, error) {
	var record model.Attendance
	err := r.db.Preload("Employee").First(&record, id).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListApprovable is the read-side projection of auth.CanApprove: every row it
// returns is a row the caller would be authorized to approve. Newest leave
// date first; ties keep insertion order.
func (r *attendanceRepository) ListApprovable(caller auth.Caller) ([]model.Attendance, error) {
	q := r.db.Joins("JOIN employees ON employees.id = attendances.employee_id").
		Where("attendances.is_absent = ? AND attendances.is_approved = ?", true, false)

	switch {
	case caller.Owner:
		// every pending absence
	case auth.NormalizeRole(caller.Role) == auth.RoleHR:
		q = q.Where("LOWER(employees.role) != ?", auth.RoleHR)
	default:
		q = q.Where("employees.manager_id = ?", caller.EmpID)
	}

	var list []model.Attendance
	err := q.Preload("Employee").Preload("Approver").
		Order("attendances.attendance_date desc, attendances.id asc").
		Find(&list).Error
	return list, err
}

// ListPending returns every unapproved record visible on the caller's
// attendance dashboard. Unlike ListApprovable it keeps rows that are not
// absences, so pending check-in corrections show up too.
func (r *attendanceRepository) ListPending(caller auth.Caller) ([]model.Attendance, error) {
	q := r.db.Joins("JOIN employees ON employees.id = attendances.employee_id").
		Where("attendances.is_approved = ?", false)

	role := auth.NormalizeRole(caller.Role)
	if !caller.Owner && role != auth.RoleHR {
		q = q.Where("employees.manager_id = ?", caller.EmpID)
	}

	var list []model.Attendance
	err := q.Preload("Employee").
		Order("attendances.attendance_date desc, attendances.id asc").
		Find(&list).Error
	return list, err
}

func (r *attendanceRepository) ListByEmployee(empID string) ([]model.Attendance, error) {
	var list []model.Attendance
	err := r.db.Where("employee_id = ?", empID).
		Preload("Employee").
		Order("attendance_date desc, id asc").
		Find(&list).Error
	return list, err
}

func (r *attendanceRepository) ListAll(offset, limit int) ([]model.Attendance, int64, error) {
	var total int64
	if err := r.db.Model(&model.Attendance{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Attendance
	err := r.db.Preload("Employee").
		Order("attendance_date desc, id asc").
		Offset(offset).Limit(limit).
		Find(&list).Error
	return list, total, err
}

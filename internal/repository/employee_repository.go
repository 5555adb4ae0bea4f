package repository

import (
	"employee-portal-backend/internal/model"

	"gorm.io/gorm"
)

type EmployeeRepository interface {
	Create(emp *model.Employee) error
	Update(emp *model.Employee) error
	FindByID(id string) (*model.Employee, error)
	FindByIDAndRole(id, role string) (*model.Employee, error)
	LastID() (string, error)
	UpdateManager(empID string, managerID *string) error
	ListSubordinates(managerID string, offset, limit int) ([]model.Employee, int64, error)
	ListAll(offset, limit int) ([]model.Employee, int64, error)
	ListAllWithManager() ([]model.Employee, error)
	ListByRole(role string) ([]model.Employee, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db}
}

func (r *employeeRepository) Create(emp *model.Employee) error {
	return r.db.Create(emp).Error
}

func (r *employeeRepository) Update(emp *model.Employee) error {
	return r.db.Save(emp).Error
}

func (r *employeeRepository) FindByID(id string) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.Preload("Manager").First(&emp, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) FindByIDAndRole(id, role string) (*model.Employee, error) {
	var emp model.Employee
	err := r.db.Preload("Manager").
		Where("id = ? AND LOWER(role) = ?", id, role).
		First(&emp).Error
	if err != nil {
		return nil, err
	}
	return &emp, nil
}

// LastID returns the highest assigned employee id. The EMP### zero-padded
// format keeps lexicographic and numeric order identical.
func (r *employeeRepository) LastID() (string, error) {
	var emp model.Employee
	err := r.db.Order("id desc").Select("id").First(&emp).Error
	if err != nil {
		return "", err
	}
	return emp.ID, nil
}

func (r *employeeRepository) UpdateManager(empID string, managerID *string) error {
	return r.db.Model(&model.Employee{}).
		Where("id = ?", empID).
		Update("manager_id", managerID).Error
}

func (r *employeeRepository) ListSubordinates(managerID string, offset, limit int) ([]model.Employee, int64, error) {
	var total int64
	if err := r.db.Model(&model.Employee{}).
		Where("manager_id = ?", managerID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Employee
	err := r.db.Where("manager_id = ?", managerID).
		Order("id asc").
		Offset(offset).Limit(limit).
		Find(&list).Error
	return list, total, err
}

func (r *employeeRepository) ListAll(offset, limit int) ([]model.Employee, int64, error) {
	var total int64
	if err := r.db.Model(&model.Employee{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var list []model.Employee
	err := r.db.Order("id asc").Offset(offset).Limit(limit).Find(&list).Error
	return list, total, err
}

func (r *employeeRepository) ListAllWithManager() ([]model.Employee, error) {
	var list []model.Employee
	err := r.db.Preload("Manager").Order("id asc").Find(&list).Error
	return list, err
}

func (r *employeeRepository) ListByRole(role string) ([]model.Employee, error) {
	var list []model.Employee
	err := r.db.Where("LOWER(role) = ?", role).Order("id asc").Find(&list).Error
	return list, err
}

package repository

import (
	"employee-portal-backend/internal/model"

	"gorm.io/gorm"
)

type SalaryRepository interface {
	Create(salary *model.Salary) error
	FindForMonth(empID, monthStart, monthEnd string) (*model.Salary, error)
	MonthlySalary(empID string) (int, error)
}

type salaryRepository struct {
	db *gorm.DB
}

func NewSalaryRepository(db *gorm.DB) SalaryRepository {
	return &salaryRepository{db}
}

func (r *salaryRepository) Create(salary *model.Salary) error {
	return r.db.Create(salary).Error
}

func (r *salaryRepository) FindForMonth(empID, monthStart, monthEnd string) (*model.Salary, error) {
	var salary model.Salary
	err := r.db.Preload("Employee").
		Where("employee_id = ? AND salary_month >= ? AND salary_month <= ?", empID, monthStart, monthEnd).
		First(&salary).Error
	if err != nil {
		return nil, err
	}
	return &salary, nil
}

// MonthlySalary reads the employee's current monthly salary, the figure the
// simplified month lookup returns.
func (r *salaryRepository) MonthlySalary(empID string) (int, error) {
	var emp model.Employee
	err := r.db.Select("monthly_salary").First(&emp, "id = ?", empID).Error
	if err != nil {
		return 0, err
	}
	return emp.MonthlySalary, nil
}

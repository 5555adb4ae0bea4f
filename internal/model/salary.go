package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Salary is a read-mostly monthly snapshot derived from the employee's
// monthly salary at the time the snapshot was taken.
type Salary struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	EmployeeID   string          `json:"employee_id" gorm:"size:10;not null;index"`
	SalaryMonth  string          `json:"salary_month" gorm:"size:10;not null"` // first day of month, YYYY-MM-DD
	SalaryAmount decimal.Decimal `json:"salary_amount" gorm:"type:decimal(12,2);not null"`

	Employee Employee `json:"employee" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"created_at"`
}

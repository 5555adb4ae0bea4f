package model

import "time"

// Employee IDs are assigned sequentially in the form EMP001, EMP002, ...
// The owner account is not an employee row; it lives in configuration only.
type Employee struct {
	ID            string  `json:"id" gorm:"primaryKey;size:10"`
	Name          string  `json:"name" gorm:"size:30;not null"`
	Email         string  `json:"email" gorm:"size:50;unique;not null"`
	Password      string  `json:"-" gorm:"size:255;not null"`
	ContactNumber string  `json:"contact_number" gorm:"size:15;unique;not null"`
	Address       string  `json:"address" gorm:"type:text;not null"`
	DOB           string  `json:"dob" gorm:"size:10"`
	JoiningDate   string  `json:"joining_date" gorm:"size:10;not null"`
	MonthlySalary int     `json:"monthly_salary" gorm:"not null"`
	Role          string  `json:"role" gorm:"size:50;not null"`
	LeavesAllowed int     `json:"leaves_allowed" gorm:"default:15"`
	ManagerID     *string `json:"manager_id" gorm:"size:10"`

	// Relations
	Manager      *Employee    `json:"manager,omitempty" gorm:"foreignKey:ManagerID;constraint:OnDelete:SET NULL"`
	Subordinates []Employee   `json:"subordinates,omitempty" gorm:"foreignKey:ManagerID"`
	Attendance   []Attendance `json:"attendance,omitempty" gorm:"foreignKey:EmployeeID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

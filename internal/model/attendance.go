package model

import "time"

// Attendance doubles as the leave record: applying for leave inserts a row
// with IsAbsent=true and IsApproved=false. Approval flips IsApproved exactly
// once and records the approver, except for the owner, who is not a row and
// therefore leaves ApprovedBy empty.
type Attendance struct {
	ID             uint    `json:"id" gorm:"primaryKey"`
	EmployeeID     string  `json:"employee_id" gorm:"size:10;not null;index"`
	AttendanceDate string  `json:"attendance_date" gorm:"size:10;not null"` // YYYY-MM-DD
	IsAbsent       bool    `json:"is_absent" gorm:"not null;default:false"`
	IsApproved     bool    `json:"is_approved" gorm:"not null;default:false"`
	ApprovedBy     *string `json:"approved_by" gorm:"size:10"`

	// Relations
	Employee Employee  `json:"employee" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
	Approver *Employee `json:"approver,omitempty" gorm:"foreignKey:ApprovedBy;constraint:OnDelete:SET NULL"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

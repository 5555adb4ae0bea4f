package model

import "time"

type Holiday struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	HolidayDate string `json:"holiday_date" gorm:"size:10;unique;not null"` // YYYY-MM-DD
	HolidayName string `json:"holiday_name" gorm:"size:100;not null"`

	CreatedAt time.Time `json:"created_at"`
}

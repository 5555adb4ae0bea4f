package service

import "employee-portal-backend/internal/model"

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

func newPagination(total int64, page, limit int) Pagination {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return Pagination{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}

type LoginInput struct {
	EmpID    string `json:"empId"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginResult struct {
	Token string `json:"token"`
	EmpID string `json:"empId"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type CreateEmployeeInput struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required"`
	ContactNumber string `json:"contact_number" validate:"required"`
	Address       string `json:"address" validate:"required"`
	DOB           string `json:"dob"`
	JoiningDate   string `json:"joining_date" validate:"required"`
	MonthlySalary int    `json:"monthly_salary" validate:"required"`
	Role          string `json:"role" validate:"required"`
}

type EditEmployeeInput struct {
	Name          string  `json:"name" validate:"required"`
	Email         string  `json:"email" validate:"required,email"`
	ContactNumber string  `json:"contact_number" validate:"required"`
	Address       string  `json:"address" validate:"required"`
	DOB           string  `json:"dob" validate:"required"`
	MonthlySalary int     `json:"monthly_salary" validate:"required"`
	Role          string  `json:"role" validate:"required"`
	ManagerID     *string `json:"manager_id"`
}

type EmployeeData struct {
	Employee     *model.Employee  `json:"employee"`
	Manager      *model.Employee  `json:"manager"`
	Subordinates []model.Employee `json:"subordinates"`
	Pagination   Pagination       `json:"pagination"`
}

type EmployeeWithManager struct {
	model.Employee
	ManagerName string `json:"manager_name"`
}

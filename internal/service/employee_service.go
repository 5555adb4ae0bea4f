package service

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"employee-portal-backend/config"
	"employee-portal-backend/internal/apperror"
	"employee-portal-backend/internal/auth"
	"employee-portal-backend/internal/model"
	"employee-portal-backend/internal/repository"
)

// Sessions keep the role captured at login for their whole lifetime.
const sessionTTL = 30 * 24 * time.Hour

type EmployeeService interface {
	Login(input LoginInput) (*LoginResult, error)
	Create(input CreateEmployeeInput) (string, error)
	Edit(empID string, input EditEmployeeInput) error
	AssignManager(empID, managerID string) error
	GetData(caller auth.Caller, page, limit int) (*EmployeeData, error)
	ListAllWithManager() ([]EmployeeWithManager, error)
	ListManagerCandidates(empID string) ([]model.Employee, error)
}

type employeeService struct {
	repo     repository.EmployeeRepository
	validate *validator.Validate
}

func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return &employeeService{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *employeeService) Login(input LoginInput) (*LoginResult, error) {
	if input.EmpID == "" || input.Password == "" || input.Role == "" {
		return nil, apperror.New(apperror.CodeValidation, "empId, password and role are required")
	}

	role := auth.NormalizeRole(input.Role)

	// The owner is authenticated against configuration, never the store.
	if role == auth.RoleOwner {
		ownerID, ownerPass := config.OwnerCredentials()
		if input.EmpID != ownerID || input.Password != ownerPass || ownerPass == "" {
			return nil, apperror.New(apperror.CodeUnauthenticated, "invalid owner credentials")
		}

		token, err := auth.NewToken(auth.OwnerCaller(), config.JWTSecret(), sessionTTL)
		if err != nil {
			return nil, fmt.Errorf("sign owner token: %w", err)
		}
		return &LoginResult{Token: token, Name: "owner", Role: auth.RoleOwner}, nil
	}

	if !auth.IsValidRole(role) {
		return nil, apperror.New(apperror.CodeForbidden, "role not allowed to login")
	}

	emp, err := s.repo.FindByIDAndRole(input.EmpID, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.CodeUnauthenticated, "bad credentials")
		}
		return nil, fmt.Errorf("load employee: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(emp.Password), []byte(input.Password)); err != nil {
		return nil, apperror.New(apperror.CodeUnauthenticated, "bad credentials")
	}

	token, err := auth.NewToken(auth.EmployeeCaller(emp.ID, role), config.JWTSecret(), sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	logrus.WithFields(logrus.Fields{"emp_id": emp.ID, "role": role}).Info("employee logged in")

	return &LoginResult{Token: token, EmpID: emp.ID, Name: emp.Name, Role: role}, nil
}

func (s *employeeService) Create(input CreateEmployeeInput) (string, error) {
	if err := s.validate.Struct(input); err != nil {
		return "", apperror.New(apperror.CodeValidation, "missing required fields: "+err.Error())
	}

	role := auth.NormalizeRole(input.Role)
	if !auth.IsValidRole(role) {
		return "", apperror.New(apperror.CodeValidation, "unknown role")
	}
	if role == auth.RoleOwner {
		return "", apperror.New(apperror.CodeValidation, "owner is not a storable employee")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), 10)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	id, err := s.nextEmployeeID()
	if err != nil {
		return "", err
	}

	emp := model.Employee{
		ID:            id,
		Name:          input.Name,
		Email:         input.Email,
		Password:      string(hashed),
		ContactNumber: input.ContactNumber,
		Address:       input.Address,
		DOB:           input.DOB,
		JoiningDate:   input.JoiningDate,
		MonthlySalary: input.MonthlySalary,
		Role:          role,
		LeavesAllowed: 15,
	}

	if err := s.repo.Create(&emp); err != nil {
		return "", mapDatabaseError(err)
	}

	logrus.WithFields(logrus.Fields{"emp_id": id, "role": role}).Info("employee created")

	return id, nil
}

func (s *employeeService) Edit(empID string, input EditEmployeeInput) error {
	if err := s.validate.Struct(input); err != nil {
		return apperror.New(apperror.CodeValidation, "missing required fields: "+err.Error())
	}

	role := auth.NormalizeRole(input.Role)
	if !auth.IsValidRole(role) || role == auth.RoleOwner {
		return apperror.New(apperror.CodeValidation, "unknown role")
	}

	emp, err := s.repo.FindByID(empID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.CodeNotFound, "employee not found")
		}
		return fmt.Errorf("load employee: %w", err)
	}

	if input.ManagerID != nil {
		manager, err := s.repo.FindByID(*input.ManagerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.New(apperror.CodeNotFound, "manager not found")
			}
			return fmt.Errorf("load manager: %w", err)
		}

		// The edit path enforces the stricter rule: an employee-role
		// manager cannot manage anyone.
		if err := auth.ValidateManagerAssignment(empID, manager.ID, manager.Role, true); err != nil {
			return err
		}
	}

	emp.Name = input.Name
	emp.Email = input.Email
	emp.ContactNumber = input.ContactNumber
	emp.Address = input.Address
	emp.DOB = input.DOB
	emp.MonthlySalary = input.MonthlySalary
	emp.Role = role
	emp.ManagerID = input.ManagerID
	emp.Manager = nil

	if err := s.repo.Update(emp); err != nil {
		return mapDatabaseError(err)
	}
	return nil
}

func (s *employeeService) AssignManager(empID, managerID string) error {
	if empID == "" || managerID == "" {
		return apperror.New(apperror.CodeValidation, "empId and managerId are required")
	}

	if _, err := s.repo.FindByID(empID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.CodeNotFound, "employee not found")
		}
		return fmt.Errorf("load employee: %w", err)
	}

	manager, err := s.repo.FindByID(managerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.New(apperror.CodeNotFound, "manager not found")
		}
		return fmt.Errorf("load manager: %w", err)
	}

	if err := auth.ValidateManagerAssignment(empID, manager.ID, manager.Role, false); err != nil {
		return err
	}

	if err := s.repo.UpdateManager(empID, &managerID); err != nil {
		return fmt.Errorf("assign manager: %w", err)
	}
	return nil
}

func (s *employeeService) GetData(caller auth.Caller, page, limit int) (*EmployeeData, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	if caller.Owner {
		employees, total, err := s.repo.ListAll(offset, limit)
		if err != nil {
			return nil, fmt.Errorf("list employees: %w", err)
		}
		return &EmployeeData{
			Employee:     &model.Employee{Name: "owner", Role: auth.RoleOwner},
			Subordinates: employees,
			Pagination:   newPagination(total, page, limit),
		}, nil
	}

	emp, err := s.repo.FindByID(caller.EmpID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.CodeNotFound, "employee not found")
		}
		return nil, fmt.Errorf("load employee: %w", err)
	}

	subordinates, total, err := s.repo.ListSubordinates(emp.ID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("list subordinates: %w", err)
	}

	manager := emp.Manager
	emp.Manager = nil

	return &EmployeeData{
		Employee:     emp,
		Manager:      manager,
		Subordinates: subordinates,
		Pagination:   newPagination(total, page, limit),
	}, nil
}

func (s *employeeService) ListAllWithManager() ([]EmployeeWithManager, error) {
	employees, err := s.repo.ListAllWithManager()
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	result := make([]EmployeeWithManager, 0, len(employees))
	for _, emp := range employees {
		managerName := ""
		if emp.Manager != nil {
			managerName = emp.Manager.Name
		}
		emp.Manager = nil
		result = append(result, EmployeeWithManager{Employee: emp, ManagerName: managerName})
	}
	return result, nil
}

// ListManagerCandidates returns the employees holding the role directly
// above the given employee in the reporting hierarchy, the default pool for
// the assign-manager feature.
func (s *employeeService) ListManagerCandidates(empID string) ([]model.Employee, error) {
	emp, err := s.repo.FindByID(empID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.New(apperror.CodeNotFound, "employee not found")
		}
		return nil, fmt.Errorf("load employee: %w", err)
	}

	nextRole, ok := auth.NextApprover(emp.Role)
	if !ok {
		// Top of the reporting hierarchy: nobody above a manager.
		return []model.Employee{}, nil
	}

	candidates, err := s.repo.ListByRole(nextRole)
	if err != nil {
		return nil, fmt.Errorf("list manager candidates: %w", err)
	}

	// An employee can never be its own manager.
	result := candidates[:0]
	for _, candidate := range candidates {
		if candidate.ID != emp.ID {
			result = append(result, candidate)
		}
	}
	return result, nil
}

func (s *employeeService) nextEmployeeID() (string, error) {
	lastID, err := s.repo.LastID()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "EMP001", nil
		}
		return "", fmt.Errorf("load last employee id: %w", err)
	}

	num, err := strconv.Atoi(strings.TrimPrefix(lastID, "EMP"))
	if err != nil {
		return "", fmt.Errorf("malformed employee id %q: %w", lastID, err)
	}
	return fmt.Sprintf("EMP%03d", num+1), nil
}

func mapDatabaseError(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return apperror.New(apperror.CodeConflict, "email or contact number already in use")
	}
	return err
}

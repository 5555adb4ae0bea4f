package database

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"employee-portal-backend/internal/auth"
	"employee-portal-backend/internal/model"
)

// SeedAll inserts a small hierarchy for local development: a manager, an HR
// employee, a team leader under the manager and two employees under the team
// leader. Everyone's password is "password123". Re-running is safe.
func SeedAll(db *gorm.DB) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), 10)

	managerID := "EMP001"
	hrID := "EMP002"
	leadID := "EMP003"

	employees := []model.Employee{
		{
			ID: managerID, Name: "Asha Verma", Email: "asha.verma@example.com",
			ContactNumber: "9000000001", Address: "12 Lake View Road",
			DOB: "1984-02-11", JoiningDate: "2015-06-01",
			MonthlySalary: 180000, Role: auth.RoleManager, LeavesAllowed: 15,
		},
		{
			ID: hrID, Name: "Rohan Iyer", Email: "rohan.iyer@example.com",
			ContactNumber: "9000000002", Address: "4 Garden Street",
			DOB: "1990-09-23", JoiningDate: "2018-01-15",
			MonthlySalary: 95000, Role: auth.RoleHR, LeavesAllowed: 15,
			ManagerID: &managerID,
		},
		{
			ID: leadID, Name: "Priya Nair", Email: "priya.nair@example.com",
			ContactNumber: "9000000003", Address: "77 Hill Crest",
			DOB: "1992-12-05", JoiningDate: "2019-08-20",
			MonthlySalary: 85000, Role: auth.RoleTeamLeader, LeavesAllowed: 15,
			ManagerID: &managerID,
		},
		{
			ID: "EMP004", Name: "Dev Patel", Email: "dev.patel@example.com",
			ContactNumber: "9000000004", Address: "3 River Side",
			DOB: "1996-04-30", JoiningDate: "2021-03-10",
			MonthlySalary: 55000, Role: auth.RoleEmployee, LeavesAllowed: 15,
			ManagerID: &leadID,
		},
		{
			ID: "EMP005", Name: "Meera Shah", Email: "meera.shah@example.com",
			ContactNumber: "9000000005", Address: "9 Palm Avenue",
			DOB: "1998-07-18", JoiningDate: "2022-11-01",
			MonthlySalary: 52000, Role: auth.RoleEmployee, LeavesAllowed: 15,
			ManagerID: &leadID,
		},
	}

	for _, emp := range employees {
		emp.Password = string(hashed)
		if err := db.FirstOrCreate(&emp, model.Employee{ID: emp.ID}).Error; err != nil {
			logrus.WithError(err).WithField("emp_id", emp.ID).Warn("seed employee failed")
		}
	}

	holidays := []model.Holiday{
		{HolidayDate: "2026-01-01", HolidayName: "New Year's Day"},
		{HolidayDate: "2026-01-26", HolidayName: "Republic Day"},
		{HolidayDate: "2026-08-15", HolidayName: "Independence Day"},
		{HolidayDate: "2026-12-25", HolidayName: "Christmas Day"},
	}
	for _, holiday := range holidays {
		if err := db.FirstOrCreate(&holiday, model.Holiday{HolidayDate: holiday.HolidayDate}).Error; err != nil {
			logrus.WithError(err).WithField("date", holiday.HolidayDate).Warn("seed holiday failed")
		}
	}

	// One salary snapshot per employee for the current seed month.
	for _, emp := range employees {
		snapshot := model.Salary{
			EmployeeID:   emp.ID,
			SalaryMonth:  "2026-01-01",
			SalaryAmount: decimal.NewFromInt(int64(emp.MonthlySalary)),
		}
		if err := db.FirstOrCreate(&snapshot, model.Salary{EmployeeID: emp.ID, SalaryMonth: snapshot.SalaryMonth}).Error; err != nil {
			logrus.WithError(err).WithField("emp_id", emp.ID).Warn("seed salary failed")
		}
	}

	logrus.Info("seeding finished")
}

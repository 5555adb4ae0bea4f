package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"employee-portal-backend/internal/model"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := GetEnv("DATABASE_DSN", fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASS", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "employee_portal"),
	))

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}

	// Auto migration keeps the schema in step with the model structs.
	if err := db.AutoMigrate(
		&model.Employee{},
		&model.Attendance{},
		&model.Holiday{},
		&model.Salary{},
	); err != nil {
		logrus.WithError(err).Fatal("auto migration failed")
	}

	logrus.Info("database connected")

	DB = db
}

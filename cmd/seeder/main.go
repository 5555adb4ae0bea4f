package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"employee-portal-backend/config"
	"employee-portal-backend/internal/database"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env not found, using system environment variables")
	}

	config.ConnectDB()

	logrus.Info("seeding database")
	database.SeedAll(config.DB)
}

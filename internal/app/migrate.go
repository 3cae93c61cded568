package app

import (
	"github.com/piyushraj0718/payrollmanagement/internal/attendance"
	"github.com/piyushraj0718/payrollmanagement/internal/auth"
	"github.com/piyushraj0718/payrollmanagement/internal/config"
	"github.com/piyushraj0718/payrollmanagement/internal/contact"
	"github.com/piyushraj0718/payrollmanagement/internal/employee"
	"github.com/piyushraj0718/payrollmanagement/internal/messaging/kafka"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Migrate creates or updates every table the services use.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&auth.User{},
		&employee.Employee{},
		&attendance.Attendance{},
		&contact.ContactMessage{},
		&kafka.OutboxRecord{},
	)
}

func RunMigrate(cfg config.Config) error {
	logger := zap.L().Named("app.migrate")

	gormDB, sqlDB, err := openDatabase(cfg.DB, logger)
	if err != nil {
		return err
	}
	defer closeQuietly(logger, "database", sqlDB.Close)

	if err := Migrate(gormDB); err != nil {
		return err
	}
	logger.Info("schema migrated")
	return nil
}

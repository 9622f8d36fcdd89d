package config

import (
	"fmt"

	"hr-portal-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ConnectDB opens the MySQL connection and migrates the schema.
// TranslateError is enabled so a duplicate reference insert surfaces as
// gorm.ErrDuplicatedKey, which the request usecase retries on.
func ConnectDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(cfg.DatabaseDSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Request{},
		&model.ComplianceEvent{},
		&model.NotificationLog{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}

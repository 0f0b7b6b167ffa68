package db

import (
	"log"
	"os"
	"time"

	"github.com/instalink/backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect establishes a connection to the database
func Connect(dsn string) (*gorm.DB, error) {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			Colorful:      false,
		},
	)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: false,
		Logger:      newLogger,
	})
}

// Migrate creates or updates the instagram_accounts table.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&models.InstagramAccount{})
}

package client

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"marketplace-backend/internal/model"
)

// InitSqliteClient opens the database and migrates every collection,
// including both order partitions (they share the ImportedOrder schema).
func InitSqliteClient(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.ServiceListing{},
		&model.Category{},
		&model.Transaction{},
		&model.Review{},
		&model.Event{},
		&model.OrderNotification{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	for _, partition := range []model.OrderPartition{model.PartitionActive, model.PartitionCancelled} {
		if err := db.Table(string(partition)).AutoMigrate(&model.ImportedOrder{}); err != nil {
			return nil, fmt.Errorf("migrate partition %s: %w", partition, err)
		}
	}

	return db, nil
}

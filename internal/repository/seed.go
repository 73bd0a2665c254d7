package repository

import (
	"context"
	"fmt"

	"invoice-dashboard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SeedData struct {
	Customers []models.Customer
	Invoices  []models.Invoice
	Revenue   []models.Revenue
}

// Seed inserts data, ignoring rows whose primary key already exists.
func Seed(ctx context.Context, db *gorm.DB, data SeedData) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(data.Customers) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&data.Customers).Error; err != nil {
				return fmt.Errorf("seed customers: %w", err)
			}
		}
		if len(data.Invoices) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&data.Invoices).Error; err != nil {
				return fmt.Errorf("seed invoices: %w", err)
			}
		}
		if len(data.Revenue) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&data.Revenue).Error; err != nil {
				return fmt.Errorf("seed revenue: %w", err)
			}
		}
		return nil
	})
}

package repository

import (
	"context"
	"fmt"

	"invoice-dashboard/internal/models"

	"gorm.io/gorm"
)

type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// FetchCustomers returns the customer select options ordered by name.
func (r *CustomerRepository) FetchCustomers(ctx context.Context) ([]models.CustomerField, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("fetch customers: %w", err)
	}

	fields := make([]models.CustomerField, len(customers))
	for i, c := range customers {
		fields[i] = models.CustomerField{ID: c.ID.String(), Name: c.Name}
	}
	return fields, nil
}

func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return count, nil
}

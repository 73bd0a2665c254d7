package repository

import (
	"context"
	"fmt"

	"invoice-dashboard/internal/models"

	"gorm.io/gorm"
)

type RevenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

// FetchRevenue returns the stored months in calendar order.
func (r *RevenueRepository) FetchRevenue(ctx context.Context) ([]models.Revenue, error) {
	var rows []models.Revenue
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch revenue: %w", err)
	}

	byMonth := make(map[string]models.Revenue, len(rows))
	for _, row := range rows {
		byMonth[row.Month] = row
	}

	ordered := make([]models.Revenue, 0, len(rows))
	for _, m := range models.Months {
		if row, ok := byMonth[m]; ok {
			ordered = append(ordered, row)
		}
	}
	return ordered, nil
}

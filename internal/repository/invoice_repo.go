package repository

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"invoice-dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ItemsPerPage is the number of rows on one page of the invoices table.
const ItemsPerPage = 6

const latestInvoicesLimit = 5

const customerJoin = "JOIN customers ON invoices.customer_id = CAST(customers.id AS TEXT)"

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Create inserts a single invoice row.
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

// Update overwrites customer, amount and status of the invoice matching id.
// The invoice date is never touched.
func (r *InvoiceRepository) Update(ctx context.Context, id uuid.UUID, customerID string, amountInCents int64, status models.InvoiceStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"customer_id": customerID,
			"amount":      amountInCents,
			"status":      status,
		}).Error
}

// Delete removes the invoice matching id. Deleting an unknown id is not an error.
func (r *InvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Invoice{}, "id = ?", id).Error
}

// GetByID fetch a single invoice by ID
func (r *InvoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrInvoiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// filtered narrows invoices joined with customers to rows where any of
// customer name, email, amount, date or status contains query.
func (r *InvoiceRepository) filtered(ctx context.Context, query string) *gorm.DB {
	dbQuery := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Joins(customerJoin)

	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		dbQuery = dbQuery.Where(
			"LOWER(customers.name) LIKE ? OR LOWER(customers.email) LIKE ? OR "+
				"CAST(invoices.amount AS TEXT) LIKE ? OR CAST(invoices.date AS TEXT) LIKE ? OR "+
				"LOWER(invoices.status) LIKE ?",
			like, like, like, like, like,
		)
	}
	return dbQuery
}

// FetchFilteredInvoices returns one page of the invoices table, newest first.
func (r *InvoiceRepository) FetchFilteredInvoices(ctx context.Context, query string, currentPage int) ([]models.InvoicesTable, error) {
	if currentPage < 1 {
		currentPage = 1
	}

	var rows []models.InvoicesTable
	err := r.filtered(ctx, query).
		Select("invoices.id, invoices.amount, invoices.date, invoices.status, " +
			"customers.name, customers.email, customers.image_url").
		Order("invoices.date DESC").
		Order("invoices.id").
		Limit(ItemsPerPage).
		Offset((currentPage - 1) * ItemsPerPage).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetch filtered invoices: %w", err)
	}
	return rows, nil
}

// FetchInvoicesPages returns how many pages the filtered table spans.
func (r *InvoiceRepository) FetchInvoicesPages(ctx context.Context, query string) (int, error) {
	var count int64
	if err := r.filtered(ctx, query).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return int(math.Ceil(float64(count) / ItemsPerPage)), nil
}

// FetchLatestInvoices returns the most recent invoices with their customers.
func (r *InvoiceRepository) FetchLatestInvoices(ctx context.Context) ([]models.LatestInvoice, error) {
	var rows []models.LatestInvoice
	err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Joins(customerJoin).
		Select("invoices.id, invoices.amount, customers.name, customers.email, customers.image_url").
		Order("invoices.date DESC").
		Order("invoices.id").
		Limit(latestInvoicesLimit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetch latest invoices: %w", err)
	}
	return rows, nil
}

// StatusTotals returns invoice count and amount sum grouped by status.
func (r *InvoiceRepository) StatusTotals(ctx context.Context) ([]models.StatusTotal, error) {
	var rows []models.StatusTotal
	err := r.db.WithContext(ctx).
		Model(&models.Invoice{}).
		Select("status, COUNT(*) as count, COALESCE(SUM(amount),0) as sum").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("status totals: %w", err)
	}
	return rows, nil
}

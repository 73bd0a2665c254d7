package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// DateLayout is the YYYY-MM-DD form invoice dates are assigned and displayed in.
const DateLayout = "2006-01-02"

// Invoice amounts are stored in cents.
type Invoice struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CustomerID string         `gorm:"index;not null"`
	Amount     int64          `gorm:"not null"`
	Status     InvoiceStatus  `gorm:"index;not null"`
	Date       datatypes.Date `gorm:"index;not null"`
}

// DateString renders Date as YYYY-MM-DD.
func (i *Invoice) DateString() string {
	return time.Time(i.Date).Format(DateLayout)
}

// InvoicesTable is one row of the searchable invoices table.
type InvoicesTable struct {
	ID       uuid.UUID
	Name     string
	Email    string
	ImageURL string
	Date     datatypes.Date
	Amount   int64
	Status   InvoiceStatus
}

type LatestInvoice struct {
	ID       uuid.UUID
	Name     string
	Email    string
	ImageURL string
	Amount   int64
}

type StatusTotal struct {
	Status InvoiceStatus
	Count  int64
	Sum    int64
}

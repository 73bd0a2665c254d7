// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"context"
	"testing"
	"time"

	"invoice-dashboard/internal/models"
	"invoice-dashboard/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// NewDB opens a private in-memory SQLite database with the dashboard schema.
//
// Each call gets its own database, so tests can run in parallel.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps the shared-cache database free of lock contention.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, repository.Migrate(db))
	return db
}

// NewSeededDB is NewDB loaded with Fixtures.
func NewSeededDB(t *testing.T) *gorm.DB {
	t.Helper()

	db := NewDB(t)
	require.NoError(t, repository.Seed(context.Background(), db, Fixtures()))
	return db
}

// Date builds a UTC calendar date.
func Date(year int, month time.Month, day int) datatypes.Date {
	return datatypes.Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

var (
	AcmeID    = uuid.MustParse("3958dc9e-712f-4377-85e9-fec4b6a6442a")
	GlobexID  = uuid.MustParse("3958dc9e-742f-4377-85e9-fec4b6a6442a")
	InitechID = uuid.MustParse("76d65c26-f784-44a2-ac19-586678f7c2f2")

	AcmePaidID    = uuid.MustParse("cc27c14a-0acf-4f4a-a6c9-d45682c144b9")
	AcmePendingID = uuid.MustParse("3958dc9e-737f-4377-85e9-fec4b6a6442a")
	GlobexPaidID  = uuid.MustParse("cc27c14a-0acf-4f4a-a6c9-d45682c144b0")
)

// Fixtures returns three customers, three invoices and three revenue months.
func Fixtures() repository.SeedData {
	return repository.SeedData{
		Customers: []models.Customer{
			{ID: AcmeID, Name: "Acme Corp", Email: "billing@acme.test", ImageURL: "/customers/acme.png"},
			{ID: GlobexID, Name: "Globex", Email: "ap@globex.test", ImageURL: "/customers/globex.png"},
			{ID: InitechID, Name: "Initech", Email: "finance@initech.test", ImageURL: "/customers/initech.png"},
		},
		Invoices: []models.Invoice{
			{ID: AcmePaidID, CustomerID: AcmeID.String(), Amount: 15795, Status: models.InvoiceStatusPaid, Date: Date(2026, time.March, 4)},
			{ID: AcmePendingID, CustomerID: AcmeID.String(), Amount: 20348, Status: models.InvoiceStatusPending, Date: Date(2026, time.August, 5)},
			{ID: GlobexPaidID, CustomerID: GlobexID.String(), Amount: 3040, Status: models.InvoiceStatusPaid, Date: Date(2026, time.June, 27)},
		},
		Revenue: []models.Revenue{
			{Month: "Mar", Revenue: 2200},
			{Month: "Jan", Revenue: 2000},
			{Month: "Feb", Revenue: 1800},
		},
	}
}

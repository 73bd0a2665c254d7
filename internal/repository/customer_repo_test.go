package repository_test

import (
	"context"
	"testing"

	"invoice-dashboard/internal/repository"
	"invoice-dashboard/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerRepository_FetchCustomers(t *testing.T) {
	repo := repository.NewCustomerRepository(testutil.NewSeededDB(t))

	fields, err := repo.FetchCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, fields, 3)

	assert.Equal(t, "Acme Corp", fields[0].Name)
	assert.Equal(t, testutil.AcmeID.String(), fields[0].ID)
	assert.Equal(t, "Globex", fields[1].Name)
	assert.Equal(t, "Initech", fields[2].Name)
}

func TestCustomerRepository_Count(t *testing.T) {
	repo := repository.NewCustomerRepository(testutil.NewSeededDB(t))

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestRevenueRepository_FetchRevenue_CalendarOrder(t *testing.T) {
	repo := repository.NewRevenueRepository(testutil.NewSeededDB(t))

	rows, err := repo.FetchRevenue(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Jan", rows[0].Month)
	assert.Equal(t, "Feb", rows[1].Month)
	assert.Equal(t, "Mar", rows[2].Month)
	assert.Equal(t, int64(2200), rows[2].Revenue)
}

func TestSeed_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSeededDB(t)

	require.NoError(t, repository.Seed(ctx, db, testutil.Fixtures()))

	n, err := repository.NewCustomerRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	pages, err := repository.NewInvoiceRepository(db).FetchInvoicesPages(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}

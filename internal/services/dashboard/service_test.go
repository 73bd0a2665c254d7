package dashboard

import (
	"context"
	"errors"
	"testing"

	"invoice-dashboard/internal/models"
	"invoice-dashboard/internal/repository"
	"invoice-dashboard/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededService(t *testing.T) *Service {
	t.Helper()
	db := testutil.NewSeededDB(t)
	return NewService(
		repository.NewInvoiceRepository(db),
		repository.NewCustomerRepository(db),
		repository.NewRevenueRepository(db),
	)
}

func TestOverview(t *testing.T) {
	s := newSeededService(t)

	ov, err := s.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, CardData{
		NumberOfInvoices:     3,
		NumberOfCustomers:    3,
		TotalPaidInvoices:    "$188.35",
		TotalPendingInvoices: "$203.48",
	}, ov.Cards)

	require.Len(t, ov.LatestInvoices, 3)
	assert.Equal(t, testutil.AcmePendingID, ov.LatestInvoices[0].ID)

	require.Len(t, ov.Revenue.Months, 3)
	assert.Equal(t, int64(3000), ov.Revenue.TopLabel)
	assert.Equal(t, []string{"$3K", "$2K", "$1K", "$0K"}, ov.Revenue.YAxisLabels)
}

func TestCardData_EmptyStore(t *testing.T) {
	db := testutil.NewDB(t)
	s := NewService(repository.NewInvoiceRepository(db), repository.NewCustomerRepository(db), repository.NewRevenueRepository(db))

	cards, err := s.CardData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, CardData{TotalPaidInvoices: "$0.00", TotalPendingInvoices: "$0.00"}, cards)
}

type failingRevenue struct{}

func (failingRevenue) FetchRevenue(context.Context) ([]models.Revenue, error) {
	return nil, errors.New("revenue table missing")
}

func TestOverview_PropagatesFailure(t *testing.T) {
	db := testutil.NewSeededDB(t)
	s := NewService(repository.NewInvoiceRepository(db), repository.NewCustomerRepository(db), failingRevenue{})

	_, err := s.Overview(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "revenue table missing")
}

func TestYAxis(t *testing.T) {
	labels, top := YAxis([]models.Revenue{{Month: "Jan", Revenue: 4800}, {Month: "Feb", Revenue: 1200}})
	assert.Equal(t, int64(5000), top)
	assert.Equal(t, []string{"$5K", "$4K", "$3K", "$2K", "$1K", "$0K"}, labels)

	labels, top = YAxis([]models.Revenue{{Month: "Jan", Revenue: 2000}})
	assert.Equal(t, int64(2000), top)
	assert.Len(t, labels, 3)

	labels, top = YAxis(nil)
	assert.Equal(t, int64(0), top)
	assert.Equal(t, []string{"$0K"}, labels)
}

func TestRevenueChart_BarHeight(t *testing.T) {
	c := RevenueChart{TopLabel: 4000}
	assert.Equal(t, int64(50), c.BarHeight(2000))
	assert.Equal(t, int64(0), RevenueChart{}.BarHeight(100))
}

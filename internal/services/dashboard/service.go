// Package dashboard assembles the overview page: summary cards, the revenue
// chart and the latest invoices.
package dashboard

import (
	"context"
	"fmt"
	"strconv"

	"invoice-dashboard/internal/models"
	"invoice-dashboard/internal/money"

	"golang.org/x/sync/errgroup"
)

type InvoiceReader interface {
	FetchLatestInvoices(ctx context.Context) ([]models.LatestInvoice, error)
	StatusTotals(ctx context.Context) ([]models.StatusTotal, error)
}

type CustomerCounter interface {
	Count(ctx context.Context) (int64, error)
}

type RevenueReader interface {
	FetchRevenue(ctx context.Context) ([]models.Revenue, error)
}

type CardData struct {
	NumberOfInvoices     int64
	NumberOfCustomers    int64
	TotalPaidInvoices    string
	TotalPendingInvoices string
}

type RevenueChart struct {
	Months []models.Revenue
	// YAxisLabels runs from the top label down to "$0K".
	YAxisLabels []string
	TopLabel    int64
}

type Overview struct {
	Cards          CardData
	Revenue        RevenueChart
	LatestInvoices []models.LatestInvoice
}

type Service struct {
	invoices  InvoiceReader
	customers CustomerCounter
	revenue   RevenueReader
}

func NewService(invoices InvoiceReader, customers CustomerCounter, revenue RevenueReader) *Service {
	return &Service{invoices: invoices, customers: customers, revenue: revenue}
}

// Overview fetches the three overview sections concurrently. The first
// failure cancels the others.
func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	var out Overview
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		cards, err := s.CardData(ctx)
		if err != nil {
			return err
		}
		out.Cards = cards
		return nil
	})
	g.Go(func() error {
		chart, err := s.RevenueChart(ctx)
		if err != nil {
			return err
		}
		out.Revenue = chart
		return nil
	})
	g.Go(func() error {
		latest, err := s.invoices.FetchLatestInvoices(ctx)
		if err != nil {
			return err
		}
		out.LatestInvoices = latest
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load overview: %w", err)
	}
	return &out, nil
}

// CardData counts invoices and customers and totals paid and pending amounts.
func (s *Service) CardData(ctx context.Context) (CardData, error) {
	var cards CardData

	totals, err := s.invoices.StatusTotals(ctx)
	if err != nil {
		return cards, err
	}
	customers, err := s.customers.Count(ctx)
	if err != nil {
		return cards, err
	}

	var paid, pending int64
	for _, t := range totals {
		cards.NumberOfInvoices += t.Count
		switch t.Status {
		case models.InvoiceStatusPaid:
			paid = t.Sum
		case models.InvoiceStatusPending:
			pending = t.Sum
		}
	}

	cards.NumberOfCustomers = customers
	cards.TotalPaidInvoices = money.FormatCurrency(paid)
	cards.TotalPendingInvoices = money.FormatCurrency(pending)
	return cards, nil
}

func (s *Service) RevenueChart(ctx context.Context) (RevenueChart, error) {
	months, err := s.revenue.FetchRevenue(ctx)
	if err != nil {
		return RevenueChart{}, err
	}
	labels, top := YAxis(months)
	return RevenueChart{Months: months, YAxisLabels: labels, TopLabel: top}, nil
}

// YAxis labels the revenue chart in steps of $1K up to the highest month
// rounded up to the next thousand.
func YAxis(months []models.Revenue) ([]string, int64) {
	var highest int64
	for _, m := range months {
		if m.Revenue > highest {
			highest = m.Revenue
		}
	}
	top := (highest + 999) / 1000 * 1000

	labels := make([]string, 0, top/1000+1)
	for i := top; i >= 0; i -= 1000 {
		labels = append(labels, "$"+strconv.FormatInt(i/1000, 10)+"K")
	}
	return labels, top
}

// BarHeight is a month's bar height as a percentage of the chart's top label.
func (c RevenueChart) BarHeight(revenue int64) int64 {
	if c.TopLabel == 0 {
		return 0
	}
	return revenue * 100 / c.TopLabel
}

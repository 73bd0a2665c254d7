package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"invoice-dashboard/internal/config"
	"invoice-dashboard/internal/logger"
	"invoice-dashboard/internal/models"
	"invoice-dashboard/internal/repository"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger.Setup(cfg.LogLevel))

	db, err := repository.InitDB(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := repository.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	data := placeholderData()
	if err := repository.Seed(context.Background(), db, data); err != nil {
		slog.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	slog.Info("database seeded",
		"customers", len(data.Customers),
		"invoices", len(data.Invoices),
		"revenue_months", len(data.Revenue),
	)
}

func date(s string) datatypes.Date {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return datatypes.Date(t)
}

func placeholderData() repository.SeedData {
	customers := []models.Customer{
		{ID: uuid.MustParse("d6e15727-9fe1-4961-8c5b-ea44a9bd81aa"), Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
		{ID: uuid.MustParse("3958dc9e-712f-4377-85e9-fec4b6a6442a"), Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
		{ID: uuid.MustParse("3958dc9e-742f-4377-85e9-fec4b6a6442a"), Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
		{ID: uuid.MustParse("76d65c26-f784-44a2-ac19-586678f7c2f2"), Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
		{ID: uuid.MustParse("cc27c14a-0acf-4f4a-a6c9-d45682c144b9"), Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
		{ID: uuid.MustParse("13d07535-c59e-4157-a011-f8d2ef4e0cbb"), Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
	}

	type row struct {
		customer int
		amount   int64
		status   models.InvoiceStatus
		date     string
	}
	rows := []row{
		{0, 15795, models.InvoiceStatusPending, "2022-12-06"},
		{1, 20348, models.InvoiceStatusPending, "2022-11-14"},
		{4, 3040, models.InvoiceStatusPaid, "2022-10-29"},
		{3, 44800, models.InvoiceStatusPaid, "2023-09-10"},
		{5, 34577, models.InvoiceStatusPending, "2023-08-05"},
		{2, 54246, models.InvoiceStatusPending, "2023-07-16"},
		{0, 666, models.InvoiceStatusPending, "2023-06-27"},
		{3, 32545, models.InvoiceStatusPaid, "2023-06-09"},
		{4, 1250, models.InvoiceStatusPaid, "2023-06-17"},
		{5, 8546, models.InvoiceStatusPaid, "2023-06-07"},
		{1, 500, models.InvoiceStatusPaid, "2023-08-19"},
		{5, 8945, models.InvoiceStatusPaid, "2023-06-03"},
		{2, 1000, models.InvoiceStatusPaid, "2022-06-05"},
	}

	// Fixed namespace so reseeding produces the same invoice ids.
	ns := uuid.MustParse("6f1c3b9e-2a0d-4d8e-9b57-0c3f7e5a1d42")
	invoices := make([]models.Invoice, 0, len(rows))
	for i, r := range rows {
		c := customers[r.customer]
		invoices = append(invoices, models.Invoice{
			ID:         uuid.NewSHA1(ns, []byte{byte(i)}),
			CustomerID: c.ID.String(),
			Amount:     r.amount,
			Status:     r.status,
			Date:       date(r.date),
		})
	}

	monthly := []int64{2000, 1800, 2200, 2500, 2300, 3200, 3500, 3700, 2500, 2800, 3000, 4800}
	revenue := make([]models.Revenue, 0, len(models.Months))
	for i, m := range models.Months {
		revenue = append(revenue, models.Revenue{Month: m, Revenue: monthly[i]})
	}

	return repository.SeedData{Customers: customers, Invoices: invoices, Revenue: revenue}
}

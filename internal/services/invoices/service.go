// Package invoices validates and persists invoice form submissions.
package invoices

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"invoice-dashboard/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ListPath is the invoices list route. It is revalidated after every
// successful mutation and is where create and update navigate to.
const ListPath = "/dashboard/invoices"

const (
	MsgCreateInvalid = "Missing Fields. Failed to Create Invoice."
	MsgUpdateInvalid = "Missing Fields. Failed to Update Invoice."
	MsgCreateFailed  = "Database Error: Failed to Create Invoice"
	MsgUpdateFailed  = "Database Error: Failed to Update Invoice"
	MsgDeleted       = "Deleted Invoice"
	MsgDeleteFailed  = "Database Error: Failed to Delete Invoice"
)

// Store is the persistence the pipeline issues its single statements to.
type Store interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	Update(ctx context.Context, id uuid.UUID, customerID string, amountInCents int64, status models.InvoiceStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Revalidator marks a route's rendered data stale.
type Revalidator interface {
	Revalidate(ctx context.Context, path string) error
}

// Result is the outcome of one submission. Exactly one of State and
// Redirect is set, except for a successful delete, which reports a message
// and stays on the current page.
type Result struct {
	State    *FormState
	Redirect string
}

// Navigates reports whether the caller must redirect to Redirect.
func (r Result) Navigates() bool {
	return r.Redirect != ""
}

func failed(message string, errs FieldErrors) Result {
	return Result{State: &FormState{Errors: errs, Message: message}}
}

type Service struct {
	store       Store
	revalidator Revalidator
	validator   *validator.Validate
	now         func() time.Time
	newID       func() uuid.UUID
}

type Option func(*Service)

// WithClock replaces the clock used to date new invoices.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator replaces the generator of new invoice ids.
func WithIDGenerator(newID func() uuid.UUID) Option {
	return func(s *Service) { s.newID = newID }
}

func NewService(store Store, revalidator Revalidator, opts ...Option) *Service {
	s := &Service{
		store:       store,
		revalidator: revalidator,
		validator:   newValidator(),
		now:         time.Now,
		newID:       uuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// today is the current UTC calendar date.
func (s *Service) today() datatypes.Date {
	y, m, d := s.now().UTC().Date()
	return datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}

// revalidateList marks the invoices list stale. The mutation already
// happened, so a failure here is only logged.
func (s *Service) revalidateList(ctx context.Context) {
	if err := s.revalidator.Revalidate(ctx, ListPath); err != nil {
		slog.Warn("failed to revalidate invoices list",
			slog.String("path", ListPath),
			slog.String("error", err.Error()),
		)
	}
}

func fieldNames(errs FieldErrors) []string {
	names := make([]string, 0, len(errs))
	for _, f := range []string{FieldCustomerID, FieldAmount, FieldStatus} {
		if _, ok := errs[f]; ok {
			names = append(names, f)
		}
	}
	return names
}

// CreateInvoice validates fields and inserts a new invoice dated today.
func (s *Service) CreateInvoice(ctx context.Context, fields FormFields) Result {
	inv, errs := s.validate(fields)
	if errs != nil {
		slog.Info("create invoice rejected", slog.Any("fields", fieldNames(errs)))
		return failed(MsgCreateInvalid, errs)
	}

	invoice := &models.Invoice{
		ID:         s.newID(),
		CustomerID: inv.CustomerID,
		Amount:     inv.AmountInCents,
		Status:     inv.Status,
		Date:       s.today(),
	}
	if err := s.store.Create(ctx, invoice); err != nil {
		slog.Error("failed to create invoice", slog.String("error", err.Error()))
		return failed(MsgCreateFailed, nil)
	}

	slog.Info("invoice created",
		slog.String("invoice_id", invoice.ID.String()),
		slog.String("customer_id", invoice.CustomerID),
	)

	s.revalidateList(ctx)
	return Result{Redirect: ListPath}
}

// UpdateInvoice validates fields and overwrites customer, amount and status
// of the invoice id. The invoice date is left as created.
func (s *Service) UpdateInvoice(ctx context.Context, id string, fields FormFields) Result {
	inv, errs := s.validate(fields)
	if errs != nil {
		slog.Info("update invoice rejected",
			slog.String("invoice_id", id),
			slog.Any("fields", fieldNames(errs)),
		)
		return failed(MsgUpdateInvalid, errs)
	}

	if err := s.update(ctx, id, inv); err != nil {
		slog.Error("failed to update invoice",
			slog.String("invoice_id", id),
			slog.String("error", err.Error()),
		)
		return failed(MsgUpdateFailed, nil)
	}

	slog.Info("invoice updated", slog.String("invoice_id", id))

	s.revalidateList(ctx)
	return Result{Redirect: ListPath}
}

func (s *Service) update(ctx context.Context, id string, inv *validInvoice) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.store.Update(ctx, uid, inv.CustomerID, inv.AmountInCents, inv.Status)
}

// DeleteInvoice removes the invoice id. It does not navigate; the caller is
// already on the list.
func (s *Service) DeleteInvoice(ctx context.Context, id string) Result {
	if err := s.delete(ctx, id); err != nil {
		slog.Error("failed to delete invoice",
			slog.String("invoice_id", id),
			slog.String("error", err.Error()),
		)
		return failed(MsgDeleteFailed, nil)
	}

	slog.Info("invoice deleted", slog.String("invoice_id", id))

	s.revalidateList(ctx)
	return Result{State: &FormState{Message: MsgDeleted}}
}

func (s *Service) delete(ctx context.Context, id string) error {
	uid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, uid)
}

func parseID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", models.ErrInvalidID, id)
	}
	return uid, nil
}

package invoices

import (
	"errors"
	"reflect"
	"strings"

	"invoice-dashboard/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	FieldCustomerID = "customerId"
	FieldAmount     = "amount"
	FieldStatus     = "status"
)

const (
	msgSelectCustomer = "Please select a customer."
	msgAmountPositive = "Please enter an amount greater than $0."
	msgAmountNaN      = "Expected number, received nan"
	msgAmountTooLarge = "Please enter a smaller amount."
	msgSelectStatus   = "Please select an invoice status."
)

var fieldMessages = map[string]string{
	FieldCustomerID: msgSelectCustomer,
	FieldAmount:     msgAmountPositive,
	FieldStatus:     msgSelectStatus,
}

// FormFields are the raw, untrusted values of an invoice form submission.
type FormFields struct {
	CustomerID string `form:"customerId"`
	Amount     string `form:"amount"`
	Status     string `form:"status"`
}

// FieldErrors maps a form field to its failure messages, in order.
type FieldErrors map[string][]string

// FormState is handed back to the form when a submission is rejected.
type FormState struct {
	Errors  FieldErrors `json:"errors,omitempty"`
	Message string      `json:"message,omitempty"`
}

// validInvoice is a submission that passed every constraint.
type validInvoice struct {
	CustomerID    string               `field:"customerId" validate:"required"`
	AmountInCents int64                `field:"amount"     validate:"gt=0"`
	Status        models.InvoiceStatus `field:"status"     validate:"required,oneof=pending paid"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return fld.Tag.Get("field")
	})
	return v
}

// toCents converts a major-unit amount to minor units, rounding half away
// from zero. An empty amount is zero.
func toCents(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, errAmountNaN
	}
	cents := amount.Shift(2).Round(0)
	if !cents.BigInt().IsInt64() {
		return 0, errAmountTooLarge
	}
	return cents.IntPart(), nil
}

var (
	errAmountNaN      = errors.New(msgAmountNaN)
	errAmountTooLarge = errors.New(msgAmountTooLarge)
)

// validate coerces fields and checks them against the invoice constraints.
// It returns either a valid invoice or the per-field failures, never both.
func (s *Service) validate(fields FormFields) (*validInvoice, FieldErrors) {
	errs := FieldErrors{}

	cents, amountErr := toCents(fields.Amount)
	inv := &validInvoice{
		CustomerID:    strings.TrimSpace(fields.CustomerID),
		AmountInCents: cents,
		Status:        models.InvoiceStatus(fields.Status),
	}

	if err := s.validator.Struct(inv); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			errs[FieldAmount] = []string{err.Error()}
			return nil, errs
		}
		for _, fe := range verrs {
			errs[fe.Field()] = append(errs[fe.Field()], fieldMessages[fe.Field()])
		}
	}

	if amountErr != nil {
		errs[FieldAmount] = []string{amountErr.Error()}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return inv, nil
}

package price

import (
	"github.com/shopspring/decimal"

	ierr "github.com/featurekit/featurekit/internal/errors"
	"github.com/featurekit/featurekit/internal/types"
)

// Amount is a gross/net pair in a single currency. Tax handling lives on the
// configured feature, so both legs are carried explicitly instead of being
// derived from one another.
type Amount struct {
	Gross decimal.Decimal `json:"gross"`
	Net   decimal.Decimal `json:"net"`
}

func (a Amount) Validate() error {
	if a.Gross.IsNegative() || a.Net.IsNegative() {
		return ierr.NewError("negative price amount").
			WithHint("Price amounts must be non negative").
			Mark(ierr.ErrValidation)
	}
	if a.Net.GreaterThan(a.Gross) {
		return ierr.NewError("net amount exceeds gross amount").
			WithHint("Net price must be less than or equal to gross price").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// RecurringPrices is a price table keyed by currency then billing interval.
// An empty table marks a free feature.
type RecurringPrices map[string]map[types.BillingInterval]Amount

// Get resolves the amount for a currency and interval. ok is false for free
// features or unknown keys; the caller decides whether that is an error.
func (p RecurringPrices) Get(currency string, interval types.BillingInterval) (Amount, bool) {
	byInterval, ok := p[currency]
	if !ok {
		return Amount{}, false
	}
	amount, ok := byInterval[interval]
	return amount, ok
}

func (p RecurringPrices) Validate() error {
	for currency, byInterval := range p {
		if err := types.ValidateCurrencyCode(currency); err != nil {
			return err
		}
		for interval, amount := range byInterval {
			if err := interval.Validate(); err != nil {
				return err
			}
			if err := amount.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

// UnatantumPrices is a one-time price table keyed by currency only, used by
// rechargeable feature packs.
type UnatantumPrices map[string]Amount

func (p UnatantumPrices) Get(currency string) (Amount, bool) {
	amount, ok := p[currency]
	return amount, ok
}

func (p UnatantumPrices) Validate() error {
	for currency, amount := range p {
		if err := types.ValidateCurrencyCode(currency); err != nil {
			return err
		}
		if err := amount.Validate(); err != nil {
			return err
		}
	}
	return nil
}

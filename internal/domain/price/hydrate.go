package price

import (
	"github.com/shopspring/decimal"

	ierr "github.com/featurekit/featurekit/internal/errors"
	"github.com/featurekit/featurekit/internal/types"
)

const (
	grossKey = "gross"
	netKey   = "net"
)

// ParseAmount accepts the raw representations a plan configuration document
// carries for a single price: a {gross, net} map with string or numeric
// values, or a prebuilt Amount.
func ParseAmount(v any) (Amount, error) {
	switch raw := v.(type) {
	case Amount:
		return raw, nil
	case map[string]any:
		gross, err := parseDecimal(raw[grossKey])
		if err != nil {
			return Amount{}, err
		}
		net, err := parseDecimal(raw[netKey])
		if err != nil {
			return Amount{}, err
		}
		amount := Amount{Gross: gross, Net: net}
		if err := amount.Validate(); err != nil {
			return Amount{}, err
		}
		return amount, nil
	default:
		return Amount{}, ierr.NewError("unsupported price representation").
			WithHintf("Cannot hydrate a price amount from %T", v).
			Mark(ierr.ErrValidation)
	}
}

func parseDecimal(v any) (decimal.Decimal, error) {
	switch n := v.(type) {
	case nil:
		return decimal.Zero, nil
	case decimal.Decimal:
		return n, nil
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero, ierr.WithError(err).
				WithHintf("Amount %q is not a valid decimal", n).
				Mark(ierr.ErrValidation)
		}
		return d, nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case float64:
		return decimal.NewFromFloat(n), nil
	default:
		return decimal.Zero, ierr.NewError("unsupported amount representation").
			WithHintf("Cannot parse a decimal from %T", v).
			Mark(ierr.ErrValidation)
	}
}

// ParseRecurringPrices hydrates a currency → interval → amount table from a
// raw configuration bag.
func ParseRecurringPrices(v any) (RecurringPrices, error) {
	if v == nil {
		return RecurringPrices{}, nil
	}
	switch raw := v.(type) {
	case RecurringPrices:
		return raw, raw.Validate()
	case map[string]any:
		prices := make(RecurringPrices, len(raw))
		for currency, byIntervalRaw := range raw {
			byInterval, ok := byIntervalRaw.(map[string]any)
			if !ok {
				return nil, ierr.NewError("malformed recurring price table").
					WithHintf("Expected interval map for currency %q, got %T", currency, byIntervalRaw).
					Mark(ierr.ErrValidation)
			}
			prices[currency] = make(map[types.BillingInterval]Amount, len(byInterval))
			for interval, amountRaw := range byInterval {
				amount, err := ParseAmount(amountRaw)
				if err != nil {
					return nil, err
				}
				prices[currency][types.BillingInterval(interval)] = amount
			}
		}
		return prices, prices.Validate()
	default:
		return nil, ierr.NewError("unsupported recurring price table representation").
			WithHintf("Cannot hydrate recurring prices from %T", v).
			Mark(ierr.ErrValidation)
	}
}

// ParseUnatantumPrices hydrates a currency → amount table from a raw
// configuration bag.
func ParseUnatantumPrices(v any) (UnatantumPrices, error) {
	if v == nil {
		return UnatantumPrices{}, nil
	}
	switch raw := v.(type) {
	case UnatantumPrices:
		return raw, raw.Validate()
	case map[string]any:
		prices := make(UnatantumPrices, len(raw))
		for currency, amountRaw := range raw {
			amount, err := ParseAmount(amountRaw)
			if err != nil {
				return nil, err
			}
			prices[currency] = amount
		}
		return prices, prices.Validate()
	default:
		return nil, ierr.NewError("unsupported one-time price table representation").
			WithHintf("Cannot hydrate one-time prices from %T", v).
			Mark(ierr.ErrValidation)
	}
}

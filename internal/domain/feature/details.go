package feature

import (
	"time"

	"github.com/shopspring/decimal"

	ierr "github.com/featurekit/featurekit/internal/errors"
	"github.com/featurekit/featurekit/internal/types"
)

// Detail bag keys. This is the persistence boundary shape: subscribed
// features are hydrated from and serialized to these snake_case keys.
const (
	DetailType             = "type"
	DetailEnabled          = "enabled"
	DetailActiveUntil      = "active_until"
	DetailConsumedQuantity = "consumed_quantity"
	DetailRemainedQuantity = "remained_quantity"
	DetailSubscribedPack   = "subscribed_pack"
	DetailRechargingPack   = "recharging_pack"
	DetailLastRefreshOn    = "last_refresh_on"
	DetailRefreshPeriod    = "refresh_period"
	DetailPrices           = "prices"
	DetailPacks            = "packs"
	DetailNumOfUnits       = "num_of_units"
	DetailTaxName          = "tax_name"
	DetailTaxRate          = "tax_rate"
)

// Details is the loosely typed attribute bag features are hydrated from:
// raw scalars, nested maps, or prebuilt sub-objects such as packs and
// timestamps.
type Details map[string]any

// Has reports whether the key is present, regardless of its value.
func (d Details) Has(key string) bool {
	_, ok := d[key]
	return ok
}

// GetString returns the string under key, or "" when absent or not a string.
func (d Details) GetString(key string) string {
	s, _ := d[key].(string)
	return s
}

// GetBool returns the bool under key, or false when absent.
func (d Details) GetBool(key string) bool {
	b, _ := d[key].(bool)
	return b
}

// GetInt returns the integer under key, tolerating the numeric types a
// decoded configuration document may carry.
func (d Details) GetInt(key string) (int, error) {
	v, ok := d[key]
	if !ok || v == nil {
		return 0, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, ierr.NewError("malformed detail value").
			WithHintf("Detail %q must be an integer, got %T", key, v).
			Mark(ierr.ErrValidation)
	}
}

// GetTime rehydrates a timestamp detail. A missing or nil value yields nil.
func (d Details) GetTime(key string) (*time.Time, error) {
	v, ok := d[key]
	if !ok || v == nil {
		return nil, nil
	}
	t, err := types.ParseTimestamp(v)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHintf("Detail %q holds an invalid timestamp", key).
			Mark(ierr.ErrValidation)
	}
	return &t, nil
}

// GetDecimal parses a decimal detail from a string or numeric value.
func (d Details) GetDecimal(key string) (decimal.Decimal, error) {
	v, ok := d[key]
	if !ok || v == nil {
		return decimal.Zero, nil
	}
	switch n := v.(type) {
	case decimal.Decimal:
		return n, nil
	case string:
		parsed, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero, ierr.WithError(err).
				WithHintf("Detail %q is not a valid decimal", key).
				Mark(ierr.ErrValidation)
		}
		return parsed, nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case int64:
		return decimal.NewFromInt(n), nil
	case float64:
		return decimal.NewFromFloat(n), nil
	default:
		return decimal.Zero, ierr.NewError("malformed detail value").
			WithHintf("Detail %q must be a decimal, got %T", key, v).
			Mark(ierr.ErrValidation)
	}
}

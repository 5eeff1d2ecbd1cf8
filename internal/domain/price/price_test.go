package price

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierr "github.com/featurekit/featurekit/internal/errors"
	"github.com/featurekit/featurekit/internal/types"
)

func TestParseRecurringPrices(t *testing.T) {
	prices, err := ParseRecurringPrices(map[string]any{
		"usd": map[string]any{
			"monthly": map[string]any{"gross": "12.20", "net": "10.00"},
			"yearly":  map[string]any{"gross": "122.00", "net": "100.00"},
		},
		"eur": map[string]any{
			"monthly": map[string]any{"gross": 11.0, "net": 9.0},
		},
	})
	require.NoError(t, err)

	monthly, ok := prices.Get("usd", types.BillingIntervalMonthly)
	require.True(t, ok)
	assert.True(t, monthly.Gross.Equal(decimal.RequireFromString("12.20")))
	assert.True(t, monthly.Net.Equal(decimal.RequireFromString("10.00")))

	_, ok = prices.Get("usd", types.BillingInterval("weekly"))
	assert.False(t, ok)
	_, ok = prices.Get("gbp", types.BillingIntervalMonthly)
	assert.False(t, ok)
}

func TestParseRecurringPricesEmptyMeansFree(t *testing.T) {
	prices, err := ParseRecurringPrices(nil)
	require.NoError(t, err)

	_, ok := prices.Get("usd", types.BillingIntervalMonthly)
	assert.False(t, ok)
}

func TestParseUnatantumPrices(t *testing.T) {
	prices, err := ParseUnatantumPrices(map[string]any{
		"usd": map[string]any{"gross": "5.00", "net": "4.10"},
	})
	require.NoError(t, err)

	amount, ok := prices.Get("usd")
	require.True(t, ok)
	assert.True(t, amount.Gross.Equal(decimal.RequireFromString("5.00")))

	_, ok = prices.Get("eur")
	assert.False(t, ok)
}

func TestAmountValidate(t *testing.T) {
	valid := Amount{Gross: decimal.NewFromInt(10), Net: decimal.NewFromInt(8)}
	assert.NoError(t, valid.Validate())

	negative := Amount{Gross: decimal.NewFromInt(-1), Net: decimal.Zero}
	err := negative.Validate()
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))

	inverted := Amount{Gross: decimal.NewFromInt(5), Net: decimal.NewFromInt(6)}
	assert.Error(t, inverted.Validate())
}

func TestParseAmountRejectsGarbage(t *testing.T) {
	_, err := ParseAmount("not a map")
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))

	_, err = ParseAmount(map[string]any{"gross": "abc", "net": "1"})
	assert.Error(t, err)
}

func TestRecurringPricesValidateCurrency(t *testing.T) {
	bad := RecurringPrices{
		"USD": {types.BillingIntervalMonthly: Amount{}},
	}
	err := bad.Validate()
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))
}

package subscription

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/featurekit/featurekit/internal/clock"
	"github.com/featurekit/featurekit/internal/domain/feature"
	ierr "github.com/featurekit/featurekit/internal/errors"
	"github.com/featurekit/featurekit/internal/types"
)

func TestNewSubscription(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	sub, err := New("eur", types.BillingIntervalMonthly, clk)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sub.ID, "subs_"))
	assert.Equal(t, "eur", sub.Currency)
	assert.Equal(t, types.BillingIntervalMonthly, sub.RenewInterval)
	assert.True(t, sub.SubscribedOn.Equal(clk.Now()))
	assert.True(t, sub.NextRenewAmount.IsZero())
	assert.Equal(t, 0, sub.Features.Len())
	require.NoError(t, sub.Validate())
}

func TestNewSubscriptionValidation(t *testing.T) {
	_, err := New("EUR", types.BillingIntervalMonthly, nil)
	require.Error(t, err)
	assert.True(t, ierr.IsValidation(err))

	_, err = New("eur", types.BillingInterval("weekly"), nil)
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidInterval(err))
}

func TestSubscriptionIsStillActive(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	clk := clock.NewFakeClock(now)

	sub, err := New("eur", types.BillingIntervalMonthly, clk)
	require.NoError(t, err)

	active, err := feature.NewSubscribedBooleanFeature("ads-free", feature.Details{
		feature.DetailEnabled:     true,
		feature.DetailActiveUntil: now.AddDate(0, 1, 0),
	}, clk)
	require.NoError(t, err)
	expired, err := feature.NewSubscribedBooleanFeature("beta-access", feature.Details{
		feature.DetailEnabled:     true,
		feature.DetailActiveUntil: now.AddDate(0, 0, -1),
	}, clk)
	require.NoError(t, err)
	require.NoError(t, sub.Features.Add(active))
	require.NoError(t, sub.Features.Add(expired))

	assert.True(t, sub.Has("ads-free"))
	assert.True(t, sub.IsStillActive("ads-free"))
	assert.False(t, sub.IsStillActive("beta-access"))
	assert.False(t, sub.IsStillActive("missing"))
}

func TestSubscriptionCalculateActiveUntil(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))

	sub, err := New("eur", types.BillingIntervalMonthly, clk)
	require.NoError(t, err)

	until, err := sub.CalculateActiveUntil()
	require.NoError(t, err)
	// Month-end clamp: Jan 31 + 1 month lands on the last day of February.
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), until)

	sub.SetYearly()
	until, err = sub.CalculateActiveUntil()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC), until)

	sub.RenewInterval = "weekly"
	_, err = sub.CalculateActiveUntil()
	require.Error(t, err)
	assert.True(t, ierr.IsInvalidInterval(err))
}

func TestSubscriptionScheduleRenewal(t *testing.T) {
	clk := clock.NewFakeClock(time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC))

	sub, err := New("eur", types.BillingIntervalMonthly, clk)
	require.NoError(t, err)
	require.Nil(t, sub.NextRenewOn)

	require.NoError(t, sub.ScheduleRenewal())
	require.NotNil(t, sub.NextRenewOn)
	assert.Equal(t, time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC), *sub.NextRenewOn)
}

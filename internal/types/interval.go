package types

import (
	"time"

	"github.com/samber/lo"

	ierr "github.com/featurekit/featurekit/internal/errors"
)

// BillingInterval is the cadence a subscription renews (and a recurring
// feature is billed) at.
type BillingInterval string

const (
	BillingIntervalMonthly BillingInterval = "monthly"
	BillingIntervalYearly  BillingInterval = "yearly"
)

func (i BillingInterval) String() string {
	return string(i)
}

func (i BillingInterval) Validate() error {
	if !BillingIntervalExists(string(i)) {
		return ierr.NewError("invalid billing interval").
			WithHintf("Billing interval must be %q or %q, got %q", BillingIntervalMonthly, BillingIntervalYearly, i).
			WithReportableDetails(map[string]any{
				"interval": i,
			}).
			Mark(ierr.ErrInvalidInterval)
	}
	return nil
}

// BillingIntervalExists reports whether the given string names a supported
// billing interval.
func BillingIntervalExists(interval string) bool {
	return lo.Contains([]BillingInterval{
		BillingIntervalMonthly,
		BillingIntervalYearly,
	}, BillingInterval(interval))
}

// NextRenewalDate returns the instant one billing interval after start,
// using month-end clamped calendar math.
func NextRenewalDate(start time.Time, interval BillingInterval) (time.Time, error) {
	switch interval {
	case BillingIntervalMonthly:
		return AddClampedDate(start, 0, 1, 0), nil
	case BillingIntervalYearly:
		return AddClampedDate(start, 1, 0, 0), nil
	default:
		return start, ierr.NewError("invalid billing interval").
			WithHintf("Cannot calculate a renewal date for interval %q", interval).
			Mark(ierr.ErrInvalidInterval)
	}
}

// RefreshPeriod is the cadence a countable feature's consumed quantity is
// reset back to its pack size.
type RefreshPeriod string

const (
	RefreshPeriodDaily    RefreshPeriod = "daily"
	RefreshPeriodWeekly   RefreshPeriod = "weekly"
	RefreshPeriodBiweekly RefreshPeriod = "biweekly"
	RefreshPeriodMonthly  RefreshPeriod = "monthly"
	RefreshPeriodYearly   RefreshPeriod = "yearly"
)

func (p RefreshPeriod) String() string {
	return string(p)
}

func (p RefreshPeriod) Validate() error {
	allowed := []RefreshPeriod{
		RefreshPeriodDaily,
		RefreshPeriodWeekly,
		RefreshPeriodBiweekly,
		RefreshPeriodMonthly,
		RefreshPeriodYearly,
	}
	if !lo.Contains(allowed, p) {
		return ierr.NewError("invalid refresh period").
			WithHintf("Refresh period %q is not supported", p).
			WithReportableDetails(map[string]any{
				"refresh_period": p,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// NextRefreshDate returns the instant one refresh period after start.
func NextRefreshDate(start time.Time, period RefreshPeriod) (time.Time, error) {
	switch period {
	case RefreshPeriodDaily:
		return AddClampedDate(start, 0, 0, 1), nil
	case RefreshPeriodWeekly:
		return AddClampedDate(start, 0, 0, 7), nil
	case RefreshPeriodBiweekly:
		return AddClampedDate(start, 0, 0, 15), nil
	case RefreshPeriodMonthly:
		return AddClampedDate(start, 0, 1, 0), nil
	case RefreshPeriodYearly:
		return AddClampedDate(start, 1, 0, 0), nil
	default:
		return start, ierr.NewError("invalid refresh period").
			WithHintf("Cannot calculate a refresh date for period %q", period).
			Mark(ierr.ErrValidation)
	}
}

// refreshPeriodOrder ranks refresh periods from shortest to longest so the
// smallest period across a feature set can be maintained.
var refreshPeriodOrder = map[RefreshPeriod]int{
	RefreshPeriodDaily:    1,
	RefreshPeriodWeekly:   2,
	RefreshPeriodBiweekly: 3,
	RefreshPeriodMonthly:  4,
	RefreshPeriodYearly:   5,
}

// ShorterRefreshPeriod returns whichever of the two periods elapses first.
// An empty period loses to any valid one.
func ShorterRefreshPeriod(a, b RefreshPeriod) RefreshPeriod {
	ra, aok := refreshPeriodOrder[a]
	rb, bok := refreshPeriodOrder[b]
	switch {
	case !aok:
		return b
	case !bok:
		return a
	case rb < ra:
		return b
	default:
		return a
	}
}

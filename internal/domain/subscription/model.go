// Package subscription holds the aggregate tying a customer's subscribed
// feature set to its billing cadence and renewal bookkeeping.
package subscription

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/featurekit/featurekit/internal/clock"
	"github.com/featurekit/featurekit/internal/domain/feature"
	ierr "github.com/featurekit/featurekit/internal/errors"
	"github.com/featurekit/featurekit/internal/types"
)

type Subscription struct {
	// ID is the unique identifier for the subscription
	ID string `json:"id"`

	// Currency is the subscription currency in lowercase 3 letter ISO codes
	Currency string `json:"currency"`

	// RenewInterval is the cadence the subscription renews at
	RenewInterval types.BillingInterval `json:"renew_interval"`

	// Features is the customer's subscribed feature set, in plan order
	Features *feature.Collection `json:"-"`

	// SubscribedOn is when the customer subscribed
	SubscribedOn time.Time `json:"subscribed_on"`

	// NextRenewOn is when the next renewal charge is due
	NextRenewOn *time.Time `json:"next_renew_on"`

	// NextRenewAmount is the gross amount of the next renewal invoice
	NextRenewAmount decimal.Decimal `json:"next_renew_amount"`

	// SmallestRefreshInterval is the shortest refresh period across the
	// subscription's countable features
	SmallestRefreshInterval types.RefreshPeriod `json:"smallest_refresh_interval"`

	// NextRefreshOn is when the earliest countable feature refresh is due
	NextRefreshOn *time.Time `json:"next_refresh_on"`

	clk clock.Clock
}

// New creates an empty subscription in the given currency and cadence.
func New(currency string, interval types.BillingInterval, clk clock.Clock) (*Subscription, error) {
	if err := types.ValidateCurrencyCode(currency); err != nil {
		return nil, err
	}
	if err := interval.Validate(); err != nil {
		return nil, err
	}
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return &Subscription{
		ID:              types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SUBSCRIPTION),
		Currency:        currency,
		RenewInterval:   interval,
		Features:        feature.NewCollection(),
		SubscribedOn:    clk.Now(),
		NextRenewAmount: decimal.Zero,
		clk:             clk,
	}, nil
}

// Has reports whether the subscription carries the named feature.
func (s *Subscription) Has(name string) bool {
	return s.Features != nil && s.Features.Has(name)
}

// IsStillActive reports whether the named feature exists and is inside its
// billable window. Absent features are simply not active.
func (s *Subscription) IsStillActive(name string) bool {
	if s.Features == nil {
		return false
	}
	f, err := s.Features.Get(name)
	if err != nil {
		return false
	}
	active, ok := f.(interface{ IsStillActive() bool })
	return ok && active.IsStillActive()
}

// SetMonthly switches the renewal cadence to monthly.
func (s *Subscription) SetMonthly() *Subscription {
	s.RenewInterval = types.BillingIntervalMonthly
	return s
}

// SetYearly switches the renewal cadence to yearly.
func (s *Subscription) SetYearly() *Subscription {
	s.RenewInterval = types.BillingIntervalYearly
	return s
}

// CalculateActiveUntil returns now plus one renewal interval, the expiry
// bound a recurring feature gets when (re)billed on this subscription.
func (s *Subscription) CalculateActiveUntil() (time.Time, error) {
	if !types.BillingIntervalExists(string(s.RenewInterval)) {
		return time.Time{}, ierr.NewError("invalid billing interval").
			WithHintf("Subscription %s has unsupported interval %q", s.ID, s.RenewInterval).
			Mark(ierr.ErrInvalidInterval)
	}
	return types.NextRenewalDate(s.now(), s.RenewInterval)
}

// ScheduleRenewal moves NextRenewOn one interval ahead of now.
func (s *Subscription) ScheduleRenewal() error {
	next, err := types.NextRenewalDate(s.now(), s.RenewInterval)
	if err != nil {
		return err
	}
	s.NextRenewOn = &next
	return nil
}

func (s *Subscription) Validate() error {
	if err := types.ValidateCurrencyCode(s.Currency); err != nil {
		return err
	}
	if err := s.RenewInterval.Validate(); err != nil {
		return err
	}
	if s.NextRenewAmount.IsNegative() {
		return ierr.NewError("negative renew amount").
			WithHint("Next renew amount must be non negative").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (s *Subscription) now() time.Time {
	if s.clk == nil {
		return time.Now().UTC()
	}
	return s.clk.Now()
}

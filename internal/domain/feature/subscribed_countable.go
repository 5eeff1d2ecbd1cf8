package feature

import (
	"time"

	"github.com/featurekit/featurekit/internal/clock"
	ierr "github.com/featurekit/featurekit/internal/errors"
	"github.com/featurekit/featurekit/internal/types"
)

// SubscribedCountableFeature is the live state of a consumable, periodically
// refreshed entitlement: the customer's current pack, the consumed and
// remaining quantities, and the refresh bookkeeping.
type SubscribedCountableFeature struct {
	baseFeature
	recurring
	consumable

	subscribedPack SubscribedPack
	lastRefreshOn  *time.Time

	// previousRemainedQuantity is set by Refresh and read by Cumulate.
	// It is transient and never serialized.
	previousRemainedQuantity *int
}

func NewSubscribedCountableFeature(name string, details Details, clk clock.Clock) (*SubscribedCountableFeature, error) {
	if !details.Has(DetailSubscribedPack) {
		return nil, ierr.NewError("missing subscribed pack").
			WithHintf("Feature %q needs a subscribed_pack detail", name).
			Mark(ierr.ErrValidation)
	}
	pack, err := ParseSubscribedPack(details[DetailSubscribedPack])
	if err != nil {
		return nil, err
	}
	consumed, err := details.GetInt(DetailConsumedQuantity)
	if err != nil {
		return nil, err
	}
	remained, err := details.GetInt(DetailRemainedQuantity)
	if err != nil {
		return nil, err
	}
	activeUntil, err := details.GetTime(DetailActiveUntil)
	if err != nil {
		return nil, err
	}
	lastRefreshOn, err := details.GetTime(DetailLastRefreshOn)
	if err != nil {
		return nil, err
	}
	if lastRefreshOn == nil {
		// A feature that was never refreshed starts its first cycle now.
		now := clk.Now()
		lastRefreshOn = &now
	}

	f := &SubscribedCountableFeature{
		baseFeature:    baseFeature{name: name, kind: types.FeatureKindCountable},
		recurring:      recurring{activeUntil: activeUntil, clk: clk},
		subscribedPack: pack,
		lastRefreshOn:  lastRefreshOn,
	}
	f.consumedQuantity = consumed
	f.remainedQuantity = remained
	return f, nil
}

func (f *SubscribedCountableFeature) SubscribedPack() SubscribedPack {
	return f.subscribedPack
}

func (f *SubscribedCountableFeature) LastRefreshOn() *time.Time {
	return f.lastRefreshOn
}

// SetLastRefreshOn overrides the refresh anchor, mainly for rehydration
// and tests.
func (f *SubscribedCountableFeature) SetLastRefreshOn(t time.Time) *SubscribedCountableFeature {
	f.lastRefreshOn = &t
	return f
}

// SetActiveUntil overwrites the expiry bound.
func (f *SubscribedCountableFeature) SetActiveUntil(t time.Time) *SubscribedCountableFeature {
	f.setActiveUntil(t)
	return f
}

// IsRefreshPeriodElapsed reports whether a full refresh period has passed
// since the last refresh, using calendar semantics: daily after one whole
// day, weekly after 7, biweekly after 15, monthly after one full calendar
// month, yearly after one full calendar year. A feature that never refreshed
// reports true to force the initial refresh, and so does an unknown period:
// failing open here beats silently never refreshing.
func (f *SubscribedCountableFeature) IsRefreshPeriodElapsed(period types.RefreshPeriod) bool {
	if f.lastRefreshOn == nil {
		return true
	}

	now := f.clk.Now()
	last := *f.lastRefreshOn

	switch period {
	case types.RefreshPeriodDaily:
		return types.ElapsedCalendarDays(last, now) >= 1
	case types.RefreshPeriodWeekly:
		return types.ElapsedCalendarDays(last, now) >= 7
	case types.RefreshPeriodBiweekly:
		return types.ElapsedCalendarDays(last, now) >= 15
	case types.RefreshPeriodMonthly:
		return types.ElapsedCalendarMonths(last, now) >= 1
	case types.RefreshPeriodYearly:
		return types.ElapsedCalendarYears(last, now) >= 1
	}

	return true
}

// Refresh starts a new cycle: the current remainder is snapshotted for a
// later Cumulate, consumption resets to zero and the remainder resets to the
// pack size. Unused quantity from the prior cycle is discarded unless
// Cumulate reclaims it.
func (f *SubscribedCountableFeature) Refresh() *SubscribedCountableFeature {
	previous := f.remainedQuantity
	f.previousRemainedQuantity = &previous

	f.consumedQuantity = 0
	f.remainedQuantity = f.subscribedPack.NumOfUnits

	now := f.clk.Now()
	f.lastRefreshOn = &now
	return f
}

// Cumulate rolls the remainder snapshotted by the preceding Refresh into the
// new cycle.
func (f *SubscribedCountableFeature) Cumulate() error {
	if f.previousRemainedQuantity == nil {
		return ierr.NewError("cumulate before refresh").
			WithHint("Cumulate can only follow a Refresh, which snapshots the previous remainder").
			Mark(ierr.ErrRefreshRequired)
	}
	f.remainedQuantity += *f.previousRemainedQuantity
	return nil
}

// SetSubscribedPack swaps the granted pack mid-cycle, re-basing the
// remainder on the new pack size while leaving the consumed amount intact:
// remained' = remained - old.NumOfUnits + new.NumOfUnits.
func (f *SubscribedCountableFeature) SetSubscribedPack(pack SubscribedPack) *SubscribedCountableFeature {
	f.remainedQuantity = f.remainedQuantity - f.subscribedPack.NumOfUnits + pack.NumOfUnits
	f.subscribedPack = pack
	return f
}

// ToDetails emits the persistence shape. The refresh snapshot is transient
// and deliberately excluded.
func (f *SubscribedCountableFeature) ToDetails() Details {
	var activeUntil any
	if f.activeUntil != nil {
		activeUntil = types.FormatTimestamp(*f.activeUntil)
	}
	var lastRefreshOn any
	if f.lastRefreshOn != nil {
		lastRefreshOn = types.FormatTimestamp(*f.lastRefreshOn)
	}
	return Details{
		DetailType:             f.kind.String(),
		DetailActiveUntil:      activeUntil,
		DetailConsumedQuantity: f.consumedQuantity,
		DetailRemainedQuantity: f.remainedQuantity,
		DetailSubscribedPack:   f.subscribedPack.ToDetails(),
		DetailLastRefreshOn:    lastRefreshOn,
	}
}

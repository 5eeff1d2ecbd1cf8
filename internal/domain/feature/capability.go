package feature

import (
	"time"

	"github.com/featurekit/featurekit/internal/clock"
	ierr "github.com/featurekit/featurekit/internal/errors"
)

// The capability types below are embedded by the concrete feature kinds.
// Each carries one orthogonal behaviour: enablement (boolean features),
// recurring activity (anything billed periodically) and consumption
// (countable and rechargeable features).

type enablement struct {
	enabled bool
}

// IsEnabled reports the current enablement state.
func (e *enablement) IsEnabled() bool {
	return e.enabled
}

func (e *enablement) setEnabled(enabled bool) {
	e.enabled = enabled
}

type recurring struct {
	activeUntil *time.Time
	clk         clock.Clock
}

// ActiveUntil returns the expiry bound, nil when never set.
func (r *recurring) ActiveUntil() *time.Time {
	return r.activeUntil
}

// IsStillActive reports whether the feature is inside its billable window.
// A feature with no expiry set has never been activated and is not active.
func (r *recurring) IsStillActive() bool {
	if r.activeUntil == nil {
		return false
	}
	return !r.activeUntil.Before(r.clk.Now())
}

func (r *recurring) setActiveUntil(t time.Time) {
	r.activeUntil = &t
}

type consumable struct {
	consumedQuantity int
	remainedQuantity int
}

// Consume spends quantity units. Overconsumption is rejected: the remainder
// never goes negative.
func (c *consumable) Consume(quantity int) error {
	if quantity < 0 {
		return ierr.NewError("negative consumption").
			WithHintf("Consumption quantity must be non negative, got %d", quantity).
			Mark(ierr.ErrValidation)
	}
	if quantity > c.remainedQuantity {
		return ierr.NewError("consumption exceeds remaining quantity").
			WithHintf("Requested %d units with only %d remaining", quantity, c.remainedQuantity).
			WithReportableDetails(map[string]any{
				"requested": quantity,
				"remained":  c.remainedQuantity,
			}).
			Mark(ierr.ErrInsufficientQuantity)
	}
	c.consumedQuantity += quantity
	c.remainedQuantity -= quantity
	return nil
}

// ConsumeOne spends a single unit.
func (c *consumable) ConsumeOne() error {
	return c.Consume(1)
}

func (c *consumable) ConsumedQuantity() int {
	return c.consumedQuantity
}

func (c *consumable) RemainedQuantity() int {
	return c.remainedQuantity
}

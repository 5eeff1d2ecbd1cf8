package feature

import (
	"time"

	"github.com/featurekit/featurekit/internal/clock"
	"github.com/featurekit/featurekit/internal/types"
)

// SubscribedBooleanFeature is a customer's live on/off entitlement,
// optionally bounded by an active-until expiry.
type SubscribedBooleanFeature struct {
	baseFeature
	enablement
	recurring
}

func NewSubscribedBooleanFeature(name string, details Details, clk clock.Clock) (*SubscribedBooleanFeature, error) {
	activeUntil, err := details.GetTime(DetailActiveUntil)
	if err != nil {
		return nil, err
	}
	f := &SubscribedBooleanFeature{
		baseFeature: baseFeature{name: name, kind: types.FeatureKindBoolean},
		recurring:   recurring{activeUntil: activeUntil, clk: clk},
	}
	f.setEnabled(details.GetBool(DetailEnabled))
	return f, nil
}

// Enable turns the feature on. Idempotent.
func (f *SubscribedBooleanFeature) Enable() *SubscribedBooleanFeature {
	f.setEnabled(true)
	return f
}

// Disable turns the feature off. Idempotent.
func (f *SubscribedBooleanFeature) Disable() *SubscribedBooleanFeature {
	f.setEnabled(false)
	return f
}

// SetActiveUntil overwrites the expiry bound.
func (f *SubscribedBooleanFeature) SetActiveUntil(t time.Time) *SubscribedBooleanFeature {
	f.setActiveUntil(t)
	return f
}

func (f *SubscribedBooleanFeature) ToDetails() Details {
	var activeUntil any
	if f.activeUntil != nil {
		activeUntil = types.FormatTimestamp(*f.activeUntil)
	}
	return Details{
		DetailType:        f.kind.String(),
		DetailEnabled:     f.IsEnabled(),
		DetailActiveUntil: activeUntil,
	}
}

package types

import (
	"github.com/samber/lo"

	ierr "github.com/featurekit/featurekit/internal/errors"
)

// FeatureKind discriminates the three entitlement variants a plan can grant.
type FeatureKind string

const (
	// FeatureKindBoolean is a plain on/off entitlement.
	FeatureKindBoolean FeatureKind = "boolean"
	// FeatureKindCountable is a consumable entitlement granted in packs and
	// periodically refreshed.
	FeatureKindCountable FeatureKind = "countable"
	// FeatureKindRechargeable is a consumable entitlement topped up on demand,
	// with no refresh cycle.
	FeatureKindRechargeable FeatureKind = "rechargeable"
)

func (k FeatureKind) String() string {
	return string(k)
}

func (k FeatureKind) Validate() error {
	allowed := []FeatureKind{
		FeatureKindBoolean,
		FeatureKindCountable,
		FeatureKindRechargeable,
	}
	if !lo.Contains(allowed, k) {
		return ierr.NewError("unknown feature kind").
			WithHintf("Feature kind must be one of boolean, countable or rechargeable, got %q", k).
			WithReportableDetails(map[string]any{
				"kind": k,
			}).
			Mark(ierr.ErrUnknownFeatureKind)
	}
	return nil
}

// FactoryMode selects whether the features factory builds plan-side
// (configured) or customer-side (subscribed) feature objects.
type FactoryMode string

const (
	FactoryModeConfigured FactoryMode = "configured"
	FactoryModeSubscribed FactoryMode = "subscribed"
)

func (m FactoryMode) String() string {
	return string(m)
}

func (m FactoryMode) Validate() error {
	allowed := []FactoryMode{
		FactoryModeConfigured,
		FactoryModeSubscribed,
	}
	if !lo.Contains(allowed, m) {
		return ierr.NewError("invalid factory mode").
			WithHintf("Factory mode can be only %q or %q, got %q", FactoryModeConfigured, FactoryModeSubscribed, m).
			WithReportableDetails(map[string]any{
				"mode": m,
			}).
			Mark(ierr.ErrInvalidMode)
	}
	return nil
}

// Package feature implements the entitlement domain: plan-side configured
// features, customer-side subscribed features, the packs that grant
// quantities, and the factory that builds either hierarchy from loosely
// typed detail bags.
package feature

import (
	"github.com/shopspring/decimal"

	"github.com/featurekit/featurekit/internal/types"
)

// Feature is the common surface of every configured or subscribed feature.
type Feature interface {
	Name() string
	Kind() types.FeatureKind
}

// Subscribed is a customer-side feature instance. All subscribed features
// serialize back to the details bag they were hydrated from.
type Subscribed interface {
	Feature
	ToDetails() Details
}

// Configured is a plan-side feature definition carrying tax data.
type Configured interface {
	Feature
	TaxName() string
	TaxRate() decimal.Decimal
}

type baseFeature struct {
	name string
	kind types.FeatureKind
}

func (f baseFeature) Name() string {
	return f.name
}

func (f baseFeature) Kind() types.FeatureKind {
	return f.kind
}

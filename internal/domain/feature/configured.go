package feature

import (
	"github.com/shopspring/decimal"

	"github.com/featurekit/featurekit/internal/domain/price"
	ierr "github.com/featurekit/featurekit/internal/errors"
	"github.com/featurekit/featurekit/internal/types"
)

// Configured features are built once from the plan configuration document
// and are read-only afterwards.

type configuredBase struct {
	baseFeature
	taxName string
	taxRate decimal.Decimal
}

func (f configuredBase) TaxName() string {
	return f.taxName
}

func (f configuredBase) TaxRate() decimal.Decimal {
	return f.taxRate
}

func newConfiguredBase(name string, kind types.FeatureKind, details Details) (configuredBase, error) {
	taxRate, err := details.GetDecimal(DetailTaxRate)
	if err != nil {
		return configuredBase{}, err
	}
	return configuredBase{
		baseFeature: baseFeature{name: name, kind: kind},
		taxName:     details.GetString(DetailTaxName),
		taxRate:     taxRate,
	}, nil
}

// ConfiguredBooleanFeature is an on/off entitlement priced per currency and
// billing interval.
type ConfiguredBooleanFeature struct {
	configuredBase
	prices price.RecurringPrices
}

func NewConfiguredBooleanFeature(name string, details Details) (*ConfiguredBooleanFeature, error) {
	base, err := newConfiguredBase(name, types.FeatureKindBoolean, details)
	if err != nil {
		return nil, err
	}
	prices, err := price.ParseRecurringPrices(details[DetailPrices])
	if err != nil {
		return nil, err
	}
	return &ConfiguredBooleanFeature{configuredBase: base, prices: prices}, nil
}

// Price resolves the recurring price for a currency and interval. ok is
// false for free features.
func (f *ConfiguredBooleanFeature) Price(currency string, interval types.BillingInterval) (price.Amount, bool) {
	return f.prices.Get(currency, interval)
}

// ConfiguredCountableFeature is a consumable entitlement granted in packs
// and refreshed on a fixed period.
type ConfiguredCountableFeature struct {
	configuredBase
	packs         map[int]*ConfiguredCountablePack
	refreshPeriod types.RefreshPeriod
}

func NewConfiguredCountableFeature(name string, details Details) (*ConfiguredCountableFeature, error) {
	base, err := newConfiguredBase(name, types.FeatureKindCountable, details)
	if err != nil {
		return nil, err
	}
	packs, err := parseCountablePacks(details[DetailPacks])
	if err != nil {
		return nil, err
	}
	refreshPeriod := types.RefreshPeriod(details.GetString(DetailRefreshPeriod))
	if refreshPeriod != "" {
		if err := refreshPeriod.Validate(); err != nil {
			return nil, err
		}
	}
	return &ConfiguredCountableFeature{
		configuredBase: base,
		packs:          packs,
		refreshPeriod:  refreshPeriod,
	}, nil
}

// Pack returns the configured pack matching the given size.
func (f *ConfiguredCountableFeature) Pack(numOfUnits int) (*ConfiguredCountablePack, error) {
	pack, ok := f.packs[numOfUnits]
	if !ok {
		return nil, ierr.NewError("pack not configured").
			WithHintf("Feature %q has no pack of %d units", f.name, numOfUnits).
			WithReportableDetails(map[string]any{
				"feature":      f.name,
				"num_of_units": numOfUnits,
			}).
			Mark(ierr.ErrNotFound)
	}
	return pack, nil
}

func (f *ConfiguredCountableFeature) RefreshPeriod() types.RefreshPeriod {
	return f.refreshPeriod
}

// ConfiguredRechargeableFeature is a consumable entitlement topped up by
// one-time pack purchases.
type ConfiguredRechargeableFeature struct {
	configuredBase
	packs map[int]*ConfiguredRechargeablePack
}

func NewConfiguredRechargeableFeature(name string, details Details) (*ConfiguredRechargeableFeature, error) {
	base, err := newConfiguredBase(name, types.FeatureKindRechargeable, details)
	if err != nil {
		return nil, err
	}
	packs, err := parseRechargeablePacks(details[DetailPacks])
	if err != nil {
		return nil, err
	}
	return &ConfiguredRechargeableFeature{configuredBase: base, packs: packs}, nil
}

func (f *ConfiguredRechargeableFeature) Pack(numOfUnits int) (*ConfiguredRechargeablePack, error) {
	pack, ok := f.packs[numOfUnits]
	if !ok {
		return nil, ierr.NewError("pack not configured").
			WithHintf("Feature %q has no pack of %d units", f.name, numOfUnits).
			WithReportableDetails(map[string]any{
				"feature":      f.name,
				"num_of_units": numOfUnits,
			}).
			Mark(ierr.ErrNotFound)
	}
	return pack, nil
}

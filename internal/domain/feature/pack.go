package feature

import (
	"github.com/featurekit/featurekit/internal/domain/price"
	ierr "github.com/featurekit/featurekit/internal/errors"
)

// ConfiguredCountablePack is a plan-side quantity grant for a countable
// feature, priced per currency and billing interval.
type ConfiguredCountablePack struct {
	NumOfUnits int
	Prices     price.RecurringPrices
}

func (p *ConfiguredCountablePack) Validate() error {
	if p.NumOfUnits <= 0 {
		return ierr.NewError("pack must grant at least one unit").
			WithHintf("Pack size must be positive, got %d", p.NumOfUnits).
			Mark(ierr.ErrValidation)
	}
	return p.Prices.Validate()
}

// ConfiguredRechargeablePack is a plan-side top-up unit for a rechargeable
// feature, priced one-time per currency.
type ConfiguredRechargeablePack struct {
	NumOfUnits int
	Prices     price.UnatantumPrices
}

func (p *ConfiguredRechargeablePack) Validate() error {
	if p.NumOfUnits <= 0 {
		return ierr.NewError("pack must grant at least one unit").
			WithHintf("Pack size must be positive, got %d", p.NumOfUnits).
			Mark(ierr.ErrValidation)
	}
	return p.Prices.Validate()
}

// SubscribedPack is the customer-side snapshot of a granted pack. Only the
// size is kept; prices are resolved on demand from the configured side.
type SubscribedPack struct {
	NumOfUnits int
}

// ToDetails emits the persistence shape.
func (p SubscribedPack) ToDetails() map[string]any {
	return map[string]any{DetailNumOfUnits: p.NumOfUnits}
}

// ParseSubscribedPack accepts the representations a details bag may carry
// for a pack snapshot: a bare unit count, a {num_of_units} map, or a
// prebuilt SubscribedPack.
func ParseSubscribedPack(v any) (SubscribedPack, error) {
	switch raw := v.(type) {
	case SubscribedPack:
		return raw, nil
	case *SubscribedPack:
		if raw == nil {
			return SubscribedPack{}, ierr.NewError("nil subscribed pack").
				WithHint("Subscribed pack value is nil").
				Mark(ierr.ErrValidation)
		}
		return *raw, nil
	case int:
		return SubscribedPack{NumOfUnits: raw}, nil
	case int64:
		return SubscribedPack{NumOfUnits: int(raw)}, nil
	case float64:
		return SubscribedPack{NumOfUnits: int(raw)}, nil
	case map[string]any:
		units := Details(raw)
		numOfUnits, err := units.GetInt(DetailNumOfUnits)
		if err != nil {
			return SubscribedPack{}, err
		}
		return SubscribedPack{NumOfUnits: numOfUnits}, nil
	default:
		return SubscribedPack{}, ierr.NewError("unsupported pack representation").
			WithHintf("Cannot hydrate a subscribed pack from %T", v).
			Mark(ierr.ErrValidation)
	}
}

// parseCountablePacks hydrates the plan-side pack list of a countable
// feature from a details bag: a list of {num_of_units, prices} entries or
// prebuilt packs. Packs are keyed by size.
func parseCountablePacks(v any) (map[int]*ConfiguredCountablePack, error) {
	packs := make(map[int]*ConfiguredCountablePack)
	if v == nil {
		return packs, nil
	}
	entries, ok := v.([]any)
	if !ok {
		return nil, ierr.NewError("malformed pack list").
			WithHintf("Expected a list of packs, got %T", v).
			Mark(ierr.ErrValidation)
	}
	for _, entry := range entries {
		var pack *ConfiguredCountablePack
		switch raw := entry.(type) {
		case *ConfiguredCountablePack:
			pack = raw
		case map[string]any:
			details := Details(raw)
			numOfUnits, err := details.GetInt(DetailNumOfUnits)
			if err != nil {
				return nil, err
			}
			prices, err := price.ParseRecurringPrices(raw[DetailPrices])
			if err != nil {
				return nil, err
			}
			pack = &ConfiguredCountablePack{NumOfUnits: numOfUnits, Prices: prices}
		default:
			return nil, ierr.NewError("unsupported pack representation").
				WithHintf("Cannot hydrate a countable pack from %T", entry).
				Mark(ierr.ErrValidation)
		}
		if err := pack.Validate(); err != nil {
			return nil, err
		}
		packs[pack.NumOfUnits] = pack
	}
	return packs, nil
}

func parseRechargeablePacks(v any) (map[int]*ConfiguredRechargeablePack, error) {
	packs := make(map[int]*ConfiguredRechargeablePack)
	if v == nil {
		return packs, nil
	}
	entries, ok := v.([]any)
	if !ok {
		return nil, ierr.NewError("malformed pack list").
			WithHintf("Expected a list of packs, got %T", v).
			Mark(ierr.ErrValidation)
	}
	for _, entry := range entries {
		var pack *ConfiguredRechargeablePack
		switch raw := entry.(type) {
		case *ConfiguredRechargeablePack:
			pack = raw
		case map[string]any:
			details := Details(raw)
			numOfUnits, err := details.GetInt(DetailNumOfUnits)
			if err != nil {
				return nil, err
			}
			prices, err := price.ParseUnatantumPrices(raw[DetailPrices])
			if err != nil {
				return nil, err
			}
			pack = &ConfiguredRechargeablePack{NumOfUnits: numOfUnits, Prices: prices}
		default:
			return nil, ierr.NewError("unsupported pack representation").
				WithHintf("Cannot hydrate a rechargeable pack from %T", entry).
				Mark(ierr.ErrValidation)
		}
		if err := pack.Validate(); err != nil {
			return nil, err
		}
		packs[pack.NumOfUnits] = pack
	}
	return packs, nil
}

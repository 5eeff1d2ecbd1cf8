package feature

import (
	ierr "github.com/featurekit/featurekit/internal/errors"
	"github.com/featurekit/featurekit/internal/types"
)

// SubscribedRechargeableFeature is the live state of a consumable
// entitlement with no refresh cycle: quantity only grows through explicit
// recharges.
type SubscribedRechargeableFeature struct {
	baseFeature
	consumable

	// rechargingPack is the pending top-up applied by the next Recharge.
	rechargingPack *SubscribedPack
}

func NewSubscribedRechargeableFeature(name string, details Details) (*SubscribedRechargeableFeature, error) {
	consumed, err := details.GetInt(DetailConsumedQuantity)
	if err != nil {
		return nil, err
	}
	remained, err := details.GetInt(DetailRemainedQuantity)
	if err != nil {
		return nil, err
	}

	f := &SubscribedRechargeableFeature{
		baseFeature: baseFeature{name: name, kind: types.FeatureKindRechargeable},
	}
	f.consumedQuantity = consumed
	f.remainedQuantity = remained

	if v, ok := details[DetailRechargingPack]; ok && v != nil {
		pack, err := ParseSubscribedPack(v)
		if err != nil {
			return nil, err
		}
		f.rechargingPack = &pack
	}
	return f, nil
}

func (f *SubscribedRechargeableFeature) RechargingPack() *SubscribedPack {
	return f.rechargingPack
}

// SetRechargingPack stages a top-up to be applied by Recharge.
func (f *SubscribedRechargeableFeature) SetRechargingPack(pack SubscribedPack) *SubscribedRechargeableFeature {
	f.rechargingPack = &pack
	return f
}

// Recharge applies the pending pack: the remainder grows by the pack size,
// consumption is untouched. Recharge is additive only.
func (f *SubscribedRechargeableFeature) Recharge() error {
	if f.rechargingPack == nil {
		return ierr.NewError("no recharging pack set").
			WithHintf("Feature %q has no pending recharge pack", f.name).
			Mark(ierr.ErrValidation)
	}
	f.remainedQuantity += f.rechargingPack.NumOfUnits
	return nil
}

func (f *SubscribedRechargeableFeature) ToDetails() Details {
	var rechargingPack any
	if f.rechargingPack != nil {
		rechargingPack = f.rechargingPack.ToDetails()
	}
	return Details{
		DetailType:             f.kind.String(),
		DetailConsumedQuantity: f.consumedQuantity,
		DetailRemainedQuantity: f.remainedQuantity,
		DetailRechargingPack:   rechargingPack,
	}
}

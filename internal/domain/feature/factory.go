package feature

import (
	"github.com/featurekit/featurekit/internal/clock"
	ierr "github.com/featurekit/featurekit/internal/errors"
	"github.com/featurekit/featurekit/internal/types"
)

// Factory builds configured or subscribed feature objects depending on its
// mode, so bootstrap code hydrating N features of unknown concrete type
// branches once on the mode instead of at every call site. The mode lives on
// the factory instance, not in process-wide state: callers that need both
// hierarchies hold two factories.
type Factory struct {
	mode types.FactoryMode
	clk  clock.Clock
}

// NewFactory returns a factory with no mode set. SetMode must be called
// before any Create method.
func NewFactory(clk clock.Clock) *Factory {
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return &Factory{clk: clk}
}

// NewFactoryWithMode returns a ready-to-use factory.
func NewFactoryWithMode(mode types.FactoryMode, clk clock.Clock) (*Factory, error) {
	f := NewFactory(clk)
	if err := f.SetMode(mode); err != nil {
		return nil, err
	}
	return f, nil
}

// SetMode selects which hierarchy subsequent Create calls build.
func (f *Factory) SetMode(mode types.FactoryMode) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	f.mode = mode
	return nil
}

// Mode returns the selected mode, or ErrUninitializedMode before SetMode.
func (f *Factory) Mode() (types.FactoryMode, error) {
	if err := f.checkModeIsSet(); err != nil {
		return "", err
	}
	return f.mode, nil
}

func (f *Factory) checkModeIsSet() error {
	if f.mode == "" {
		return ierr.NewError("factory mode not set").
			WithHint("Call SetMode before creating features").
			Mark(ierr.ErrUninitializedMode)
	}
	return nil
}

// CreateBoolean builds the mode-appropriate boolean feature from details.
func (f *Factory) CreateBoolean(name string, details Details) (Feature, error) {
	if err := f.checkModeIsSet(); err != nil {
		return nil, err
	}
	switch f.mode {
	case types.FactoryModeConfigured:
		return NewConfiguredBooleanFeature(name, details)
	default:
		return NewSubscribedBooleanFeature(name, details, f.clk)
	}
}

// CreateCountable builds the mode-appropriate countable feature from details.
func (f *Factory) CreateCountable(name string, details Details) (Feature, error) {
	if err := f.checkModeIsSet(); err != nil {
		return nil, err
	}
	switch f.mode {
	case types.FactoryModeConfigured:
		return NewConfiguredCountableFeature(name, details)
	default:
		return NewSubscribedCountableFeature(name, details, f.clk)
	}
}

// CreateRechargeable builds the mode-appropriate rechargeable feature from
// details.
func (f *Factory) CreateRechargeable(name string, details Details) (Feature, error) {
	if err := f.checkModeIsSet(); err != nil {
		return nil, err
	}
	switch f.mode {
	case types.FactoryModeConfigured:
		return NewConfiguredRechargeableFeature(name, details)
	default:
		return NewSubscribedRechargeableFeature(name, details)
	}
}

// CreateFromDetails dispatches on the bag's type key, the generic path for
// hydrating a whole feature set from a configuration or persistence
// document.
func (f *Factory) CreateFromDetails(name string, details Details) (Feature, error) {
	if err := f.checkModeIsSet(); err != nil {
		return nil, err
	}
	kind := types.FeatureKind(details.GetString(DetailType))
	switch kind {
	case types.FeatureKindBoolean:
		return f.CreateBoolean(name, details)
	case types.FeatureKindCountable:
		return f.CreateCountable(name, details)
	case types.FeatureKindRechargeable:
		return f.CreateRechargeable(name, details)
	default:
		return nil, ierr.NewError("unknown feature kind").
			WithHintf("Feature %q declares unsupported type %q", name, kind).
			WithReportableDetails(map[string]any{
				"feature": name,
				"type":    kind,
			}).
			Mark(ierr.ErrUnknownFeatureKind)
	}
}

package service

import (
	"github.com/featurekit/featurekit/internal/config"
	"github.com/featurekit/featurekit/internal/domain/feature"
	"github.com/featurekit/featurekit/internal/domain/invoice"
	"github.com/featurekit/featurekit/internal/domain/price"
	"github.com/featurekit/featurekit/internal/domain/subscription"
	ierr "github.com/featurekit/featurekit/internal/errors"
	"github.com/featurekit/featurekit/internal/logger"
)

// InvoicesManager walks a subscription's feature set against the plan's
// configured features and derives priced invoice lines, then hands finished
// invoices to a registered drawer for rendering.
type InvoicesManager struct {
	cfg        *config.Configuration
	log        *logger.Logger
	configured *feature.Collection

	drawers       map[string]invoice.Drawer
	defaultDrawer invoice.Drawer

	sub *subscription.Subscription
}

func NewInvoicesManager(cfg *config.Configuration, log *logger.Logger, configured *feature.Collection) *InvoicesManager {
	return &InvoicesManager{
		cfg:        cfg,
		log:        log,
		configured: configured,
		drawers:    make(map[string]invoice.Drawer),
	}
}

// ConfiguredFeatures returns the plan-side feature definitions.
func (m *InvoicesManager) ConfiguredFeatures() *feature.Collection {
	return m.configured
}

func (m *InvoicesManager) Subscription() *subscription.Subscription {
	return m.sub
}

func (m *InvoicesManager) SetSubscription(sub *subscription.Subscription) *InvoicesManager {
	m.sub = sub
	return m
}

// RegisterDrawer makes a renderer available under a name. Registering the
// configured default drawer name also wires the fallback.
func (m *InvoicesManager) RegisterDrawer(name string, d invoice.Drawer) {
	if m.cfg.Invoicing.DefaultDrawer == name {
		m.defaultDrawer = d
	}
	m.drawers[name] = d
}

// Drawer resolves a named drawer, falling back to the configured default.
func (m *InvoicesManager) Drawer(name string) (invoice.Drawer, error) {
	if name != "" {
		if d, ok := m.drawers[name]; ok {
			return d, nil
		}
	}
	if m.defaultDrawer == nil {
		return nil, ierr.NewError("no invoice drawer available").
			WithHint("Pass a registered drawer name or configure a default drawer").
			WithReportableDetails(map[string]any{
				"requested": name,
			}).
			Mark(ierr.ErrNoDrawerAvailable)
	}
	return m.defaultDrawer, nil
}

// DrawInvoice renders the invoice with the named drawer or the default.
func (m *InvoicesManager) DrawInvoice(inv *invoice.Invoice, drawerName string) ([]byte, error) {
	d, err := m.Drawer(drawerName)
	if err != nil {
		return nil, err
	}
	return d.Draw(inv)
}

// PopulateInvoice fills the invoice's default section. When includeOnly is
// given the invoice covers only the selected features, which is how an
// upgrade flow bills just what was added; otherwise it previews the full
// next renewal.
func (m *InvoicesManager) PopulateInvoice(inv *invoice.Invoice, includeOnly *Selection) (*invoice.Invoice, error) {
	section := m.cfg.Invoicing.DefaultSection
	if section == "" {
		section = invoice.DefaultSection
	}
	if err := m.PopulateSection(inv.Section(section), includeOnly); err != nil {
		return nil, err
	}
	return inv, nil
}

// PopulateSection derives one priced line per billable feature, in the
// subscription's feature order. Disabled boolean features, expired recurring
// features and features outside the selection contribute nothing, and so do
// free features with no price entry for the subscription's currency.
func (m *InvoicesManager) PopulateSection(section *invoice.Section, includeOnly *Selection) error {
	if m.sub == nil {
		return ierr.NewError("no subscription set").
			WithHint("Call SetSubscription before populating an invoice").
			Mark(ierr.ErrInvalidOperation)
	}

	for _, f := range m.sub.Features.All() {
		if bf, ok := f.(*feature.SubscribedBooleanFeature); ok && !bf.IsEnabled() {
			continue
		}
		if active, ok := f.(interface{ IsStillActive() bool }); ok && !active.IsStillActive() {
			continue
		}
		if includeOnly != nil && !includeOnly.Includes(f.Name()) {
			continue
		}

		amount, priced, quantity, configured, err := m.resolvePrice(f)
		if err != nil {
			return err
		}
		if !priced {
			m.log.Debugw("feature has no price entry, skipping",
				"feature", f.Name(),
				"currency", m.sub.Currency)
			continue
		}

		section.AddLine(f.Name(), &invoice.Line{
			Description: f.Name(),
			Quantity:    quantity,
			GrossAmount: amount.Gross,
			NetAmount:   amount.Net,
			TaxName:     configured.TaxName(),
			TaxRate:     configured.TaxRate(),
		})
	}
	return nil
}

// resolvePrice dispatches on the feature kind: boolean features carry a
// recurring price at the subscription's currency and interval, countable
// features price through the configured pack matching the subscribed pack
// size, rechargeable features through the matching pack at a one-time price.
func (m *InvoicesManager) resolvePrice(f feature.Feature) (price.Amount, bool, *int, feature.Configured, error) {
	switch sf := f.(type) {
	case *feature.SubscribedBooleanFeature:
		cf, err := m.configuredBoolean(f.Name())
		if err != nil {
			return price.Amount{}, false, nil, nil, err
		}
		amount, ok := cf.Price(m.sub.Currency, m.sub.RenewInterval)
		return amount, ok, nil, cf, nil

	case *feature.SubscribedCountableFeature:
		cf, err := m.configuredCountable(f.Name())
		if err != nil {
			return price.Amount{}, false, nil, nil, err
		}
		pack, err := cf.Pack(sf.SubscribedPack().NumOfUnits)
		if err != nil {
			return price.Amount{}, false, nil, nil, err
		}
		amount, ok := pack.Prices.Get(m.sub.Currency, m.sub.RenewInterval)
		quantity := pack.NumOfUnits
		return amount, ok, &quantity, cf, nil

	case *feature.SubscribedRechargeableFeature:
		cf, err := m.configuredRechargeable(f.Name())
		if err != nil {
			return price.Amount{}, false, nil, nil, err
		}
		recharging := sf.RechargingPack()
		if recharging == nil {
			// Nothing staged, nothing to bill.
			return price.Amount{}, false, nil, cf, nil
		}
		pack, err := cf.Pack(recharging.NumOfUnits)
		if err != nil {
			return price.Amount{}, false, nil, nil, err
		}
		amount, ok := pack.Prices.Get(m.sub.Currency)
		quantity := pack.NumOfUnits
		return amount, ok, &quantity, cf, nil

	default:
		return price.Amount{}, false, nil, nil, ierr.NewError("unknown feature kind").
			WithHintf("Cannot derive an invoice line for feature %q of type %T", f.Name(), f).
			Mark(ierr.ErrUnknownFeatureKind)
	}
}

func (m *InvoicesManager) configuredBoolean(name string) (*feature.ConfiguredBooleanFeature, error) {
	raw, err := m.configured.Get(name)
	if err != nil {
		return nil, err
	}
	cf, ok := raw.(*feature.ConfiguredBooleanFeature)
	if !ok {
		return nil, kindMismatch(name, raw)
	}
	return cf, nil
}

func (m *InvoicesManager) configuredCountable(name string) (*feature.ConfiguredCountableFeature, error) {
	raw, err := m.configured.Get(name)
	if err != nil {
		return nil, err
	}
	cf, ok := raw.(*feature.ConfiguredCountableFeature)
	if !ok {
		return nil, kindMismatch(name, raw)
	}
	return cf, nil
}

func (m *InvoicesManager) configuredRechargeable(name string) (*feature.ConfiguredRechargeableFeature, error) {
	raw, err := m.configured.Get(name)
	if err != nil {
		return nil, err
	}
	cf, ok := raw.(*feature.ConfiguredRechargeableFeature)
	if !ok {
		return nil, kindMismatch(name, raw)
	}
	return cf, nil
}

func kindMismatch(name string, configured feature.Feature) error {
	return ierr.NewError("feature kind mismatch").
		WithHintf("Subscribed feature %q does not match the configured kind %q", name, configured.Kind()).
		WithReportableDetails(map[string]any{
			"feature":         name,
			"configured_kind": configured.Kind(),
		}).
		Mark(ierr.ErrValidation)
}

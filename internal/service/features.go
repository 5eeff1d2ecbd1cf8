package service

import (
	"github.com/shopspring/decimal"

	"github.com/featurekit/featurekit/internal/clock"
	"github.com/featurekit/featurekit/internal/config"
	"github.com/featurekit/featurekit/internal/domain/feature"
	"github.com/featurekit/featurekit/internal/domain/invoice"
	"github.com/featurekit/featurekit/internal/domain/subscription"
	"github.com/featurekit/featurekit/internal/logger"
	"github.com/featurekit/featurekit/internal/types"
)

// FeaturesManager runs the periodic maintenance of a subscription's feature
// set: refreshing countable features whose period elapsed, keeping the
// smallest-refresh-interval bookkeeping current and recomputing the next
// renewal amount.
type FeaturesManager struct {
	cfg      *config.Configuration
	log      *logger.Logger
	invoices *InvoicesManager
	clk      clock.Clock
}

func NewFeaturesManager(cfg *config.Configuration, log *logger.Logger, invoices *InvoicesManager, clk clock.Clock) *FeaturesManager {
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return &FeaturesManager{
		cfg:      cfg,
		log:      log,
		invoices: invoices,
		clk:      clk,
	}
}

// RefreshDueFeatures refreshes every countable feature whose configured
// refresh period has elapsed, cumulating the unused remainder when the
// roll-over policy is on. It returns the names of the refreshed features and
// updates the subscription's refresh bookkeeping.
func (m *FeaturesManager) RefreshDueFeatures(sub *subscription.Subscription) ([]string, error) {
	var refreshed []string

	for _, f := range sub.Features.All() {
		sf, ok := f.(*feature.SubscribedCountableFeature)
		if !ok {
			continue
		}
		cf, err := m.configuredCountable(f.Name())
		if err != nil {
			return refreshed, err
		}
		if !sf.IsRefreshPeriodElapsed(cf.RefreshPeriod()) {
			continue
		}

		sf.Refresh()
		if m.cfg.Features.CumulateOnRefresh {
			if err := sf.Cumulate(); err != nil {
				return refreshed, err
			}
		}
		refreshed = append(refreshed, f.Name())
		m.log.Infow("refreshed countable feature",
			"subscription", sub.ID,
			"feature", f.Name(),
			"remained", sf.RemainedQuantity())
	}

	if err := m.SyncRefreshSchedule(sub); err != nil {
		return refreshed, err
	}
	return refreshed, nil
}

// SyncRefreshSchedule recomputes the subscription's smallest refresh
// interval across its countable features and schedules the next refresh one
// such interval from now. Subscriptions with no countable features have no
// refresh schedule.
func (m *FeaturesManager) SyncRefreshSchedule(sub *subscription.Subscription) error {
	var smallest types.RefreshPeriod
	for _, f := range sub.Features.All() {
		if _, ok := f.(*feature.SubscribedCountableFeature); !ok {
			continue
		}
		cf, err := m.configuredCountable(f.Name())
		if err != nil {
			return err
		}
		smallest = types.ShorterRefreshPeriod(smallest, cf.RefreshPeriod())
	}

	sub.SmallestRefreshInterval = smallest
	if smallest == "" {
		sub.NextRefreshOn = nil
		return nil
	}
	next, err := types.NextRefreshDate(m.clk.Now(), smallest)
	if err != nil {
		return err
	}
	sub.NextRefreshOn = &next
	return nil
}

// ComputeNextRenewAmount prices the subscription's currently billable
// features and records the gross total as the next renewal amount, the
// figure shown to the customer as "your next invoice".
func (m *FeaturesManager) ComputeNextRenewAmount(sub *subscription.Subscription) (decimal.Decimal, error) {
	section := invoice.NewSection(invoice.DefaultSection)
	if err := m.invoices.SetSubscription(sub).PopulateSection(section, nil); err != nil {
		return decimal.Zero, err
	}
	sub.NextRenewAmount = section.GrossTotal()
	return sub.NextRenewAmount, nil
}

func (m *FeaturesManager) configuredCountable(name string) (*feature.ConfiguredCountableFeature, error) {
	return m.invoices.configuredCountable(name)
}

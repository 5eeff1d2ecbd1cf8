package main

import (
	"fmt"
	"os"

	"github.com/featurekit/featurekit/internal/clock"
	"github.com/featurekit/featurekit/internal/config"
	"github.com/featurekit/featurekit/internal/domain/feature"
	"github.com/featurekit/featurekit/internal/domain/invoice"
	"github.com/featurekit/featurekit/internal/domain/subscription"
	"github.com/featurekit/featurekit/internal/logger"
	"github.com/featurekit/featurekit/internal/service"
	"github.com/featurekit/featurekit/internal/types"
)

// A small end-to-end walkthrough: configure a plan, subscribe a customer,
// run a refresh pass and print the next renewal invoice. Useful for kicking
// the tires without a host application.
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.NewLogger(cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	clk := clock.SystemClock{}

	configured, err := demoPlan(clk)
	if err != nil {
		log.Fatalf("building plan: %v", err)
	}

	sub, err := demoSubscription(clk)
	if err != nil {
		log.Fatalf("building subscription: %v", err)
	}

	invoices := service.NewInvoicesManager(cfg, log, configured)
	invoices.RegisterDrawer("text", invoice.NewTextDrawer())
	invoices.SetSubscription(sub)

	features := service.NewFeaturesManager(cfg, log, invoices, clk)
	refreshed, err := features.RefreshDueFeatures(sub)
	if err != nil {
		log.Fatalf("refreshing features: %v", err)
	}
	if len(refreshed) > 0 {
		log.Infow("refreshed features", "features", refreshed)
	}

	inv := invoice.New(sub.Currency, clk)
	if _, err := invoices.PopulateInvoice(inv, nil); err != nil {
		log.Fatalf("populating invoice: %v", err)
	}

	out, err := invoices.DrawInvoice(inv, "text")
	if err != nil {
		log.Fatalf("drawing invoice: %v", err)
	}
	fmt.Print(string(out))
}

func demoPlan(clk clock.Clock) (*feature.Collection, error) {
	factory, err := feature.NewFactoryWithMode(types.FactoryModeConfigured, clk)
	if err != nil {
		return nil, err
	}
	return feature.NewCollectionFromDetails(factory,
		[]string{"ads-free", "api-calls", "sms-credits"},
		map[string]feature.Details{
			"ads-free": {
				feature.DetailType:    "boolean",
				feature.DetailTaxName: "VAT",
				feature.DetailTaxRate: "0.22",
				feature.DetailPrices: map[string]any{
					"eur": map[string]any{
						"monthly": map[string]any{"gross": "12.20", "net": "10.00"},
						"yearly":  map[string]any{"gross": "122.00", "net": "100.00"},
					},
				},
			},
			"api-calls": {
				feature.DetailType:          "countable",
				feature.DetailTaxName:       "VAT",
				feature.DetailTaxRate:       "0.22",
				feature.DetailRefreshPeriod: "monthly",
				feature.DetailPacks: []any{
					map[string]any{
						feature.DetailNumOfUnits: 500,
						feature.DetailPrices: map[string]any{
							"eur": map[string]any{
								"monthly": map[string]any{"gross": "24.40", "net": "20.00"},
							},
						},
					},
				},
			},
			"sms-credits": {
				feature.DetailType:    "rechargeable",
				feature.DetailTaxName: "VAT",
				feature.DetailTaxRate: "0.22",
				feature.DetailPacks: []any{
					map[string]any{
						feature.DetailNumOfUnits: 500,
						feature.DetailPrices: map[string]any{
							"eur": map[string]any{"gross": "12.20", "net": "10.00"},
						},
					},
				},
			},
		})
}

func demoSubscription(clk clock.Clock) (*subscription.Subscription, error) {
	sub, err := subscription.New("eur", types.BillingIntervalMonthly, clk)
	if err != nil {
		return nil, err
	}

	until, err := sub.CalculateActiveUntil()
	if err != nil {
		return nil, err
	}

	adsFree, err := feature.NewSubscribedBooleanFeature("ads-free", feature.Details{
		feature.DetailEnabled: true,
	}, clk)
	if err != nil {
		return nil, err
	}
	adsFree.SetActiveUntil(until)

	apiCalls, err := feature.NewSubscribedCountableFeature("api-calls", feature.Details{
		feature.DetailSubscribedPack:   500,
		feature.DetailRemainedQuantity: 500,
	}, clk)
	if err != nil {
		return nil, err
	}
	apiCalls.SetActiveUntil(until)
	apiCalls.SetLastRefreshOn(types.AddClampedDate(clk.Now(), 0, -1, -1))

	smsCredits, err := feature.NewSubscribedRechargeableFeature("sms-credits", feature.Details{})
	if err != nil {
		return nil, err
	}
	smsCredits.SetRechargingPack(feature.SubscribedPack{NumOfUnits: 500})

	for _, f := range []feature.Feature{adsFree, apiCalls, smsCredits} {
		if err := sub.Features.Add(f); err != nil {
			return nil, err
		}
	}
	return sub, nil
}

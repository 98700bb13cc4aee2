// Command quote runs the canned plan-change scenarios through the mock
// billing provider and prints the resulting quotes.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/billingsdk/billingsdk-go/internal/config"
	"github.com/billingsdk/billingsdk-go/internal/domain/billing"
	"github.com/billingsdk/billingsdk-go/internal/domain/proration"
	"github.com/billingsdk/billingsdk-go/internal/logger"
	"github.com/billingsdk/billingsdk-go/internal/provider"
	"github.com/billingsdk/billingsdk-go/internal/types"
	"github.com/billingsdk/billingsdk-go/internal/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	validator.NewValidator()

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	log, err := logger.NewLogger(cfg.Logging.Level.String())
	if err != nil {
		return err
	}

	clock := types.NewSystemClock()
	billingProvider := provider.NewMockProvider(cfg, log, clock)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, scenario := range provider.Scenarios(clock) {
		quote, err := billingProvider.ComputeProrationQuote(ctx, scenario.Request)
		if err != nil {
			log.Errorw("scenario failed", "scenario", scenario.Name, "error", err)
			return err
		}
		if err := printQuote(scenario, quote, cfg.Formatting.DefaultLocale); err != nil {
			return err
		}
	}

	return nil
}

func printQuote(scenario provider.Scenario, quote *billing.ProrationQuote, locale string) error {
	fmt.Printf("%s — %s\n", scenario.Name, scenario.Description)

	diff := proration.PlanDifference(quote.CurrentPlan, quote.NewPlan)
	fmt.Printf("  %s -> %s (%s)\n", quote.CurrentPlan.Name, quote.NewPlan.Name, diff.ChangeType)

	for _, adj := range quote.Adjustments {
		amount, err := proration.FormatAmount(adj.Amount, quote.Currency, locale)
		if err != nil {
			return err
		}
		fmt.Printf("  %-6s %10s  %s\n", adj.Type, amount, adj.Description)
	}

	total, err := proration.FormatAmount(quote.Total, quote.Currency, locale)
	if err != nil {
		return err
	}
	fmt.Printf("  due now: %s, next billing date: %s\n\n",
		total, quote.NextBillingDate.Format("2006-01-02"))
	return nil
}

package provider

import (
	"context"
	"time"

	"github.com/billingsdk/billingsdk-go/internal/config"
	"github.com/billingsdk/billingsdk-go/internal/domain/billing"
	"github.com/billingsdk/billingsdk-go/internal/domain/proration"
	ierr "github.com/billingsdk/billingsdk-go/internal/errors"
	"github.com/billingsdk/billingsdk-go/internal/logger"
	"github.com/billingsdk/billingsdk-go/internal/types"
)

// MockProvider is the reference BillingProvider. It delegates to the
// proration calculator after an artificial delay that emulates a remote
// billing backend. The delay value carries no meaning and is configurable.
type MockProvider struct {
	latency time.Duration
	clock   types.Clock
	logger  *logger.Logger
}

var _ BillingProvider = (*MockProvider)(nil)

// NewMockProvider creates a mock provider. The clock drives fixture
// generation and should be frozen in tests.
func NewMockProvider(cfg *config.Configuration, log *logger.Logger, clock types.Clock) *MockProvider {
	return &MockProvider{
		latency: cfg.Provider.MockLatency,
		clock:   clock,
		logger:  log,
	}
}

// Clock exposes the provider's time source for fixture synthesis.
func (p *MockProvider) Clock() types.Clock {
	return p.clock
}

func (p *MockProvider) ComputeProrationQuote(ctx context.Context, req QuoteRequest) (*billing.ProrationQuote, error) {
	if err := req.Validate(); err != nil {
		p.logger.Errorw("invalid quote request",
			"error", err,
		)
		return nil, err
	}

	if err := p.simulateLatency(ctx); err != nil {
		return nil, err
	}

	quote := proration.ComputeQuote(proration.QuoteParams{
		Subscription: req.Subscription,
		CurrentPlan:  req.CurrentPlan,
		NewPlan:      req.NewPlan,
		ChangeDate:   req.ChangeDate,
		Coupon:       req.Coupon,
		TaxRate:      req.TaxRate,
	})
	quote.ID = types.GenerateUUIDWithPrefix("quote")

	p.logger.Debugw("computed proration quote",
		"quote_id", quote.ID,
		"subscription_id", req.Subscription.ID,
		"current_plan", req.CurrentPlan.ID,
		"new_plan", req.NewPlan.ID,
		"total", quote.Total.String(),
	)

	return quote, nil
}

// simulateLatency waits for the configured delay while honoring context
// cancellation, the only asynchronous behavior this provider has.
func (p *MockProvider) simulateLatency(ctx context.Context) error {
	if p.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(p.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ierr.WithError(ctx.Err()).
			WithHint("quote computation was cancelled").
			Mark(ierr.ErrSystem)
	case <-timer.C:
		return nil
	}
}

// Package payment provides the payment gateway adapter. The stub gateway
// simulates processing latency and approves every charge, which is enough
// for a single-process deployment without a real acquirer.
package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/kernel"
	"github.com/Mearylis/Restaurant-Controller/internal/core/ports"
)

// DefaultProcessingDelay mimics a round trip to an external acquirer.
const DefaultProcessingDelay = 500 * time.Millisecond

var _ ports.PaymentProcessor = (*StubGateway)(nil)

// StubGateway approves every charge after a configurable delay.
type StubGateway struct {
	delay  time.Duration
	logger *slog.Logger
}

func NewStubGateway(delay time.Duration, logger *slog.Logger) *StubGateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &StubGateway{delay: delay, logger: logger}
}

func (g *StubGateway) Process(ctx context.Context, amount kernel.Money, method string) (bool, error) {
	g.logger.Info("processing payment",
		slog.String("amount", amount.String()),
		slog.String("method", method))

	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-timer.C:
		}
	}

	g.logger.Info("payment approved", slog.String("method", method))
	return true, nil
}

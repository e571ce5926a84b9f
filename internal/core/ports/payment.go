package ports

import (
	"context"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/kernel"
)

// PaymentProcessor charges a customer for an order.
type PaymentProcessor interface {
	// Process charges the amount using the given method ("Cash", "Card", ...).
	// It reports whether the charge went through. An error means the gateway
	// itself failed, not that the charge was declined.
	Process(ctx context.Context, amount kernel.Money, method string) (bool, error)
}

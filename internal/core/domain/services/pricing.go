package services

import (
	"fmt"
	"strings"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/kernel"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/order"
	"github.com/Mearylis/Restaurant-Controller/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Pricing policy factors.
var (
	happyHourFactor   = decimal.NewFromFloat(0.8)
	weekendFactor     = decimal.NewFromFloat(1.1)
	loyaltyTierFactor = decimal.NewFromFloat(0.05)
	decimalOne        = decimal.NewFromInt(1)
	decimalHundred    = decimal.NewFromInt(100)
)

// maxLoyaltyPolicyLevel caps the loyalty pricing policy level.
const maxLoyaltyPolicyLevel = 3

// PricingPolicy is a named, swappable rule that adjusts an order's raw item
// total before the customer's own loyalty discount is applied. Exactly the
// known policies implement it; new policies are a deliberate design change,
// not an extension point.
type PricingPolicy interface {
	// Apply returns the adjusted total.
	Apply(total kernel.Money) kernel.Money
	// Description returns a human-readable policy summary.
	Description() string
}

// RegularPolicy applies no adjustment.
type RegularPolicy struct{}

func (RegularPolicy) Apply(total kernel.Money) kernel.Money { return total }
func (RegularPolicy) Description() string                   { return "Regular pricing" }

// HappyHourPolicy applies a time-of-day discount of 20%.
type HappyHourPolicy struct{}

func (HappyHourPolicy) Apply(total kernel.Money) kernel.Money {
	return total.MulFactor(happyHourFactor)
}
func (HappyHourPolicy) Description() string { return "Happy Hour -20%" }

// WeekendPolicy applies a weekend surcharge of 10%.
type WeekendPolicy struct{}

func (WeekendPolicy) Apply(total kernel.Money) kernel.Money {
	return total.MulFactor(weekendFactor)
}
func (WeekendPolicy) Description() string { return "Weekend surcharge +10%" }

// LoyaltyPolicy applies a tiered discount of 5% per level, level capped at 3.
type LoyaltyPolicy struct {
	level int
}

// NewLoyaltyPolicy creates a loyalty policy for the given level.
// Levels above 3 are capped; negative levels count as 0.
func NewLoyaltyPolicy(level int) LoyaltyPolicy {
	if level > maxLoyaltyPolicyLevel {
		level = maxLoyaltyPolicyLevel
	}
	if level < 0 {
		level = 0
	}
	return LoyaltyPolicy{level: level}
}

// Level returns the capped loyalty level.
func (p LoyaltyPolicy) Level() int { return p.level }

func (p LoyaltyPolicy) Apply(total kernel.Money) kernel.Money {
	discount := loyaltyTierFactor.Mul(decimal.NewFromInt(int64(p.level)))
	return total.MulFactor(decimalOne.Sub(discount))
}

func (p LoyaltyPolicy) Description() string {
	return fmt.Sprintf("Loyalty Level %d (-%d%%)", p.level, p.level*5)
}

// SeasonalPolicy applies a named percentage discount, e.g. a summer special.
type SeasonalPolicy struct {
	season  string
	percent decimal.Decimal
}

// NewSeasonalPolicy creates a seasonal policy discounting by the given percent.
func NewSeasonalPolicy(season string, percent float64) SeasonalPolicy {
	return SeasonalPolicy{season: season, percent: decimal.NewFromFloat(percent)}
}

func (p SeasonalPolicy) Apply(total kernel.Money) kernel.Money {
	return total.MulFactor(decimalOne.Sub(p.percent.Div(decimalHundred)))
}

func (p SeasonalPolicy) Description() string {
	return fmt.Sprintf("%s special -%s%%", p.season, p.percent)
}

// PolicyFromName resolves a pricing policy by its configuration name.
// Known names: regular, happy-hour, weekend, loyalty (fixed level 2).
func PolicyFromName(name string) (PricingPolicy, error) {
	switch strings.ToLower(name) {
	case "regular":
		return RegularPolicy{}, nil
	case "happy-hour", "happyhour":
		return HappyHourPolicy{}, nil
	case "weekend":
		return WeekendPolicy{}, nil
	case "loyalty":
		return NewLoyaltyPolicy(2), nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("pricingPolicy",
			fmt.Errorf("%q is not a known policy", name))
	}
}

// PricingEngine computes order totals. It is a stateless, side-effect-free
// domain service: the same inputs always produce the same total.
//
// The computation runs in a fixed order: sum the item prices, apply the
// active pricing policy, then apply the customer's own loyalty discount to
// the post-policy total. No rounding is performed; callers format for
// display.
type PricingEngine struct{}

// NewPricingEngine creates a new PricingEngine instance.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// ComputeTotal prices the given items under the policy and the customer's
// loyalty discount fraction. The result is never negative: a discount
// fraction above 1 is treated as a full waiver, and policies cannot drive
// a non-negative subtotal below zero.
func (PricingEngine) ComputeTotal(
	items []order.LineItem,
	policy PricingPolicy,
	loyaltyDiscount decimal.Decimal,
) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.Price())
	}

	if policy != nil {
		total = policy.Apply(total)
	}

	if loyaltyDiscount.IsPositive() {
		factor := decimalOne.Sub(loyaltyDiscount)
		if factor.IsNegative() {
			factor = decimal.Zero
		}
		total = total.MulFactor(factor)
	}

	if total.IsNegative() {
		return kernel.ZeroMoney()
	}
	return total
}

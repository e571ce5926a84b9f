package customer

import (
	"errors"
	"strings"
	"sync"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/kernel"
	"github.com/Mearylis/Restaurant-Controller/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Loyalty thresholds and discount parameters.
const (
	vipPointsThreshold    = 500
	goldPointsThreshold   = 200
	silverPointsThreshold = 100
	pointsPerTier         = 100
	loyaltyPointsDivisor  = 10
)

var (
	discountPerTier = decimal.NewFromFloat(0.05)
	maxDiscount     = decimal.NewFromFloat(0.15)
)

// Domain errors for customer operations.
var (
	// ErrCustomerNameIsRequired is returned when creating a customer without a name.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCustomerPhoneIsRequired is returned when creating a customer without a phone.
	ErrCustomerPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCustomerIsNotConstructed is returned when using an improperly initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer is the guest collaborator the order engine consumes from.
// It carries identity (name, phone), contact details, accumulated loyalty
// points, and the history of completed order identifiers.
//
// The loyalty discount is derived from lifetime points, independent of any
// active pricing policy: each full 100 points grants a 5% tier, capped at
// 15%. Points grow by one tenth of a completed order's total, floored.
//
// Customer state is mutated from order completion while subscribers may be
// reading it concurrently, so all access is internally synchronized.
type Customer struct {
	name          string
	phone         string
	email         string
	loyaltyPoints int
	orderHistory  []kernel.OrderID
	preferences   string

	mu sync.RWMutex
}

// NewCustomer creates a Customer with zero loyalty points and empty history.
// Name and phone are required; email is optional.
func NewCustomer(name, phone, email string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrCustomerNameIsRequired
	}
	if strings.TrimSpace(phone) == "" {
		return nil, ErrCustomerPhoneIsRequired
	}
	return &Customer{
		name:  name,
		phone: phone,
		email: email,
	}, nil
}

// Validate ensures the Customer instance was properly constructed through
// NewCustomer.
func (c *Customer) Validate() error {
	if c == nil || c.name == "" || c.phone == "" {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Phone returns the customer's phone number. The phone doubles as the
// customer key in notification state.
func (c *Customer) Phone() string {
	return c.phone
}

// Email returns the customer's email address, possibly empty.
func (c *Customer) Email() string {
	return c.email
}

// LoyaltyPoints returns the customer's accumulated points.
func (c *Customer) LoyaltyPoints() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loyaltyPoints
}

// SetLoyaltyPoints replaces the accumulated points. Used when seeding
// customers from an external profile.
func (c *Customer) SetLoyaltyPoints(points int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loyaltyPoints = points
}

// AddOrderToHistory appends a completed order to the customer's history and
// grants loyalty points worth one tenth of the order total, floored.
func (c *Customer) AddOrderToHistory(orderID kernel.OrderID, total kernel.Money) {
	earned := int(total.Decimal().Div(decimal.NewFromInt(loyaltyPointsDivisor)).IntPart())

	c.mu.Lock()
	defer c.mu.Unlock()
	c.orderHistory = append(c.orderHistory, orderID)
	c.loyaltyPoints += earned
}

// OrderHistory returns a snapshot of the completed order identifiers.
func (c *Customer) OrderHistory() []kernel.OrderID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]kernel.OrderID, len(c.orderHistory))
	copy(out, c.orderHistory)
	return out
}

// LoyaltyDiscount returns the customer's own discount fraction derived from
// lifetime points: min(0.05 x (points/100), 0.15).
func (c *Customer) LoyaltyDiscount() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tier := int64(c.loyaltyPoints / pointsPerTier)
	discount := discountPerTier.Mul(decimal.NewFromInt(tier))
	if discount.GreaterThan(maxDiscount) {
		return maxDiscount
	}
	return discount
}

// IsVIP reports whether the customer qualifies for VIP treatment.
func (c *Customer) IsVIP() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loyaltyPoints >= vipPointsThreshold
}

// Level returns the customer's loyalty level name.
func (c *Customer) Level() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	switch {
	case c.loyaltyPoints >= vipPointsThreshold:
		return "VIP"
	case c.loyaltyPoints >= goldPointsThreshold:
		return "Gold"
	case c.loyaltyPoints >= silverPointsThreshold:
		return "Silver"
	default:
		return "Regular"
	}
}

// Preferences returns the customer's free-form preferences text.
func (c *Customer) Preferences() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.preferences
}

// SetPreferences replaces the customer's preferences text.
func (c *Customer) SetPreferences(preferences string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.preferences = preferences
}

package menu

import (
	"errors"
	"strings"
	"sync"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/kernel"
	"github.com/Mearylis/Restaurant-Controller/internal/pkg/errs"
)

// Domain errors for menu operations.
var (
	// ErrDishNameIsRequired is returned when creating a dish without a name.
	ErrDishNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrDishPriceIsNegative is returned for a negative dish price.
	ErrDishPriceIsNegative = errs.NewValueIsInvalidErrorWithCause("price",
		errors.New("price cannot be negative"))
	// ErrDishNotFound is returned by the catalog for an unknown dish name.
	ErrDishNotFound = errors.New("dish not found")
)

// Dish is a category-tagged menu position. The order engine only reads its
// price and category; everything else is presentation.
type Dish struct {
	name     string
	price    kernel.Money
	category string
}

// NewDish creates a dish after validating that the name is non-blank and
// the price is non-negative. Violations are construction failures.
func NewDish(name string, price kernel.Money, category string) (Dish, error) {
	if strings.TrimSpace(name) == "" {
		return Dish{}, ErrDishNameIsRequired
	}
	if price.IsNegative() {
		return Dish{}, ErrDishPriceIsNegative
	}
	return Dish{name: name, price: price, category: category}, nil
}

// Name returns the dish's display name.
func (d Dish) Name() string {
	return d.name
}

// Price returns the dish's current menu price.
func (d Dish) Price() kernel.Money {
	return d.price
}

// Category returns the dish's menu category.
func (d Dish) Category() string {
	return d.category
}

// Catalog is the menu collaborator: a named list of dishes.
// It is safe for concurrent use.
type Catalog struct {
	mu     sync.RWMutex
	dishes []Dish
}

// NewCatalog creates an empty menu catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Add appends a dish to the catalog. Adding a dish under an existing name
// replaces the old entry in place.
func (c *Catalog) Add(d Dish) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.dishes {
		if existing.name == d.name {
			c.dishes[i] = d
			return
		}
	}
	c.dishes = append(c.dishes, d)
}

// Remove deletes the first dish with the given name.
// Returns false when no dish matches.
func (c *Catalog) Remove(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, d := range c.dishes {
		if d.name == name {
			c.dishes = append(c.dishes[:i], c.dishes[i+1:]...)
			return true
		}
	}
	return false
}

// ByName returns the first dish with the given name.
func (c *Catalog) ByName(name string) (Dish, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, d := range c.dishes {
		if d.name == name {
			return d, nil
		}
	}
	return Dish{}, ErrDishNotFound
}

// All returns a snapshot of the catalog in insertion order.
func (c *Catalog) All() []Dish {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Dish, len(c.dishes))
	copy(out, c.dishes)
	return out
}

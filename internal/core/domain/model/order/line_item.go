package order

import (
	"errors"
	"strings"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/kernel"
	"github.com/Mearylis/Restaurant-Controller/internal/pkg/errs"
)

// Domain errors for line item construction.
var (
	// ErrLineItemNameIsRequired is returned for an empty or blank item name.
	ErrLineItemNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrLineItemPriceIsNegative is returned for a negative item price.
	ErrLineItemPriceIsNegative = errs.NewValueIsInvalidErrorWithCause("price",
		errors.New("price cannot be negative"))
)

// LineItem is an immutable value object representing one priced position of
// an order. The price is frozen at order-build time: later changes to the
// menu never affect an existing order.
type LineItem struct {
	name     string
	price    kernel.Money
	category string
}

// NewLineItem creates a line item after validating its invariants.
// The name must be non-blank and the price non-negative; violations are
// construction failures, not recoverable policy denials.
func NewLineItem(name string, price kernel.Money, category string) (LineItem, error) {
	if strings.TrimSpace(name) == "" {
		return LineItem{}, ErrLineItemNameIsRequired
	}
	if price.IsNegative() {
		return LineItem{}, ErrLineItemPriceIsNegative
	}
	return LineItem{name: name, price: price, category: category}, nil
}

// Name returns the item's display name.
func (i LineItem) Name() string {
	return i.name
}

// Price returns the item's price as frozen at order-build time.
func (i LineItem) Price() kernel.Money {
	return i.price
}

// Category returns the menu category the item came from.
func (i LineItem) Category() string {
	return i.category
}

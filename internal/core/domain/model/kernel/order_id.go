package kernel

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/Mearylis/Restaurant-Controller/internal/pkg/errs"
)

// ErrOrderIDIsNotConstructed indicates a zero-value OrderID.
// Valid order identifiers are allocated by an OrderIDSequence or parsed
// through OrderIDFromInt.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be allocated via OrderIDSequence.Next or created via OrderIDFromInt")

// OrderID is a value object identifying an order. Identifiers are positive
// integers, assigned once at order creation and never reused. The zero value
// is invalid.
type OrderID struct {
	value int64
}

// OrderIDFromInt creates an OrderID from a raw integer.
// Returns an error if the value is not positive. This constructor is used
// when reconstructing identifiers from external input such as API paths.
func OrderIDFromInt(value int64) (OrderID, error) {
	if value <= 0 {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%d is not greater than 0", value))
	}
	return OrderID{value: value}, nil
}

// Int64 returns the numeric value of the identifier.
func (id OrderID) Int64() int64 {
	return id.value
}

// String returns the decimal representation of the identifier.
func (id OrderID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// IsEqual compares two order identifiers by value.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate returns ErrOrderIDIsNotConstructed for a zero-value OrderID.
func (id OrderID) Validate() error {
	if id.value <= 0 {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}

// OrderIDSequence allocates strictly increasing order identifiers.
// Allocation is linearizable: concurrent callers never observe a duplicate
// and every allocated identifier is greater than all previously allocated
// ones. The zero value starts at 1; use NewOrderIDSequence to seed a
// different starting point.
type OrderIDSequence struct {
	last atomic.Int64
}

// NewOrderIDSequence creates a sequence whose first allocated identifier
// is start. A non-positive start falls back to 1.
func NewOrderIDSequence(start int64) *OrderIDSequence {
	if start <= 0 {
		start = 1
	}
	s := &OrderIDSequence{}
	s.last.Store(start - 1)
	return s
}

// Next allocates and returns the next identifier in the sequence.
func (s *OrderIDSequence) Next() OrderID {
	return OrderID{value: s.last.Add(1)}
}

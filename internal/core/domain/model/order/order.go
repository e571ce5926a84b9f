package order

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/customer"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/kernel"
	"github.com/Mearylis/Restaurant-Controller/internal/pkg/errs"
	"github.com/Mearylis/Restaurant-Controller/internal/pkg/guard"
)

// Domain errors for order operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrCustomerIsRequired is returned when creating an order without a customer.
	ErrCustomerIsRequired = errs.NewValueIsRequiredError("customer")
	// ErrWaiterAlreadyAssigned is returned when assigning a waiter to an order
	// that already has one.
	ErrWaiterAlreadyAssigned = errors.New("order already has an assigned waiter")
	// ErrCookAlreadyAssigned is returned when assigning a cook to an order
	// that already has one.
	ErrCookAlreadyAssigned = errors.New("order already has an assigned cook")
	// ErrOrderIsCompleted is returned when mutating fields that are frozen
	// once the order reaches its terminal status.
	ErrOrderIsCompleted = errors.New("order is completed")
)

// Order is the aggregate root for a restaurant order. It holds identity,
// line items, the computed total, the current lifecycle status with its
// immutable status-change history, and the attached notification
// subscribers.
//
// Order follows these invariants:
//   - Identity is assigned once at creation and never changes
//   - Item prices are frozen when the item is added
//   - The status history is append-only; its first entry records the
//     initial Pending status and every later entry chains to the previous
//   - The completion timestamp is stamped exactly once, when the order
//     first reaches Paid
//   - Waiter and cook are each assigned at most once
//
// The record accepts any transition between distinct statuses; ordering
// policy is the orchestrator's concern. Every accepted transition is pushed
// synchronously to all attached subscribers before ChangeStatus returns.
//
// An Order is owned by the order store after creation; staff members and
// notification state refer to it by identifier only. All methods are safe
// for concurrent use.
type Order struct {
	// id is the unique monotonically allocated identifier for the order
	id kernel.OrderID

	// tableNumber references the table the order was placed at
	tableNumber int

	// customer is the guest the order belongs to
	customer *customer.Customer

	// items is the ordered sequence of priced positions
	items []LineItem

	// status is the current lifecycle state
	status Status

	// total is the computed price, recomputed on demand by the orchestrator
	total kernel.Money

	// history is the append-only status-change audit trail
	history []StatusChange

	// createdAt is set once at construction
	createdAt time.Time

	// completedAt is stamped exactly once when the order reaches Paid
	completedAt *time.Time

	// specialInstructions is free-form text, mutable until completion
	specialInstructions string

	// waiterID and cookID are the assigned staff identifiers (nil if unassigned)
	waiterID *kernel.StaffID
	cookID   *kernel.StaffID

	// subscribers receive a synchronous callback on every accepted transition
	subscribers []Subscriber

	// guard ensures the order was created via NewOrder
	guard guard.ConstructorGuard

	mu sync.RWMutex
}

// NewOrder creates a new Order in the Pending status. The history is seeded
// with the initial entry (no previous status, Pending, creation time).
//
// Parameters:
//   - id: Unique order identifier (must be valid)
//   - tableNumber: Table the order is placed at (must be positive)
//   - cust: The customer placing the order (must be non-nil and constructed)
//
// Returns the created order, or a validation error if any parameter is
// invalid.
func NewOrder(id kernel.OrderID, tableNumber int, cust *customer.Customer) (*Order, error) {
	if err := errors.Join(
		validateID(id),
		validateTableNumber(tableNumber),
		validateCustomer(cust),
	); err != nil {
		return nil, err
	}

	now := time.Now()
	o := &Order{
		id:          id,
		tableNumber: tableNumber,
		customer:    cust,
		status:      Pending,
		createdAt:   now,
		guard:       guard.NewConstructorGuard(),
	}
	o.history = append(o.history, newStatusChange(nil, Pending, now))
	return o, nil
}

func validateID(id kernel.OrderID) error {
	return id.Validate()
}

func validateTableNumber(tableNumber int) error {
	if tableNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("tableNumber",
			fmt.Errorf("%d is not greater than 0", tableNumber))
	}
	return nil
}

func validateCustomer(cust *customer.Customer) error {
	if cust == nil {
		return ErrCustomerIsRequired
	}
	return cust.Validate()
}

// Validate ensures the Order instance was properly constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// TableNumber returns the number of the table the order was placed at.
func (o *Order) TableNumber() int {
	return o.tableNumber
}

// Customer returns the customer the order belongs to.
func (o *Order) Customer() *customer.Customer {
	return o.customer
}

// AddItem appends a line item to the order. The item's price was frozen at
// construction of the item. Items cannot be added once the order completed.
func (o *Order) AddItem(item LineItem) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.completedAt != nil {
		return ErrOrderIsCompleted
	}
	o.items = append(o.items, item)
	return nil
}

// Items returns a snapshot of the order's line items, never the live slice.
func (o *Order) Items() []LineItem {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.status
}

// Total returns the most recently computed total price.
func (o *Order) Total() kernel.Money {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.total
}

// SetTotal records a freshly computed total. Negative totals are rejected;
// the pricing engine never produces one.
func (o *Order) SetTotal(total kernel.Money) error {
	if total.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("total",
			fmt.Errorf("%s is negative", total))
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.total = total
	return nil
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CompletedAt returns the completion timestamp, or nil if the order has not
// reached the terminal status.
func (o *Order) CompletedAt() *time.Time {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.completedAt == nil {
		return nil
	}
	t := *o.completedAt
	return &t
}

// SpecialInstructions returns the free-form instructions text.
func (o *Order) SpecialInstructions() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.specialInstructions
}

// SetSpecialInstructions replaces the instructions text.
// Returns ErrOrderIsCompleted once the order reached the terminal status.
func (o *Order) SetSpecialInstructions(instructions string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.completedAt != nil {
		return ErrOrderIsCompleted
	}
	o.specialInstructions = instructions
	return nil
}

// AssignWaiter records the waiter serving the order. The slot is set at
// most once; a second assignment fails without mutation.
func (o *Order) AssignWaiter(id kernel.StaffID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.waiterID != nil {
		return ErrWaiterAlreadyAssigned
	}
	o.waiterID = &id
	return nil
}

// AssignCook records the cook preparing the order. The slot is set at most
// once; a second assignment fails without mutation.
func (o *Order) AssignCook(id kernel.StaffID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.cookID != nil {
		return ErrCookAlreadyAssigned
	}
	o.cookID = &id
	return nil
}

// WaiterID returns the assigned waiter's identifier, or nil if unassigned.
func (o *Order) WaiterID() *kernel.StaffID {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.waiterID == nil {
		return nil
	}
	id := *o.waiterID
	return &id
}

// CookID returns the assigned cook's identifier, or nil if unassigned.
func (o *Order) CookID() *kernel.StaffID {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if o.cookID == nil {
		return nil
	}
	id := *o.cookID
	return &id
}

// History returns a snapshot of the status-change audit trail.
func (o *Order) History() []StatusChange {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make([]StatusChange, len(o.history))
	copy(out, o.history)
	return out
}

// Attach adds a subscriber to the order's notification list.
// Late subscribers do not receive a replay of past transitions.
func (o *Order) Attach(sub Subscriber) {
	if sub == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	o.subscribers = append(o.subscribers, sub)
}

// Detach removes a subscriber by name from future notifications.
func (o *Order) Detach(sub Subscriber) {
	if sub == nil {
		return
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	for i, s := range o.subscribers {
		if s.Name() == sub.Name() {
			o.subscribers = append(o.subscribers[:i], o.subscribers[i+1:]...)
			return
		}
	}
}

// DetachAll removes every attached subscriber.
func (o *Order) DetachAll() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.subscribers = nil
}

// ChangeStatus transitions the order to a new status.
//
// Setting the current status again is a no-op: no history entry is recorded
// and no notification fires. Any other transition between valid statuses is
// accepted by the record; ordering policy is enforced by the orchestrator.
//
// On every accepted transition the order appends a StatusChange carrying
// the previous and new status with the current time, stamps the completion
// timestamp when reaching Paid for the first time, and then synchronously
// notifies every attached subscriber with the record and that StatusChange.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.mu.Lock()
	if o.status == newStatus {
		o.mu.Unlock()
		return nil
	}

	now := time.Now()
	prev := o.status
	change := newStatusChange(&prev, newStatus, now)
	o.history = append(o.history, change)
	o.status = newStatus
	if newStatus == Paid && o.completedAt == nil {
		o.completedAt = &now
	}

	subs := make([]Subscriber, len(o.subscribers))
	copy(subs, o.subscribers)
	o.mu.Unlock()

	// Delivery happens outside the order lock so subscribers can read the
	// record through its accessors. The transition travels with the
	// notification: a concurrent caller may have moved the record past
	// newStatus before a subscriber runs, and subscribers must still
	// classify this delivery as the transition that caused it.
	for _, sub := range subs {
		sub.Notify(o, change)
	}
	return nil
}

package table

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/customer"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/kernel"
	"github.com/Mearylis/Restaurant-Controller/internal/pkg/errs"
)

// Domain errors for table operations.
var (
	// ErrTableIsOccupied is returned when occupying a table that already has a guest.
	ErrTableIsOccupied = errors.New("table is already occupied")
	// ErrTableNotFound is returned by the registry for an unknown table number.
	ErrTableNotFound = errors.New("table not found")
)

// Table is the occupancy collaborator the order engine consumes from:
// an occupancy flag, the current guest, and a reference to the current
// order by identifier.
type Table struct {
	number int
	seats  int

	occupied bool
	guest    *customer.Customer
	orderID  *kernel.OrderID

	mu sync.Mutex
}

// NewTable creates a free table with the given number and seat count.
func NewTable(number, seats int) (*Table, error) {
	if number <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("tableNumber",
			fmt.Errorf("%d is not greater than 0", number))
	}
	if seats <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("seats",
			fmt.Errorf("%d is not greater than 0", seats))
	}
	return &Table{number: number, seats: seats}, nil
}

// Number returns the table number.
func (t *Table) Number() int {
	return t.number
}

// Seats returns the table's seat count.
func (t *Table) Seats() int {
	return t.seats
}

// IsOccupied reports whether a guest is currently seated.
func (t *Table) IsOccupied() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.occupied
}

// Guest returns the currently seated customer, or nil for a free table.
func (t *Table) Guest() *customer.Customer {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.guest
}

// OrderID returns the identifier of the current order, or nil when no
// order has been placed at the table yet.
func (t *Table) OrderID() *kernel.OrderID {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.orderID == nil {
		return nil
	}
	id := *t.orderID
	return &id
}

// Occupy seats a guest at the table with no order yet.
// Returns ErrTableIsOccupied without mutation when the table is taken.
func (t *Table) Occupy(guest *customer.Customer) error {
	if err := guest.Validate(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.occupied {
		return ErrTableIsOccupied
	}
	t.occupied = true
	t.guest = guest
	t.orderID = nil
	return nil
}

// AssignOrder records the order placed at the table.
func (t *Table) AssignOrder(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.orderID = &id
	return nil
}

// Free releases the table completely: guest and order references are cleared.
func (t *Table) Free() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.occupied = false
	t.guest = nil
	t.orderID = nil
}

// Registry holds the restaurant's tables keyed by number.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	tables map[int]*Table
}

// NewRegistry creates an empty table registry.
func NewRegistry() *Registry {
	return &Registry{tables: make(map[int]*Table)}
}

// Register adds a table to the registry. Re-registering a number replaces
// the previous table.
func (r *Registry) Register(t *Table) {
	if t == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[t.number] = t
}

// ByNumber returns the table with the given number.
func (r *Registry) ByNumber(number int) (*Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tables[number]
	if !ok {
		return nil, ErrTableNotFound
	}
	return t, nil
}

// Available returns the free tables sorted by number.
func (r *Registry) Available() []*Table {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Table, 0, len(r.tables))
	for _, t := range r.tables {
		if !t.IsOccupied() {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].number < out[j].number })
	return out
}

// All returns every registered table sorted by number.
func (r *Registry) All() []*Table {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Table, 0, len(r.tables))
	for _, t := range r.tables {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].number < out[j].number })
	return out
}

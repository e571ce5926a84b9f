package staff

import (
	"errors"
	"sync"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/kernel"
	"github.com/Mearylis/Restaurant-Controller/internal/pkg/errs"
	"github.com/Mearylis/Restaurant-Controller/internal/pkg/guard"
)

// Domain errors for staff operations.
var (
	// ErrStaffNameIsRequired is returned when creating a staff member without a name.
	ErrStaffNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrStaffMemberIsNotConstructed is returned when using an improperly
	// initialized StaffMember.
	ErrStaffMemberIsNotConstructed = errors.New("StaffMember must be created via NewStaffMember constructor")
)

// WorkloadLevel classifies a staff member's current load relative to their
// role capacity.
type WorkloadLevel int

const (
	// WorkloadOffDuty applies to staff whose shift has ended.
	WorkloadOffDuty WorkloadLevel = iota
	// WorkloadLight is below 40% of capacity.
	WorkloadLight
	// WorkloadModerate is between 40% and 75% of capacity.
	WorkloadModerate
	// WorkloadHeavy is above 75% of capacity.
	WorkloadHeavy
)

// String returns the human-readable name of the workload level.
func (w WorkloadLevel) String() string {
	switch w {
	case WorkloadLight:
		return "Light"
	case WorkloadModerate:
		return "Moderate"
	case WorkloadHeavy:
		return "Heavy"
	default:
		return "Off Duty"
	}
}

// StaffMember is the aggregate root for one member of the restaurant staff.
// It manages duty status and the bounded set of currently assigned orders.
//
// Business rules:
//   - The assignment set never exceeds the role's capacity
//   - The check-then-assign step is atomic per member, so concurrent
//     dispatch cannot overrun capacity
//   - The assignment set is mutated only through Assign and Complete
//
// All methods are safe for concurrent use.
type StaffMember struct {
	// id uniquely identifies the staff member
	id kernel.StaffID
	// name is the human-readable name of the staff member
	name string
	// role determines the member's concurrent-order capacity
	role Role

	// onDuty reports whether the member is currently on shift
	onDuty bool
	// assigned is the set of currently assigned order identifiers
	assigned map[int64]kernel.OrderID
	// completedToday counts orders completed in the current period
	completedToday int

	// guard ensures the member was created via NewStaffMember
	guard guard.ConstructorGuard

	mu sync.Mutex
}

// NewStaffMember creates a staff member who starts on duty with an empty
// assignment set.
//
// Parameters:
//   - id: Unique staff identifier (must be valid)
//   - name: Human-readable name (must be non-empty)
//   - role: One of the closed role set (must be valid)
func NewStaffMember(id kernel.StaffID, name string, role Role) (*StaffMember, error) {
	if err := errors.Join(
		id.Validate(),
		validateName(name),
		role.Validate(),
	); err != nil {
		return nil, err
	}

	return &StaffMember{
		id:       id,
		name:     name,
		role:     role,
		onDuty:   true,
		assigned: make(map[int64]kernel.OrderID),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func validateName(name string) error {
	if name == "" {
		return ErrStaffNameIsRequired
	}
	return nil
}

// Validate ensures the StaffMember instance was properly constructed
// through NewStaffMember.
func (m *StaffMember) Validate() error {
	if m == nil {
		return ErrStaffMemberIsNotConstructed
	}
	return m.guard.Validate(ErrStaffMemberIsNotConstructed)
}

// IsEqual compares two staff members by their unique identifiers.
func (m *StaffMember) IsEqual(other *StaffMember) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the staff member's unique identifier.
func (m *StaffMember) ID() kernel.StaffID {
	return m.id
}

// Name returns the staff member's name.
func (m *StaffMember) Name() string {
	return m.name
}

// Role returns the staff member's role.
func (m *StaffMember) Role() Role {
	return m.role
}

// IsOnDuty reports whether the staff member is currently on shift.
func (m *StaffMember) IsOnDuty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.onDuty
}

// StartShift puts the staff member on duty.
func (m *StaffMember) StartShift() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onDuty = true
}

// EndShift takes the staff member off duty. Current assignments remain
// until completed.
func (m *StaffMember) EndShift() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onDuty = false
}

// CanAccept reports whether the staff member can take one more order:
// on duty and below role capacity.
func (m *StaffMember) CanAccept() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.canAcceptLocked()
}

func (m *StaffMember) canAcceptLocked() bool {
	return m.onDuty && len(m.assigned) < m.role.Capacity()
}

// Assign atomically checks capacity and adds the order to the assignment
// set. Returns false without mutation when the member is off duty or at
// capacity. Assigning an order that is already in the set is a no-op
// reported as success.
func (m *StaffMember) Assign(orderID kernel.OrderID) bool {
	if orderID.Validate() != nil {
		return false
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.assigned[orderID.Int64()]; ok {
		return true
	}
	if !m.canAcceptLocked() {
		return false
	}
	m.assigned[orderID.Int64()] = orderID
	return true
}

// Complete removes the order from the assignment set and increments the
// completed-today counter. A no-op when the order is not assigned.
func (m *StaffMember) Complete(orderID kernel.OrderID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.assigned[orderID.Int64()]; !ok {
		return
	}
	delete(m.assigned, orderID.Int64())
	m.completedToday++
}

// Withdraw removes the order from the assignment set without counting a
// completion. Used to roll back a half-finished assignment.
func (m *StaffMember) Withdraw(orderID kernel.OrderID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.assigned, orderID.Int64())
}

// CurrentWorkload returns the number of currently assigned orders.
func (m *StaffMember) CurrentWorkload() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.assigned)
}

// CompletedToday returns the number of orders completed in the current period.
func (m *StaffMember) CompletedToday() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.completedToday
}

// AssignedOrders returns a snapshot of the assigned order identifiers.
func (m *StaffMember) AssignedOrders() []kernel.OrderID {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]kernel.OrderID, 0, len(m.assigned))
	for _, id := range m.assigned {
		out = append(out, id)
	}
	return out
}

// Workload classifies the current assignment count against role capacity:
// light below 40%, moderate from 40% through 75%, heavy above 75%.
func (m *StaffMember) Workload() WorkloadLevel {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.onDuty {
		return WorkloadOffDuty
	}

	percent := len(m.assigned) * 100 / m.role.Capacity()
	switch {
	case percent < 40:
		return WorkloadLight
	case percent <= 75:
		return WorkloadModerate
	default:
		return WorkloadHeavy
	}
}

// Efficiency returns the percentage of handled orders that were completed:
// completed / (assigned + completed) x 100, or 0 when nothing was completed.
func (m *StaffMember) Efficiency() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.completedToday == 0 {
		return 0
	}
	return float64(m.completedToday) * 100.0 / float64(len(m.assigned)+m.completedToday)
}

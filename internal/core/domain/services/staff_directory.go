package services

import (
	"sync"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/kernel"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/order"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/staff"
	"github.com/Mearylis/Restaurant-Controller/internal/pkg/errs"
)

// StaffDirectory is a domain service holding the restaurant's staff records
// and implementing the capacity-aware assignment policy.
//
// Selection is first-fit: the first on-duty, under-capacity member of the
// required role in directory (registration) order wins. The policy is
// deliberately not load-balanced; an even spread is not a goal.
//
// The per-member check-then-assign step is atomic on the StaffMember
// itself, so concurrent dispatch against the directory cannot overrun any
// member's capacity. The directory lock only guards the membership list.
type StaffDirectory struct {
	mu      sync.RWMutex
	members []*staff.StaffMember
}

// NewStaffDirectory creates an empty staff directory.
func NewStaffDirectory() *StaffDirectory {
	return &StaffDirectory{}
}

// Register adds a staff member to the directory. Registration order is
// the order first-fit selection scans in.
func (d *StaffDirectory) Register(m *staff.StaffMember) error {
	if err := m.Validate(); err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.members = append(d.members, m)
	return nil
}

// All returns a snapshot of the staff members in registration order.
func (d *StaffDirectory) All() []*staff.StaffMember {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*staff.StaffMember, len(d.members))
	copy(out, d.members)
	return out
}

// ByID returns the staff member with the given identifier.
func (d *StaffDirectory) ByID(id kernel.StaffID) (*staff.StaffMember, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, m := range d.members {
		if m.ID().IsEqual(id) {
			return m, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("staffId", id.String())
}

// FindAvailable returns the first on-duty, under-capacity member of the
// role in directory order, or nil when none qualifies.
func (d *StaffDirectory) FindAvailable(role staff.Role) *staff.StaffMember {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, m := range d.members {
		if m.Role() == role && m.CanAccept() {
			return m
		}
	}
	return nil
}

// AssignOrder selects a member of the role first-fit and atomically assigns
// the order to them, recording the staff identity on the order's waiter or
// cook slot according to the role.
//
// Returns false when no member of the role can accept the order; the
// caller proceeds with that slot unassigned. A member whose capacity fills
// between selection and assignment is skipped and the scan continues.
func (d *StaffDirectory) AssignOrder(o *order.Order, role staff.Role) bool {
	if o.Validate() != nil || role.Validate() != nil {
		return false
	}

	d.mu.RLock()
	candidates := make([]*staff.StaffMember, len(d.members))
	copy(candidates, d.members)
	d.mu.RUnlock()

	for _, m := range candidates {
		if m.Role() != role {
			continue
		}
		if !m.Assign(o.ID()) {
			continue
		}
		if err := recordAssignment(o, m, role); err != nil {
			m.Withdraw(o.ID())
			return false
		}
		return true
	}
	return false
}

func recordAssignment(o *order.Order, m *staff.StaffMember, role staff.Role) error {
	if role == staff.Cook {
		return o.AssignCook(m.ID())
	}
	return o.AssignWaiter(m.ID())
}

// Release removes the order from its assigned waiter's and cook's
// assignment sets, counting a completion for each. Unassigned slots and
// unknown staff identifiers are skipped.
func (d *StaffDirectory) Release(o *order.Order) {
	for _, id := range []*kernel.StaffID{o.WaiterID(), o.CookID()} {
		if id == nil {
			continue
		}
		if m, err := d.ByID(*id); err == nil {
			m.Complete(o.ID())
		}
	}
}

// StartAllShifts puts every staff member on duty.
func (d *StaffDirectory) StartAllShifts() {
	for _, m := range d.All() {
		m.StartShift()
	}
}

// EndAllShifts takes every staff member off duty.
func (d *StaffDirectory) EndAllShifts() {
	for _, m := range d.All() {
		m.EndShift()
	}
}

// DirectoryStatistics summarizes the staff roster for reporting.
type DirectoryStatistics struct {
	TotalStaff     int
	OnDuty         int
	Servers        int
	Cooks          int
	Supervisors    int
	AssignedOrders int
	CompletedToday int
}

// Statistics computes roster totals by scanning the directory.
func (d *StaffDirectory) Statistics() DirectoryStatistics {
	var stats DirectoryStatistics
	for _, m := range d.All() {
		stats.TotalStaff++
		if m.IsOnDuty() {
			stats.OnDuty++
		}
		switch m.Role() {
		case staff.Server:
			stats.Servers++
		case staff.Cook:
			stats.Cooks++
		case staff.Supervisor:
			stats.Supervisors++
		}
		stats.AssignedOrders += m.CurrentWorkload()
		stats.CompletedToday += m.CompletedToday()
	}
	return stats
}

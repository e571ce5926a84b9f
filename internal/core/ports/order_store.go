// Package ports declares the interfaces the application layer depends on.
// Adapters under internal/adapters provide the implementations.
package ports

import (
	"time"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/kernel"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/order"
)

// ActiveOrdersCeiling is the active partition size that triggers an
// opportunistic archival sweep on insert.
const ActiveOrdersCeiling = 1000

// StoreStatistics summarizes both partitions of the order store.
type StoreStatistics struct {
	TotalOrders    int
	ActiveOrders   int
	ArchivedOrders int
	OpenOrders     int
	CountsByStatus map[order.Status]int
	TotalRevenue   kernel.Money
}

// OrderStore keeps orders in two partitions: active and archive.
//
// Add places an order in the active partition. When the active partition has
// reached ActiveOrdersCeiling, the store first archives completed orders
// older than one month. GetByID searches the active partition and then the
// archive, so archived orders stay addressable.
type OrderStore interface {
	// Add stores an order in the active partition. An order whose ID is
	// already present in either partition is rejected.
	Add(o *order.Order) error

	// GetByID returns the order with the given ID from either partition.
	// Returns errs.ObjectNotFoundError when neither partition has it.
	GetByID(id kernel.OrderID) (*order.Order, error)

	// Active returns a snapshot of the active partition.
	Active() []*order.Order

	// Archived returns a snapshot of the archive partition.
	Archived() []*order.Order

	// All returns a snapshot of both partitions.
	All() []*order.Order

	// ArchiveOlderThan moves completed orders whose completion time is
	// before the cutoff into the archive. Returns how many moved.
	ArchiveOlderThan(cutoff time.Time) int

	// Statistics aggregates counts and revenue across both partitions.
	Statistics() StoreStatistics
}

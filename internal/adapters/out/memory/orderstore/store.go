// Package orderstore is the in-memory implementation of ports.OrderStore.
// Orders live in an active partition until an archival sweep moves old
// completed orders into the archive.
package orderstore

import (
	"sync"
	"time"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/kernel"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/order"
	"github.com/Mearylis/Restaurant-Controller/internal/core/ports"
	"github.com/Mearylis/Restaurant-Controller/internal/pkg/errs"
)

// archiveAge is how long a completed order stays active before a sweep
// triggered by a full partition may move it to the archive.
const archiveAge = time.Hour * 24 * 30

var _ ports.OrderStore = (*Store)(nil)

// Store keeps orders in two map partitions guarded by one lock.
type Store struct {
	mutex   sync.RWMutex
	active  map[int64]*order.Order
	archive map[int64]*order.Order

	// now supplies the sweep cutoff reference time
	now func() time.Time
}

func NewStore() *Store {
	return NewStoreWithClock(time.Now)
}

// NewStoreWithClock creates a store whose archival sweeps measure order age
// against the given clock instead of the wall clock.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{
		active:  make(map[int64]*order.Order),
		archive: make(map[int64]*order.Order),
		now:     now,
	}
}

func (s *Store) Add(o *order.Order) error {
	if o == nil {
		return errs.NewValueIsRequiredError("order")
	}
	if err := o.Validate(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	id := o.ID().Int64()
	if _, ok := s.active[id]; ok {
		return errs.NewValueIsInvalidError("orderId")
	}
	if _, ok := s.archive[id]; ok {
		return errs.NewValueIsInvalidError("orderId")
	}

	if len(s.active) >= ports.ActiveOrdersCeiling {
		s.archiveOlderThanLocked(s.now().Add(-archiveAge))
	}
	s.active[id] = o
	return nil
}

func (s *Store) GetByID(id kernel.OrderID) (*order.Order, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if o, ok := s.active[id.Int64()]; ok {
		return o, nil
	}
	if o, ok := s.archive[id.Int64()]; ok {
		return o, nil
	}
	return nil, errs.NewObjectNotFoundError("orderId", id)
}

func (s *Store) Active() []*order.Order {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return snapshot(s.active)
}

func (s *Store) Archived() []*order.Order {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return snapshot(s.archive)
}

func (s *Store) All() []*order.Order {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return append(snapshot(s.active), snapshot(s.archive)...)
}

func (s *Store) ArchiveOlderThan(cutoff time.Time) int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.archiveOlderThanLocked(cutoff)
}

func (s *Store) archiveOlderThanLocked(cutoff time.Time) int {
	moved := 0
	for id, o := range s.active {
		completedAt := o.CompletedAt()
		if completedAt == nil || !completedAt.Before(cutoff) {
			continue
		}
		s.archive[id] = o
		delete(s.active, id)
		moved++
	}
	return moved
}

func (s *Store) Statistics() ports.StoreStatistics {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	stats := ports.StoreStatistics{
		TotalOrders:    len(s.active) + len(s.archive),
		ActiveOrders:   len(s.active),
		ArchivedOrders: len(s.archive),
		CountsByStatus: make(map[order.Status]int),
		TotalRevenue:   kernel.ZeroMoney(),
	}
	for _, partition := range []map[int64]*order.Order{s.active, s.archive} {
		for _, o := range partition {
			status := o.Status()
			stats.CountsByStatus[status]++
			if status == order.Paid {
				stats.TotalRevenue = stats.TotalRevenue.Add(o.Total())
			} else {
				stats.OpenOrders++
			}
		}
	}
	return stats
}

func snapshot(partition map[int64]*order.Order) []*order.Order {
	out := make([]*order.Order, 0, len(partition))
	for _, o := range partition {
		out = append(out, o)
	}
	return out
}

package notifications

import (
	"fmt"
	"sync"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/order"
)

// waiterBufferSize caps how many pending notes each waiter keeps.
const waiterBufferSize = 5

// WaiterSubscriber routes status changes to the waiter assigned to the
// order. Each waiter has a bounded newest-first queue of notes. Orders
// without an assigned waiter are ignored.
type WaiterSubscriber struct {
	mutex  sync.Mutex
	queues map[string][]string
}

func NewWaiterSubscriber() *WaiterSubscriber {
	return &WaiterSubscriber{queues: make(map[string][]string)}
}

func (s *WaiterSubscriber) Name() string {
	return "waiter"
}

func (s *WaiterSubscriber) Notify(o *order.Order, change order.StatusChange) {
	waiterID := o.WaiterID()
	if waiterID == nil {
		return
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	key := waiterID.String()
	note := fmt.Sprintf("order %s for table %d is %s", o.ID(), o.TableNumber(), change.To())
	queue := append([]string{note}, s.queues[key]...)
	if len(queue) > waiterBufferSize {
		queue = queue[:waiterBufferSize]
	}
	s.queues[key] = queue
}

// Notes returns the pending notes for a waiter, newest first.
func (s *WaiterSubscriber) Notes(waiterID string) []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	queue := s.queues[waiterID]
	out := make([]string, len(queue))
	copy(out, queue)
	return out
}

// Stats reports the queue depth per waiter.
func (s *WaiterSubscriber) Stats() map[string]int {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	out := make(map[string]int, len(s.queues))
	for id, queue := range s.queues {
		out[id] = len(queue)
	}
	return out
}

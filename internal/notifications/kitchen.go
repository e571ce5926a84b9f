package notifications

import (
	"fmt"
	"sync"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/order"
)

// kitchenBufferSize caps how many recent tickets the kitchen display keeps.
const kitchenBufferSize = 10

// KitchenSubscriber is the kitchen display. It counts every notification it
// receives, keeps a short newest-first log of tickets, and tracks how many
// orders are currently being cooked.
type KitchenSubscriber struct {
	mutex         sync.Mutex
	notifications int
	tickets       []string
	inProgress    int
}

func NewKitchenSubscriber() *KitchenSubscriber {
	return &KitchenSubscriber{}
}

func (s *KitchenSubscriber) Name() string {
	return "kitchen"
}

func (s *KitchenSubscriber) Notify(o *order.Order, change order.StatusChange) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.notifications++

	status := change.To()
	ticket := fmt.Sprintf("order %s is %s (table %d)", o.ID(), status, o.TableNumber())
	s.tickets = append([]string{ticket}, s.tickets...)
	if len(s.tickets) > kitchenBufferSize {
		s.tickets = s.tickets[:kitchenBufferSize]
	}

	switch status {
	case order.Preparing:
		s.inProgress++
	case order.Ready, order.Paid:
		if s.inProgress > 0 {
			s.inProgress--
		}
	}
}

// NotificationCount reports how many status changes the kitchen has seen.
func (s *KitchenSubscriber) NotificationCount() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.notifications
}

// Tickets returns the recent tickets, newest first.
func (s *KitchenSubscriber) Tickets() []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	out := make([]string, len(s.tickets))
	copy(out, s.tickets)
	return out
}

// InProgress reports how many orders are currently on the line.
func (s *KitchenSubscriber) InProgress() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.inProgress
}

package notifications

import (
	"sync"
	"time"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/kernel"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/order"
)

// ManagerSubscriber is the management dashboard. It aggregates how many times
// each status was observed, the revenue collected from paid orders, and when
// the last notification arrived.
type ManagerSubscriber struct {
	mutex            sync.Mutex
	statusCounts     map[order.Status]int
	revenue          kernel.Money
	lastNotification time.Time
}

func NewManagerSubscriber() *ManagerSubscriber {
	return &ManagerSubscriber{
		statusCounts: make(map[order.Status]int),
		revenue:      kernel.ZeroMoney(),
	}
}

func (s *ManagerSubscriber) Name() string {
	return "manager"
}

func (s *ManagerSubscriber) Notify(o *order.Order, change order.StatusChange) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	status := change.To()
	s.statusCounts[status]++
	if status == order.Paid {
		s.revenue = s.revenue.Add(o.Total())
	}
	s.lastNotification = time.Now()
}

// Analytics is a snapshot of the dashboard figures.
type Analytics struct {
	StatusCounts     map[order.Status]int
	Revenue          kernel.Money
	LastNotification time.Time
}

func (s *ManagerSubscriber) Analytics() Analytics {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	counts := make(map[order.Status]int, len(s.statusCounts))
	for status, n := range s.statusCounts {
		counts[status] = n
	}
	return Analytics{
		StatusCounts:     counts,
		Revenue:          s.revenue,
		LastNotification: s.lastNotification,
	}
}

// Revenue reports the total collected from paid orders.
func (s *ManagerSubscriber) Revenue() kernel.Money {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.revenue
}

package notifications_test

import (
	"fmt"
	"testing"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/customer"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/kernel"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/order"
	"github.com/Mearylis/Restaurant-Controller/internal/notifications"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newOrder(t *testing.T, id int64, points int) *order.Order {
	t.Helper()
	orderID, err := kernel.OrderIDFromInt(id)
	require.NoError(t, err)
	cust, err := customer.NewCustomer("Alice Walker", "+1-555-0142", "alice@example.com")
	require.NoError(t, err)
	cust.SetLoyaltyPoints(points)
	o, err := order.NewOrder(orderID, 3, cust)
	require.NoError(t, err)
	return o
}

func TestKitchenSubscriber(t *testing.T) {
	t.Run("should count notifications and track orders on the line", func(t *testing.T) {
		kitchen := notifications.NewKitchenSubscriber()
		o := newOrder(t, 1001, 0)
		o.Attach(kitchen)

		require.NoError(t, o.ChangeStatus(order.Preparing))
		assert.Equal(t, 1, kitchen.NotificationCount())
		assert.Equal(t, 1, kitchen.InProgress())

		require.NoError(t, o.ChangeStatus(order.Ready))
		assert.Equal(t, 2, kitchen.NotificationCount())
		assert.Equal(t, 0, kitchen.InProgress())
	})

	t.Run("should keep at most ten tickets, newest first", func(t *testing.T) {
		kitchen := notifications.NewKitchenSubscriber()
		for i := int64(1); i <= 12; i++ {
			o := newOrder(t, i, 0)
			o.Attach(kitchen)
			require.NoError(t, o.ChangeStatus(order.Preparing))
		}

		tickets := kitchen.Tickets()
		require.Len(t, tickets, 10)
		assert.Contains(t, tickets[0], "order 12")
	})

	t.Run("should never report negative orders on the line", func(t *testing.T) {
		kitchen := notifications.NewKitchenSubscriber()
		o := newOrder(t, 1001, 0)
		o.Attach(kitchen)

		require.NoError(t, o.ChangeStatus(order.Ready))
		assert.Equal(t, 0, kitchen.InProgress())
	})
}

func TestManagerSubscriber(t *testing.T) {
	t.Run("should aggregate status counts and revenue", func(t *testing.T) {
		manager := notifications.NewManagerSubscriber()
		o := newOrder(t, 1001, 0)
		o.Attach(manager)
		total := kernel.MoneyFromFloat(42)
		require.NoError(t, o.SetTotal(total))

		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, o.ChangeStatus(order.Ready))
		require.NoError(t, o.ChangeStatus(order.Served))
		require.NoError(t, o.ChangeStatus(order.Paid))

		analytics := manager.Analytics()
		assert.Equal(t, 1, analytics.StatusCounts[order.Preparing])
		assert.Equal(t, 1, analytics.StatusCounts[order.Paid])
		assert.True(t, manager.Revenue().Equals(total))
		assert.False(t, analytics.LastNotification.IsZero())
	})

	t.Run("should not count revenue before payment", func(t *testing.T) {
		manager := notifications.NewManagerSubscriber()
		o := newOrder(t, 1001, 0)
		o.Attach(manager)
		total := kernel.MoneyFromFloat(42)
		require.NoError(t, o.SetTotal(total))

		require.NoError(t, o.ChangeStatus(order.Preparing))

		assert.True(t, manager.Revenue().IsZero())
	})

	t.Run("should count each transition once even when a subscriber advances the order", func(t *testing.T) {
		manager := notifications.NewManagerSubscriber()
		o := newOrder(t, 1001, 0)
		require.NoError(t, o.SetTotal(kernel.MoneyFromFloat(30)))
		// Settles the bill the moment the order is served, so the Served
		// delivery reaches the manager after the record already reads Paid.
		o.Attach(&settleOnServed{})
		o.Attach(manager)

		require.NoError(t, o.ChangeStatus(order.Served))

		analytics := manager.Analytics()
		assert.Equal(t, 1, analytics.StatusCounts[order.Served])
		assert.Equal(t, 1, analytics.StatusCounts[order.Paid])
		assert.True(t, manager.Revenue().Equals(kernel.MoneyFromFloat(30)))
	})
}

// settleOnServed moves an order straight to Paid when it is served.
type settleOnServed struct{}

func (s *settleOnServed) Name() string { return "auto-settle" }

func (s *settleOnServed) Notify(o *order.Order, change order.StatusChange) {
	if change.To() == order.Served {
		_ = o.ChangeStatus(order.Paid)
	}
}

func TestWaiterSubscriber(t *testing.T) {
	t.Run("should queue notes for the assigned waiter", func(t *testing.T) {
		waiters := notifications.NewWaiterSubscriber()
		o := newOrder(t, 1001, 0)
		waiterID := kernel.NewStaffID()
		require.NoError(t, o.AssignWaiter(waiterID))
		o.Attach(waiters)

		require.NoError(t, o.ChangeStatus(order.Ready))

		notes := waiters.Notes(waiterID.String())
		require.Len(t, notes, 1)
		assert.Contains(t, notes[0], "table 3")
	})

	t.Run("should ignore orders without a waiter", func(t *testing.T) {
		waiters := notifications.NewWaiterSubscriber()
		o := newOrder(t, 1001, 0)
		o.Attach(waiters)

		require.NoError(t, o.ChangeStatus(order.Ready))

		assert.Empty(t, waiters.Stats())
	})

	t.Run("should keep at most five notes per waiter", func(t *testing.T) {
		waiters := notifications.NewWaiterSubscriber()
		o := newOrder(t, 1001, 0)
		waiterID := kernel.NewStaffID()
		require.NoError(t, o.AssignWaiter(waiterID))
		o.Attach(waiters)

		statuses := []order.Status{
			order.Preparing, order.Ready, order.Served,
			order.Preparing, order.Ready, order.Served, order.Paid,
		}
		for _, status := range statuses {
			require.NoError(t, o.ChangeStatus(status))
		}

		assert.Equal(t, map[string]int{waiterID.String(): 5}, waiters.Stats())
	})
}

func TestCustomerRelationsSubscriber(t *testing.T) {
	t.Run("should keep at most three messages per customer", func(t *testing.T) {
		relations := notifications.NewCustomerRelationsSubscriber()
		o := newOrder(t, 1001, 0)
		o.Attach(relations)

		for _, status := range []order.Status{order.Preparing, order.Ready, order.Served, order.Paid} {
			require.NoError(t, o.ChangeStatus(status))
		}

		messages := relations.Messages(o.Customer().Phone())
		require.Len(t, messages, 3)
		assert.Contains(t, messages[0], "Paid")
	})

	t.Run("should promote qualifying customers once", func(t *testing.T) {
		relations := notifications.NewCustomerRelationsSubscriber()
		o := newOrder(t, 1001, 600)
		o.Attach(relations)

		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, o.ChangeStatus(order.Ready))

		assert.Equal(t, []string{"Alice Walker"}, relations.VIPCustomers())
	})

	t.Run("should not promote customers below the threshold", func(t *testing.T) {
		relations := notifications.NewCustomerRelationsSubscriber()
		o := newOrder(t, 1001, 499)
		o.Attach(relations)

		require.NoError(t, o.ChangeStatus(order.Preparing))

		assert.Empty(t, relations.VIPCustomers())
	})
}

func TestHub(t *testing.T) {
	t.Run("should deliver one change to every listener", func(t *testing.T) {
		hub := notifications.NewHub()
		o := newOrder(t, 1001, 0)
		hub.AttachAll(o)
		waiterID := kernel.NewStaffID()
		require.NoError(t, o.AssignWaiter(waiterID))

		require.NoError(t, o.ChangeStatus(order.Preparing))

		assert.Equal(t, 1, hub.Kitchen.NotificationCount())
		assert.Equal(t, 1, hub.Manager.Analytics().StatusCounts[order.Preparing])
		assert.Len(t, hub.Waiter.Notes(waiterID.String()), 1)
		assert.Len(t, hub.CustomerRelations.Messages(o.Customer().Phone()), 1)
	})

	t.Run("should survive concurrent deliveries from many orders", func(t *testing.T) {
		hub := notifications.NewHub()

		var g errgroup.Group
		for i := int64(1); i <= 50; i++ {
			orderID, err := kernel.OrderIDFromInt(i)
			require.NoError(t, err)
			cust, err := customer.NewCustomer("Guest", fmt.Sprintf("+1-555-%04d", i), "")
			require.NoError(t, err)
			o, err := order.NewOrder(orderID, int(i%10)+1, cust)
			require.NoError(t, err)
			hub.AttachAll(o)
			g.Go(func() error {
				if err := o.ChangeStatus(order.Preparing); err != nil {
					return err
				}
				return o.ChangeStatus(order.Ready)
			})
		}
		require.NoError(t, g.Wait())

		assert.Equal(t, 100, hub.Kitchen.NotificationCount())
		assert.Equal(t, 0, hub.Kitchen.InProgress())
		assert.Len(t, hub.Kitchen.Tickets(), 10)
	})
}

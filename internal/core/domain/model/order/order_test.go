package order_test

import (
	"testing"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/customer"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/kernel"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSubscriber struct {
	name     string
	statuses []order.Status
}

func (r *recordingSubscriber) Name() string { return r.name }

func (r *recordingSubscriber) Notify(o *order.Order, change order.StatusChange) {
	r.statuses = append(r.statuses, change.To())
}

// escalatingSubscriber pushes the order to the next status the first time it
// sees the triggering one.
type escalatingSubscriber struct {
	on    order.Status
	next  order.Status
	fired bool
}

func (e *escalatingSubscriber) Name() string { return "escalator" }

func (e *escalatingSubscriber) Notify(o *order.Order, change order.StatusChange) {
	if e.fired || change.To() != e.on {
		return
	}
	e.fired = true
	_ = o.ChangeStatus(e.next)
}

func mustOrderID(t *testing.T, value int64) kernel.OrderID {
	t.Helper()
	id, err := kernel.OrderIDFromInt(value)
	require.NoError(t, err)
	return id
}

func mustCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	cust, err := customer.NewCustomer("Guest", "+1-555-0100", "")
	require.NoError(t, err)
	return cust
}

func TestNewOrder(t *testing.T) {
	validID := mustOrderID(t, 1001)

	t.Run("should create valid order with all valid parameters", func(t *testing.T) {
		o, err := order.NewOrder(validID, 1, mustCustomer(t))

		require.NoError(t, err)
		assert.NotNil(t, o)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.Equal(t, 1, o.TableNumber())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.WaiterID())
		assert.Nil(t, o.CookID())
		assert.Nil(t, o.CompletedAt())
		assert.True(t, o.Total().IsZero())
	})

	t.Run("should seed history with the initial entry", func(t *testing.T) {
		o, err := order.NewOrder(validID, 1, mustCustomer(t))

		require.NoError(t, err)
		history := o.History()
		require.Len(t, history, 1)
		assert.Nil(t, history[0].From())
		assert.Equal(t, order.Pending, history[0].To())
		assert.Equal(t, o.CreatedAt(), history[0].At())
	})

	t.Run("should fail with invalid order ID", func(t *testing.T) {
		var invalidID kernel.OrderID

		o, err := order.NewOrder(invalidID, 1, mustCustomer(t))

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "OrderID must be allocated")
	})

	t.Run("should fail with non-positive table number", func(t *testing.T) {
		o, err := order.NewOrder(validID, 0, mustCustomer(t))

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "tableNumber")
	})

	t.Run("should fail with nil customer", func(t *testing.T) {
		o, err := order.NewOrder(validID, 1, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.ErrorIs(t, err, order.ErrCustomerIsRequired)
	})

	t.Run("should fail validation for zero value order", func(t *testing.T) {
		var o order.Order

		assert.Equal(t, order.ErrOrderIsNotConstructed, o.Validate())
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should record every accepted transition in order", func(t *testing.T) {
		o, _ := order.NewOrder(mustOrderID(t, 1), 1, mustCustomer(t))

		require.NoError(t, o.ChangeStatus(order.Preparing))
		require.NoError(t, o.ChangeStatus(order.Ready))
		require.NoError(t, o.ChangeStatus(order.Served))

		history := o.History()
		require.Len(t, history, 4)
		for i := 1; i < len(history); i++ {
			require.NotNil(t, history[i].From())
			assert.Equal(t, history[i-1].To(), *history[i].From())
			assert.False(t, history[i].At().Before(history[i-1].At()))
		}
		assert.Equal(t, order.Served, o.Status())
	})

	t.Run("should be a no-op when the status is unchanged", func(t *testing.T) {
		o, _ := order.NewOrder(mustOrderID(t, 1), 1, mustCustomer(t))
		sub := &recordingSubscriber{name: "recorder"}
		o.Attach(sub)

		require.NoError(t, o.ChangeStatus(order.Pending))

		assert.Len(t, o.History(), 1)
		assert.Empty(t, sub.statuses)
	})

	t.Run("should reject an invalid status value", func(t *testing.T) {
		o, _ := order.NewOrder(mustOrderID(t, 1), 1, mustCustomer(t))

		require.Error(t, o.ChangeStatus(order.Unknown))
		assert.Len(t, o.History(), 1)
	})

	t.Run("should stamp completion exactly once on reaching Paid", func(t *testing.T) {
		o, _ := order.NewOrder(mustOrderID(t, 1), 1, mustCustomer(t))

		require.NoError(t, o.ChangeStatus(order.Paid))
		first := o.CompletedAt()
		require.NotNil(t, first)

		// Leaving and re-entering Paid must not move the stamp.
		require.NoError(t, o.ChangeStatus(order.Served))
		require.NoError(t, o.ChangeStatus(order.Paid))
		assert.Equal(t, *first, *o.CompletedAt())
	})

	t.Run("should notify every attached subscriber synchronously", func(t *testing.T) {
		o, _ := order.NewOrder(mustOrderID(t, 1), 1, mustCustomer(t))
		first := &recordingSubscriber{name: "first"}
		second := &recordingSubscriber{name: "second"}
		o.Attach(first)
		o.Attach(second)

		require.NoError(t, o.ChangeStatus(order.Preparing))

		assert.Equal(t, []order.Status{order.Preparing}, first.statuses)
		assert.Equal(t, []order.Status{order.Preparing}, second.statuses)
	})

	t.Run("should stop notifying detached subscribers without replaying history", func(t *testing.T) {
		o, _ := order.NewOrder(mustOrderID(t, 1), 1, mustCustomer(t))
		early := &recordingSubscriber{name: "early"}
		o.Attach(early)

		require.NoError(t, o.ChangeStatus(order.Preparing))
		o.Detach(early)
		require.NoError(t, o.ChangeStatus(order.Ready))

		late := &recordingSubscriber{name: "late"}
		o.Attach(late)
		require.NoError(t, o.ChangeStatus(order.Served))

		assert.Equal(t, []order.Status{order.Preparing}, early.statuses)
		assert.Equal(t, []order.Status{order.Served}, late.statuses)
	})

	t.Run("should deliver the causing transition even after the order moves on", func(t *testing.T) {
		o, _ := order.NewOrder(mustOrderID(t, 1), 1, mustCustomer(t))
		// Advances the order as soon as it is served, so the Served
		// delivery to later subscribers happens while the record
		// already reads Paid.
		escalator := &escalatingSubscriber{next: order.Paid, on: order.Served}
		recorder := &recordingSubscriber{name: "recorder"}
		o.Attach(escalator)
		o.Attach(recorder)

		require.NoError(t, o.ChangeStatus(order.Served))

		assert.Equal(t, order.Paid, o.Status())
		assert.ElementsMatch(t, []order.Status{order.Served, order.Paid}, recorder.statuses)
	})
}

func TestOrder_Items(t *testing.T) {
	t.Run("should freeze item prices at build time", func(t *testing.T) {
		o, _ := order.NewOrder(mustOrderID(t, 1), 1, mustCustomer(t))
		item, err := order.NewLineItem("Grilled Steak", kernel.MoneyFromFloat(24.99), "maincourse")
		require.NoError(t, err)

		require.NoError(t, o.AddItem(item))

		items := o.Items()
		require.Len(t, items, 1)
		assert.True(t, items[0].Price().Equals(kernel.MoneyFromFloat(24.99)))
	})

	t.Run("should return a snapshot, not the live slice", func(t *testing.T) {
		o, _ := order.NewOrder(mustOrderID(t, 1), 1, mustCustomer(t))
		item, _ := order.NewLineItem("Garlic Bread", kernel.MoneyFromFloat(4.99), "appetizer")
		require.NoError(t, o.AddItem(item))

		snapshot := o.Items()
		replacement, _ := order.NewLineItem("Chocolate Cake", kernel.MoneyFromFloat(6.50), "dessert")
		snapshot[0] = replacement

		assert.Equal(t, "Garlic Bread", o.Items()[0].Name())
	})

	t.Run("should reject items on a completed order", func(t *testing.T) {
		o, _ := order.NewOrder(mustOrderID(t, 1), 1, mustCustomer(t))
		require.NoError(t, o.ChangeStatus(order.Paid))

		item, _ := order.NewLineItem("Fresh Orange Juice", kernel.MoneyFromFloat(4.50), "beverage")
		assert.ErrorIs(t, o.AddItem(item), order.ErrOrderIsCompleted)
	})
}

func TestOrder_StaffAssignment(t *testing.T) {
	t.Run("should set waiter and cook slots at most once", func(t *testing.T) {
		o, _ := order.NewOrder(mustOrderID(t, 1), 1, mustCustomer(t))
		waiter := kernel.NewStaffID()
		cook := kernel.NewStaffID()

		require.NoError(t, o.AssignWaiter(waiter))
		require.NoError(t, o.AssignCook(cook))

		assert.ErrorIs(t, o.AssignWaiter(kernel.NewStaffID()), order.ErrWaiterAlreadyAssigned)
		assert.ErrorIs(t, o.AssignCook(kernel.NewStaffID()), order.ErrCookAlreadyAssigned)
		assert.True(t, o.WaiterID().IsEqual(waiter))
		assert.True(t, o.CookID().IsEqual(cook))
	})

	t.Run("should reject a zero value staff ID", func(t *testing.T) {
		o, _ := order.NewOrder(mustOrderID(t, 1), 1, mustCustomer(t))

		require.Error(t, o.AssignWaiter(kernel.StaffID{}))
		assert.Nil(t, o.WaiterID())
	})
}

func TestOrder_SpecialInstructions(t *testing.T) {
	t.Run("should stay mutable until completion", func(t *testing.T) {
		o, _ := order.NewOrder(mustOrderID(t, 1), 1, mustCustomer(t))

		require.NoError(t, o.SetSpecialInstructions("no onions"))
		assert.Equal(t, "no onions", o.SpecialInstructions())

		require.NoError(t, o.ChangeStatus(order.Paid))
		assert.ErrorIs(t, o.SetSpecialInstructions("extra sauce"), order.ErrOrderIsCompleted)
		assert.Equal(t, "no onions", o.SpecialInstructions())
	})
}

func TestOrder_SetTotal(t *testing.T) {
	t.Run("should store a non-negative total", func(t *testing.T) {
		o, _ := order.NewOrder(mustOrderID(t, 1), 1, mustCustomer(t))

		require.NoError(t, o.SetTotal(kernel.MoneyFromFloat(30.00)))
		assert.True(t, o.Total().Equals(kernel.MoneyFromFloat(30.00)))
	})

	t.Run("should reject a negative total", func(t *testing.T) {
		o, _ := order.NewOrder(mustOrderID(t, 1), 1, mustCustomer(t))

		require.Error(t, o.SetTotal(kernel.MoneyFromFloat(-1.00)))
		assert.True(t, o.Total().IsZero())
	})
}

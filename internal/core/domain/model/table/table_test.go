package table_test

import (
	"testing"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/customer"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/kernel"
	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/table"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGuest(t *testing.T) *customer.Customer {
	t.Helper()
	guest, err := customer.NewCustomer("Guest", "+1-555-0100", "")
	require.NoError(t, err)
	return guest
}

func TestNewTable(t *testing.T) {
	t.Run("should create a vacant table", func(t *testing.T) {
		tbl, err := table.NewTable(3, 4)

		require.NoError(t, err)
		assert.Equal(t, 3, tbl.Number())
		assert.Equal(t, 4, tbl.Seats())
		assert.False(t, tbl.IsOccupied())
		assert.Nil(t, tbl.Guest())
		assert.Nil(t, tbl.OrderID())
	})

	t.Run("should reject non-positive number or seats", func(t *testing.T) {
		_, err := table.NewTable(0, 4)
		assert.Error(t, err)

		_, err = table.NewTable(3, 0)
		assert.Error(t, err)
	})
}

func TestTable_Occupy(t *testing.T) {
	t.Run("should seat a guest", func(t *testing.T) {
		tbl, err := table.NewTable(1, 2)
		require.NoError(t, err)
		guest := newGuest(t)

		require.NoError(t, tbl.Occupy(guest))

		assert.True(t, tbl.IsOccupied())
		assert.Equal(t, guest, tbl.Guest())
	})

	t.Run("should refuse a second guest", func(t *testing.T) {
		tbl, err := table.NewTable(1, 2)
		require.NoError(t, err)
		require.NoError(t, tbl.Occupy(newGuest(t)))

		assert.ErrorIs(t, tbl.Occupy(newGuest(t)), table.ErrTableIsOccupied)
	})
}

func TestTable_Free(t *testing.T) {
	t.Run("should reset guest and order", func(t *testing.T) {
		tbl, err := table.NewTable(1, 2)
		require.NoError(t, err)
		require.NoError(t, tbl.Occupy(newGuest(t)))
		orderID, err := kernel.OrderIDFromInt(1001)
		require.NoError(t, err)
		require.NoError(t, tbl.AssignOrder(orderID))

		tbl.Free()

		assert.False(t, tbl.IsOccupied())
		assert.Nil(t, tbl.Guest())
		assert.Nil(t, tbl.OrderID())
	})
}

func TestRegistry(t *testing.T) {
	newRegistry := func(t *testing.T) *table.Registry {
		t.Helper()
		registry := table.NewRegistry()
		for number := 1; number <= 3; number++ {
			tbl, err := table.NewTable(number, 2)
			require.NoError(t, err)
			registry.Register(tbl)
		}
		return registry
	}

	t.Run("should find a table by number", func(t *testing.T) {
		registry := newRegistry(t)

		tbl, err := registry.ByNumber(2)

		require.NoError(t, err)
		assert.Equal(t, 2, tbl.Number())
	})

	t.Run("should report unknown numbers", func(t *testing.T) {
		registry := newRegistry(t)

		_, err := registry.ByNumber(42)

		assert.ErrorIs(t, err, table.ErrTableNotFound)
	})

	t.Run("should list only vacant tables as available", func(t *testing.T) {
		registry := newRegistry(t)
		tbl, err := registry.ByNumber(1)
		require.NoError(t, err)
		require.NoError(t, tbl.Occupy(newGuest(t)))

		available := registry.Available()

		require.Len(t, available, 2)
		for _, a := range available {
			assert.False(t, a.IsOccupied())
		}
	})

	t.Run("should list all tables in number order", func(t *testing.T) {
		registry := newRegistry(t)

		all := registry.All()

		require.Len(t, all, 3)
		for i, tbl := range all {
			assert.Equal(t, i+1, tbl.Number())
		}
	})
}

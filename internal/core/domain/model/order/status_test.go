package order_test

import (
	"testing"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	t.Run("should accept every lifecycle status", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Preparing, order.Ready, order.Served, order.Paid} {
			require.NoError(t, s.Validate(), s.String())
		}
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		require.Error(t, order.Unknown.Validate())
		require.Error(t, order.Status(42).Validate())
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should render canonical names", func(t *testing.T) {
		assert.Equal(t, "Pending", order.Pending.String())
		assert.Equal(t, "Preparing", order.Preparing.String())
		assert.Equal(t, "Ready", order.Ready.String())
		assert.Equal(t, "Served", order.Served.String())
		assert.Equal(t, "Paid", order.Paid.String())
		assert.Equal(t, "Unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should round-trip every valid status", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Preparing, order.Ready, order.Served, order.Paid} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})

	t.Run("should reject unrecognized input", func(t *testing.T) {
		_, err := order.StatusFromString("Cooking")
		require.Error(t, err)
	})
}

func TestStatus_Before(t *testing.T) {
	t.Run("should order statuses along the fixed lifecycle", func(t *testing.T) {
		sequence := []order.Status{order.Pending, order.Preparing, order.Ready, order.Served, order.Paid}
		for i := 0; i < len(sequence)-1; i++ {
			assert.True(t, sequence[i].Before(sequence[i+1]))
			assert.False(t, sequence[i+1].Before(sequence[i]))
		}
		assert.False(t, order.Paid.Before(order.Paid))
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Paid.IsTerminal())
	assert.False(t, order.Served.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
}

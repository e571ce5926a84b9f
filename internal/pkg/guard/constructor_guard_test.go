package guard_test

import (
	"errors"
	"testing"

	"github.com/Mearylis/Restaurant-Controller/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard is used
// by a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Dish struct {
		name  string
		price int
		guard guard.ConstructorGuard
	}

	var errDishNotConstructed = errors.New("Dish must be created via NewDish")

	newDish := func(name string, price int) (Dish, error) {
		if name == "" {
			return Dish{}, errors.New("name is required")
		}
		if price < 0 {
			return Dish{}, errors.New("price cannot be negative")
		}
		return Dish{
			name:  name,
			price: price,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validateDish := func(d Dish) error {
		return d.guard.Validate(errDishNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		dish, err := newDish("Caesar Salad", 899)

		require.NoError(t, err)
		require.NoError(t, validateDish(dish))
		assert.Equal(t, "Caesar Salad", dish.name)
		assert.Equal(t, 899, dish.price)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var dish Dish // zero value

		err := validateDish(dish)

		require.Error(t, err)
		assert.Equal(t, errDishNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newDish("", 899)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")

		_, err = newDish("Caesar Salad", -1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "price cannot be negative")
	})
}

package kernel_test

import (
	"testing"

	"github.com/Mearylis/Restaurant-Controller/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffID(t *testing.T) {
	t.Run("should create unique valid IDs", func(t *testing.T) {
		id1 := kernel.NewStaffID()
		id2 := kernel.NewStaffID()

		require.NoError(t, id1.Validate())
		require.NoError(t, id2.Validate())
		assert.False(t, id1.IsEqual(id2))
		assert.True(t, id1.IsEqual(id1))
	})

	t.Run("should parse from canonical string", func(t *testing.T) {
		original := kernel.NewStaffID()

		parsed, err := kernel.StaffIDFromString(original.String())

		require.NoError(t, err)
		assert.True(t, original.IsEqual(parsed))
	})

	t.Run("should reject malformed string", func(t *testing.T) {
		_, err := kernel.StaffIDFromString("not-a-uuid")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid staff ID format")
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var id kernel.StaffID

		err := id.Validate()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "StaffID must be created")
	})
}

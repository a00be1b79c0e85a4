package kernel_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a new UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		assert.NotEmpty(t, id.String())
		assert.NoError(t, id.Validate())
		assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", id.String())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		id1 := kernel.NewUUID()
		id2 := kernel.NewUUID()

		assert.NotEqual(t, id1.String(), id2.String())
		assert.False(t, id1.IsEqual(id2))
	})
}

func TestUUIDFromString(t *testing.T) {
	validUUID := "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should create UUID from valid string", func(t *testing.T) {
		id, err := kernel.UUIDFromString(validUUID)

		require.NoError(t, err)
		assert.Equal(t, validUUID, id.String())
		assert.NoError(t, id.Validate())
	})

	t.Run("should fail on invalid string", func(t *testing.T) {
		_, err := kernel.UUIDFromString("not-a-uuid")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should create UUID from valid bytes", func(t *testing.T) {
		source := uuid.New()

		id, err := kernel.UUIDFromBytes(source[:])

		require.NoError(t, err)
		assert.Equal(t, source.String(), id.String())
		assert.Equal(t, source, id.Bytes())
	})

	t.Run("should fail on wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x01, 0x02})

		require.Error(t, err)
	})

	t.Run("should fail on nil UUID bytes", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(uuid.Nil[:])

		require.Error(t, err)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("zero value is invalid", func(t *testing.T) {
		var id kernel.UUID

		err := id.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("constructed UUID is valid", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
	})
}

func TestUUID_IsEqual(t *testing.T) {
	id1 := kernel.NewUUID()
	id2 := id1
	id3 := kernel.NewUUID()

	assert.True(t, id1.IsEqual(id2))
	assert.False(t, id1.IsEqual(id3))
}

package order_test

import (
	"testing"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	testCases := []struct {
		name     string
		expected order.Status
	}{
		{"pending", order.StatusPending},
		{"picked", order.StatusPicked},
		{"packed", order.StatusPacked},
		{"ready", order.StatusReady},
		{"cancelled", order.StatusCancelled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, err := order.StatusFromString(tc.name)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
			assert.Equal(t, tc.name, status.String())
		})
	}

	t.Run("rejects names outside the closed set", func(t *testing.T) {
		for _, name := range []string{"", "shipped", "PENDING", "done"} {
			_, err := order.StatusFromString(name)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("members of the closed set are valid", func(t *testing.T) {
		for _, s := range []order.Status{
			order.StatusPending,
			order.StatusPicked,
			order.StatusPacked,
			order.StatusReady,
			order.StatusCancelled,
		} {
			require.NoError(t, s.Validate())
		}
	})

	t.Run("unknown and out-of-range values are invalid", func(t *testing.T) {
		require.Error(t, order.StatusUnknown.Validate())
		require.Error(t, order.Status(99).Validate())
	})
}

func TestStatus_String_Unknown(t *testing.T) {
	assert.Equal(t, "unknown", order.StatusUnknown.String())
	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatus_IsCompleted(t *testing.T) {
	assert.True(t, order.StatusPicked.IsCompleted())
	assert.True(t, order.StatusPacked.IsCompleted())
	assert.True(t, order.StatusReady.IsCompleted())

	assert.False(t, order.StatusPending.IsCompleted())
	assert.False(t, order.StatusCancelled.IsCompleted())
	assert.False(t, order.StatusUnknown.IsCompleted())
}

func TestChannelFromString(t *testing.T) {
	t.Run("valid channels", func(t *testing.T) {
		pickup, err := order.ChannelFromString("pickup")
		require.NoError(t, err)
		assert.Equal(t, order.ChannelPickup, pickup)

		delivery, err := order.ChannelFromString("delivery")
		require.NoError(t, err)
		assert.Equal(t, order.ChannelDelivery, delivery)
	})

	t.Run("invalid channel", func(t *testing.T) {
		_, err := order.ChannelFromString("drone")
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

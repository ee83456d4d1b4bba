//go:build unit

package ticket_test

import (
	"testing"

	"event-booking-api/internal/domain/ticket"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTicketType(t *testing.T) {
	t.Run("valid type gets a fresh id", func(t *testing.T) {
		tt, err := ticket.NewTicketType("Full Pass", 500, false, true)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, tt.ID())
		assert.Equal(t, "Full Pass", tt.Name())
		assert.Equal(t, int32(500), tt.Price())
		assert.False(t, tt.IsRemote())
		assert.True(t, tt.IncludesHotel())
	})

	t.Run("blank name is rejected", func(t *testing.T) {
		_, err := ticket.NewTicketType("   ", 500, false, false)
		require.ErrorIs(t, err, ticket.ErrEmptyTypeName)
	})

	t.Run("non-positive price is rejected", func(t *testing.T) {
		for _, price := range []int32{0, -1} {
			_, err := ticket.NewTicketType("Full Pass", price, false, false)
			require.ErrorIs(t, err, ticket.ErrNonPositivePrice)
		}
	})
}

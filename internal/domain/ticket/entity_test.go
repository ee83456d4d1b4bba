//go:build unit

package ticket_test

import (
	"testing"
	"time"

	"event-booking-api/internal/domain/ticket"
	"event-booking-api/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicket(t *testing.T) {
	t.Run("new ticket starts reserved", func(t *testing.T) {
		actual := builder.NewTicketBuilder().BuildDomain()
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, ticket.StatusReserved, actual.Status())
		assert.False(t, actual.IsPaid())
	})

	t.Run("UUID uniqueness", func(t *testing.T) {
		b := builder.NewTicketBuilder()
		first := b.BuildDomain()
		second := b.BuildDomain()

		assert.NotEqual(t, first.ID(), second.ID())
	})
}

func TestTicketMarkPaid(t *testing.T) {
	t.Run("reserved ticket can be paid", func(t *testing.T) {
		tk := builder.NewTicketBuilder().BuildDomain()

		err := tk.MarkPaid()
		require.NoError(t, err)

		assert.Equal(t, ticket.StatusPaid, tk.Status())
		assert.True(t, tk.IsPaid())
	})

	t.Run("paying twice is rejected", func(t *testing.T) {
		tk := builder.NewTicketBuilder().BuildDomain()
		require.NoError(t, tk.MarkPaid())

		err := tk.MarkPaid()
		require.ErrorIs(t, err, ticket.ErrAlreadyPaid)
		assert.Equal(t, ticket.StatusPaid, tk.Status())
	})

	t.Run("reconstructed paid ticket cannot be paid again", func(t *testing.T) {
		now := time.Now()
		tk := ticket.ReconstructTicket(uuid.New(), uuid.New(), uuid.New(), ticket.StatusPaid, now, now)

		err := tk.MarkPaid()
		require.ErrorIs(t, err, ticket.ErrAlreadyPaid)
	})
}

func TestNewStatus(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  ticket.Status
		errIs error
	}{
		{name: "reserved", input: "RESERVED", want: ticket.StatusReserved},
		{name: "paid", input: "PAID", want: ticket.StatusPaid},
		{name: "unknown value", input: "CANCELLED", errIs: ticket.ErrInvalidStatus},
		{name: "lower case is rejected", input: "paid", errIs: ticket.ErrInvalidStatus},
		{name: "empty", input: "", errIs: ticket.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ticket.NewStatus(tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

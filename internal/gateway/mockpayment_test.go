package gateway

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockPayment_ProcessPrizePayment(t *testing.T) {
	t.Run("completes a valid payment", func(t *testing.T) {
		p := NewMockPayment(0)

		tx, err := p.ProcessPrizePayment(context.Background(), 500000, "USD", "Team Rocket",
			"leader@example.com", "Hackathon prize: HackWeek")

		require.NoError(t, err)
		assert.Equal(t, PaymentCompleted, tx.Status)
		assert.Equal(t, int64(500000), tx.AmountCents)
		assert.NotNil(t, tx.CompletedAt)

		stored, err := p.TransactionStatus(context.Background(), tx.ID)
		require.NoError(t, err)
		assert.Equal(t, PaymentCompleted, stored.Status)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		p := NewMockPayment(0)

		_, err := p.ProcessPrizePayment(context.Background(), 0, "USD", "Team Rocket", "leader@example.com", "prize")
		assert.ErrorIs(t, err, ErrInvalidAmount)

		_, err = p.ProcessPrizePayment(context.Background(), -100, "USD", "Team Rocket", "leader@example.com", "prize")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("context cancellation", func(t *testing.T) {
		p := NewMockPayment(time.Minute)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := p.ProcessPrizePayment(ctx, 100, "USD", "Team Rocket", "leader@example.com", "prize")

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestMockPayment_TransactionStatus(t *testing.T) {
	p := NewMockPayment(0)

	_, err := p.TransactionStatus(context.Background(), "tx_missing")

	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestMockPayment_RefundPayment(t *testing.T) {
	t.Run("refunds a completed payment", func(t *testing.T) {
		p := NewMockPayment(0)
		tx, err := p.ProcessPrizePayment(context.Background(), 100, "USD", "Team Rocket", "leader@example.com", "prize")
		require.NoError(t, err)

		refund, err := p.RefundPayment(context.Background(), tx.ID, "duplicate payout")

		require.NoError(t, err)
		assert.Equal(t, PaymentRefunded, refund.Status)
		assert.Equal(t, tx.ID, refund.ParentTransactionID)
		assert.Equal(t, tx.AmountCents, refund.AmountCents)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		p := NewMockPayment(0)

		_, err := p.RefundPayment(context.Background(), "tx_missing", "typo")

		assert.ErrorIs(t, err, ErrTransactionNotFound)
	})

	t.Run("a refund cannot be refunded", func(t *testing.T) {
		p := NewMockPayment(0)
		tx, err := p.ProcessPrizePayment(context.Background(), 100, "USD", "Team Rocket", "leader@example.com", "prize")
		require.NoError(t, err)
		refund, err := p.RefundPayment(context.Background(), tx.ID, "duplicate payout")
		require.NoError(t, err)

		_, err = p.RefundPayment(context.Background(), refund.ID, "again")

		assert.ErrorIs(t, err, ErrNotRefundable)
	})
}

func TestFacade(t *testing.T) {
	f := NewFacade(NewMockCalendar(0), NewMockPayment(0))

	t.Run("schedules and cancels a mentor call", func(t *testing.T) {
		start := time.Now().Add(time.Hour)

		eventID, err := f.ScheduleMentorCall(context.Background(), "Mia", "mia@example.com",
			"Team Rocket", "leader@example.com", start, start.Add(time.Hour), "deployment help")

		require.NoError(t, err)
		assert.NotEmpty(t, eventID)

		cancelled, err := f.CancelMentorCall(context.Background(), eventID)
		require.NoError(t, err)
		assert.True(t, cancelled)
	})

	t.Run("schedules a recurring series", func(t *testing.T) {
		first := time.Now().Add(24 * time.Hour)

		eventIDs, err := f.ScheduleRecurringMentorCalls(context.Background(), "Mia", "mia@example.com",
			"Team Rocket", "leader@example.com", first, 3, 7)

		require.NoError(t, err)
		assert.Len(t, eventIDs, 3)
	})

	t.Run("processes a prize payment", func(t *testing.T) {
		tx, err := f.ProcessHackathonPrize(context.Background(), 250000, "USD",
			"Team Rocket", "leader@example.com", "HackWeek")

		require.NoError(t, err)
		assert.Equal(t, PaymentCompleted, tx.Status)
		assert.Equal(t, "Hackathon prize: HackWeek", tx.Description)
	})

	t.Run("invalid amount surfaces the payment error", func(t *testing.T) {
		_, err := f.ProcessHackathonPrize(context.Background(), 0, "USD",
			"Team Rocket", "leader@example.com", "HackWeek")

		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MockPayment completes every valid payment after the simulated latency.
type MockPayment struct {
	latency time.Duration

	mu           sync.Mutex
	transactions map[string]Transaction
}

func NewMockPayment(latency time.Duration) *MockPayment {
	return &MockPayment{
		latency:      latency,
		transactions: make(map[string]Transaction),
	}
}

func (p *MockPayment) ProcessPrizePayment(ctx context.Context, amountCents int64, currency, recipientName, recipientEmail, description string) (Transaction, error) {
	if amountCents <= 0 {
		return Transaction{}, ErrInvalidAmount
	}

	tx := Transaction{
		ID:             fmt.Sprintf("tx_%d_%s", time.Now().UnixMilli(), uuid.NewString()[:6]),
		ExternalID:     "mock_" + uuid.NewString(),
		AmountCents:    amountCents,
		Currency:       currency,
		RecipientName:  recipientName,
		RecipientEmail: recipientEmail,
		Description:    description,
		Status:         PaymentProcessing,
		Provider:       "mock",
		CreatedAt:      time.Now(),
	}

	p.mu.Lock()
	p.transactions[tx.ID] = tx
	p.mu.Unlock()

	if err := p.simulateNetworkDelay(ctx); err != nil {
		return Transaction{}, err
	}

	now := time.Now()
	tx.Status = PaymentCompleted
	tx.CompletedAt = &now

	p.mu.Lock()
	p.transactions[tx.ID] = tx
	p.mu.Unlock()

	zap.L().Info("mock payment completed",
		zap.String("transaction_id", tx.ID),
		zap.Int64("amount_cents", amountCents),
		zap.String("currency", currency))

	return tx, nil
}

func (p *MockPayment) TransactionStatus(_ context.Context, transactionID string) (Transaction, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tx, ok := p.transactions[transactionID]
	if !ok {
		return Transaction{}, ErrTransactionNotFound
	}

	return tx, nil
}

func (p *MockPayment) RefundPayment(ctx context.Context, transactionID, reason string) (Transaction, error) {
	if err := p.simulateNetworkDelay(ctx); err != nil {
		return Transaction{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	tx, ok := p.transactions[transactionID]
	if !ok {
		return Transaction{}, ErrTransactionNotFound
	}
	if tx.Status != PaymentCompleted {
		return Transaction{}, ErrNotRefundable
	}

	now := time.Now()
	refund := Transaction{
		ID:                  "refund_" + transactionID,
		AmountCents:         tx.AmountCents,
		Currency:            tx.Currency,
		RecipientName:       tx.RecipientName,
		RecipientEmail:      tx.RecipientEmail,
		Description:         "Refund: " + reason,
		Status:              PaymentRefunded,
		Provider:            "mock",
		ParentTransactionID: transactionID,
		CreatedAt:           now,
		CompletedAt:         &now,
	}
	p.transactions[refund.ID] = refund

	zap.L().Info("mock refund processed",
		zap.String("refund_id", refund.ID),
		zap.String("transaction_id", transactionID))

	return refund, nil
}

func (p *MockPayment) simulateNetworkDelay(ctx context.Context) error {
	if p.latency <= 0 {
		return nil
	}

	select {
	case <-time.After(p.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

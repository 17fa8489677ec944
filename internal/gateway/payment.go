package gateway

import (
	"context"
	"errors"
	"time"
)

var (
	ErrTransactionNotFound = errors.New("payment transaction not found")
	ErrInvalidAmount       = errors.New("payment amount must be greater than zero")
	ErrNotRefundable       = errors.New("only completed transactions can be refunded")
)

type TransactionStatus string

const (
	PaymentPending    TransactionStatus = "PENDING"
	PaymentProcessing TransactionStatus = "PROCESSING"
	PaymentCompleted  TransactionStatus = "COMPLETED"
	PaymentRefunded   TransactionStatus = "REFUNDED"
)

// Transaction is a payment processed by the external provider. Amounts are
// integer minor units (cents).
type Transaction struct {
	ID                  string            `json:"id"`
	ExternalID          string            `json:"external_id,omitempty"`
	AmountCents         int64             `json:"amount_cents"`
	Currency            string            `json:"currency"`
	RecipientName       string            `json:"recipient_name"`
	RecipientEmail      string            `json:"recipient_email"`
	Description         string            `json:"description"`
	Status              TransactionStatus `json:"status"`
	Provider            string            `json:"provider"`
	ParentTransactionID string            `json:"parent_transaction_id,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	CompletedAt         *time.Time        `json:"completed_at,omitempty"`
}

// Payment is the boundary to an external payment provider. Calls are blocking
// remote operations with no automatic retry.
type Payment interface {
	ProcessPrizePayment(ctx context.Context, amountCents int64, currency, recipientName, recipientEmail, description string) (Transaction, error)
	TransactionStatus(ctx context.Context, transactionID string) (Transaction, error)
	RefundPayment(ctx context.Context, transactionID, reason string) (Transaction, error)
}

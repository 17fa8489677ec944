package gateway

import (
	"context"
	"fmt"
	"strings"
	"time"

	stripe "github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/client"
	"go.uber.org/zap"
)

// StripePayment processes prize payouts through Stripe PaymentIntents.
type StripePayment struct {
	api *client.API
}

func NewStripePayment(apiKey string) *StripePayment {
	api := &client.API{}
	api.Init(apiKey, nil)

	return &StripePayment{
		api: api,
	}
}

func (p *StripePayment) ProcessPrizePayment(_ context.Context, amountCents int64, currency, recipientName, recipientEmail, description string) (Transaction, error) {
	if amountCents <= 0 {
		return Transaction{}, ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Amount:       stripe.Int64(amountCents),
		Currency:     stripe.String(strings.ToLower(currency)),
		Description:  stripe.String(description),
		ReceiptEmail: stripe.String(recipientEmail),
	}

	intent, err := p.api.PaymentIntents.New(params)
	if err != nil {
		return Transaction{}, fmt.Errorf("stripe PaymentIntents.New -> %w", err)
	}

	zap.L().Info("stripe payment intent created",
		zap.String("intent_id", intent.ID),
		zap.Int64("amount_cents", amountCents))

	return p.intentToTransaction(intent, recipientName, recipientEmail), nil
}

func (p *StripePayment) TransactionStatus(_ context.Context, transactionID string) (Transaction, error) {
	intent, err := p.api.PaymentIntents.Get(transactionID, nil)
	if err != nil {
		return Transaction{}, fmt.Errorf("stripe PaymentIntents.Get -> %w", err)
	}

	return p.intentToTransaction(intent, "", string(intent.ReceiptEmail)), nil
}

func (p *StripePayment) RefundPayment(_ context.Context, transactionID, reason string) (Transaction, error) {
	refund, err := p.api.Refunds.New(&stripe.RefundParams{
		PaymentIntent: stripe.String(transactionID),
	})
	if err != nil {
		return Transaction{}, fmt.Errorf("stripe Refunds.New -> %w", err)
	}

	now := time.Now()

	return Transaction{
		ID:                  refund.ID,
		ExternalID:          refund.ID,
		AmountCents:         refund.Amount,
		Currency:            strings.ToUpper(string(refund.Currency)),
		Description:         "Refund: " + reason,
		Status:              PaymentRefunded,
		Provider:            "stripe",
		ParentTransactionID: transactionID,
		CreatedAt:           now,
		CompletedAt:         &now,
	}, nil
}

func (p *StripePayment) intentToTransaction(intent *stripe.PaymentIntent, recipientName, recipientEmail string) Transaction {
	tx := Transaction{
		ID:             intent.ID,
		ExternalID:     intent.ID,
		AmountCents:    intent.Amount,
		Currency:       strings.ToUpper(string(intent.Currency)),
		RecipientName:  recipientName,
		RecipientEmail: recipientEmail,
		Description:    intent.Description,
		Provider:       "stripe",
		CreatedAt:      time.Unix(intent.Created, 0),
	}

	switch intent.Status {
	case stripe.PaymentIntentStatusSucceeded:
		tx.Status = PaymentCompleted
		completed := time.Now()
		tx.CompletedAt = &completed
	case stripe.PaymentIntentStatusProcessing:
		tx.Status = PaymentProcessing
	default:
		tx.Status = PaymentPending
	}

	return tx
}

package event

import (
	"context"

	"go.uber.org/zap"

	"github.com/hackhub/hackhub-api/internal/domain"
)

// Listener receives hackathon lifecycle events. Listeners only read from the
// aggregate they are handed.
type Listener interface {
	OnStatusChange(ctx context.Context, hackathon *domain.Hackathon, oldStatus, newStatus domain.Status)
	OnJudgeAssigned(ctx context.Context, hackathon *domain.Hackathon)
	OnWinnerDeclared(ctx context.Context, hackathon *domain.Hackathon, winnerTeamID uint)
}

// Bus fans lifecycle events out to registered listeners. Dispatch is
// synchronous and runs in registration order. A panicking listener is logged
// and does not stop later listeners; it never aborts the lifecycle operation
// that emitted the event.
type Bus struct {
	listeners []Listener
}

func NewBus(listeners ...Listener) *Bus {
	return &Bus{
		listeners: listeners,
	}
}

func (b *Bus) Register(listener Listener) {
	b.listeners = append(b.listeners, listener)
}

func (b *Bus) NotifyStatusChange(ctx context.Context, hackathon *domain.Hackathon, oldStatus, newStatus domain.Status) {
	for _, l := range b.listeners {
		b.dispatch(func() {
			l.OnStatusChange(ctx, hackathon, oldStatus, newStatus)
		})
	}
}

func (b *Bus) NotifyJudgeAssigned(ctx context.Context, hackathon *domain.Hackathon) {
	for _, l := range b.listeners {
		b.dispatch(func() {
			l.OnJudgeAssigned(ctx, hackathon)
		})
	}
}

func (b *Bus) NotifyWinnerDeclared(ctx context.Context, hackathon *domain.Hackathon, winnerTeamID uint) {
	for _, l := range b.listeners {
		b.dispatch(func() {
			l.OnWinnerDeclared(ctx, hackathon, winnerTeamID)
		})
	}
}

func (b *Bus) dispatch(notify func()) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("event listener panicked", zap.Any("panic", r))
		}
	}()

	notify()
}

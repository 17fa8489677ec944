package event

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hackhub/hackhub-api/internal/domain"
)

type recordingListener struct {
	name   string
	events *[]string
}

func (l *recordingListener) OnStatusChange(_ context.Context, _ *domain.Hackathon, _, _ domain.Status) {
	*l.events = append(*l.events, l.name+":status")
}

func (l *recordingListener) OnJudgeAssigned(_ context.Context, _ *domain.Hackathon) {
	*l.events = append(*l.events, l.name+":judge")
}

func (l *recordingListener) OnWinnerDeclared(_ context.Context, _ *domain.Hackathon, _ uint) {
	*l.events = append(*l.events, l.name+":winner")
}

type panickingListener struct {
	recordingListener
}

func (l *panickingListener) OnStatusChange(_ context.Context, _ *domain.Hackathon, _, _ domain.Status) {
	panic("boom")
}

func TestBus_NotifyStatusChange(t *testing.T) {
	t.Run("dispatches in registration order", func(t *testing.T) {
		var events []string
		bus := NewBus(
			&recordingListener{name: "first", events: &events},
			&recordingListener{name: "second", events: &events},
		)
		bus.Register(&recordingListener{name: "third", events: &events})

		bus.NotifyStatusChange(context.Background(), &domain.Hackathon{}, domain.StatusRegistration, domain.StatusInProgress)

		assert.Equal(t, []string{"first:status", "second:status", "third:status"}, events)
	})

	t.Run("a panicking listener does not stop later listeners", func(t *testing.T) {
		var events []string
		bus := NewBus(
			&panickingListener{},
			&recordingListener{name: "survivor", events: &events},
		)

		assert.NotPanics(t, func() {
			bus.NotifyStatusChange(context.Background(), &domain.Hackathon{}, domain.StatusRegistration, domain.StatusInProgress)
		})
		assert.Equal(t, []string{"survivor:status"}, events)
	})
}

func TestBus_NotifyJudgeAssigned(t *testing.T) {
	var events []string
	bus := NewBus(&recordingListener{name: "l", events: &events})

	bus.NotifyJudgeAssigned(context.Background(), &domain.Hackathon{})

	assert.Equal(t, []string{"l:judge"}, events)
}

func TestBus_NotifyWinnerDeclared(t *testing.T) {
	var events []string
	bus := NewBus(&recordingListener{name: "l", events: &events})

	bus.NotifyWinnerDeclared(context.Background(), &domain.Hackathon{}, 42)

	assert.Equal(t, []string{"l:winner"}, events)
}

func TestBus_NoListeners(t *testing.T) {
	bus := NewBus()

	assert.NotPanics(t, func() {
		bus.NotifyStatusChange(context.Background(), &domain.Hackathon{}, domain.StatusJudging, domain.StatusConcluded)
	})
}

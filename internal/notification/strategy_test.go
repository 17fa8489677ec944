package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hackhub/hackhub-api/internal/domain"
)

type fakeStrategy struct {
	kind domain.NotificationKind
	sent []string
	err  error
}

func (s *fakeStrategy) Send(_ context.Context, message string, _ domain.User) error {
	s.sent = append(s.sent, message)
	return s.err
}

func (s *fakeStrategy) Kind() domain.NotificationKind {
	return s.kind
}

func TestDispatcher_Send(t *testing.T) {
	recipient := domain.User{ID: 1, Email: "alice@example.com"}

	t.Run("routes to the strategy matching the kind", func(t *testing.T) {
		email := &fakeStrategy{kind: domain.NotificationEmail}
		inApp := &fakeStrategy{kind: domain.NotificationInApp}
		d := NewDispatcher(email, inApp)

		d.Send(context.Background(), domain.NotificationInApp, "hello", recipient)

		assert.Empty(t, email.sent)
		assert.Equal(t, []string{"hello"}, inApp.sent)
	})

	t.Run("unknown kind falls back to email", func(t *testing.T) {
		email := &fakeStrategy{kind: domain.NotificationEmail}
		d := NewDispatcher(email)

		d.Send(context.Background(), domain.NotificationKind("SMS"), "hello", recipient)

		assert.Equal(t, []string{"hello"}, email.sent)
	})

	t.Run("delivery failures are swallowed", func(t *testing.T) {
		email := &fakeStrategy{kind: domain.NotificationEmail, err: errors.New("smtp down")}
		d := NewDispatcher(email)

		assert.NotPanics(t, func() {
			d.Send(context.Background(), domain.NotificationEmail, "hello", recipient)
		})
	})

	t.Run("no strategies registered", func(t *testing.T) {
		d := NewDispatcher()

		assert.NotPanics(t, func() {
			d.Send(context.Background(), domain.NotificationInApp, "hello", recipient)
		})
	})
}

func TestDispatcher_SendToAll(t *testing.T) {
	inApp := &fakeStrategy{kind: domain.NotificationInApp}
	d := NewDispatcher(inApp)

	recipients := []*domain.User{
		{ID: 1},
		{ID: 2},
		{ID: 3},
	}
	d.SendToAll(context.Background(), domain.NotificationInApp, "hello", recipients)

	assert.Len(t, inApp.sent, 3)
}

type fakeStore struct {
	created []domain.Notification
	err     error
}

func (s *fakeStore) CreateNotification(_ context.Context, n domain.Notification) (domain.Notification, error) {
	if s.err != nil {
		return domain.Notification{}, s.err
	}
	n.ID = uint(len(s.created) + 1)
	s.created = append(s.created, n)
	return n, nil
}

type fakePusher struct {
	pushed []domain.Notification
}

func (p *fakePusher) Push(_ uint, n domain.Notification) {
	p.pushed = append(p.pushed, n)
}

func TestInAppStrategy_Send(t *testing.T) {
	recipient := domain.User{ID: 7}

	t.Run("stores then pushes", func(t *testing.T) {
		store := &fakeStore{}
		pusher := &fakePusher{}
		s := NewInAppStrategy(store, pusher)

		err := s.Send(context.Background(), "hello", recipient)

		assert.NoError(t, err)
		assert.Len(t, store.created, 1)
		assert.Equal(t, uint(7), store.created[0].UserID)
		assert.Equal(t, domain.NotificationInApp, store.created[0].Kind)
		assert.Len(t, pusher.pushed, 1)
		assert.Equal(t, uint(1), pusher.pushed[0].ID)
	})

	t.Run("store failure is returned and nothing is pushed", func(t *testing.T) {
		store := &fakeStore{err: errors.New("db down")}
		pusher := &fakePusher{}
		s := NewInAppStrategy(store, pusher)

		err := s.Send(context.Background(), "hello", recipient)

		assert.Error(t, err)
		assert.Empty(t, pusher.pushed)
	})

	t.Run("nil pusher is allowed", func(t *testing.T) {
		s := NewInAppStrategy(&fakeStore{}, nil)

		assert.NoError(t, s.Send(context.Background(), "hello", recipient))
	})
}

func TestTeamListener_OnStatusChange(t *testing.T) {
	inApp := &fakeStrategy{kind: domain.NotificationInApp}
	listener := NewTeamListener(NewDispatcher(inApp))

	hackathon := &domain.Hackathon{
		Name: "HackWeek",
		Teams: []*domain.Team{
			{ID: 1, Members: []*domain.User{{ID: 1}, {ID: 2}}},
			{ID: 2, Members: []*domain.User{{ID: 3}}},
		},
	}
	listener.OnStatusChange(context.Background(), hackathon, domain.StatusRegistration, domain.StatusInProgress)

	assert.Len(t, inApp.sent, 3)
	assert.Contains(t, inApp.sent[0], "HackWeek")
	assert.Contains(t, inApp.sent[0], string(domain.StatusInProgress))
}

func TestTeamListener_OnJudgeAssigned(t *testing.T) {
	t.Run("emails the organizer", func(t *testing.T) {
		email := &fakeStrategy{kind: domain.NotificationEmail}
		listener := NewTeamListener(NewDispatcher(email))

		hackathon := &domain.Hackathon{
			Name:      "HackWeek",
			Organizer: &domain.User{ID: 1, Email: "org@example.com"},
			Judge:     &domain.User{ID: 2, Username: "judy"},
		}
		listener.OnJudgeAssigned(context.Background(), hackathon)

		assert.Len(t, email.sent, 1)
		assert.Contains(t, email.sent[0], "judy")
	})

	t.Run("no-op without a judge", func(t *testing.T) {
		email := &fakeStrategy{kind: domain.NotificationEmail}
		listener := NewTeamListener(NewDispatcher(email))

		listener.OnJudgeAssigned(context.Background(), &domain.Hackathon{Organizer: &domain.User{ID: 1}})

		assert.Empty(t, email.sent)
	})
}

func TestTeamListener_OnWinnerDeclared(t *testing.T) {
	email := &fakeStrategy{kind: domain.NotificationEmail}
	listener := NewTeamListener(NewDispatcher(email))

	hackathon := &domain.Hackathon{
		Name: "HackWeek",
		Teams: []*domain.Team{
			{ID: 1, Members: []*domain.User{{ID: 1}}},
			{ID: 2, Members: []*domain.User{{ID: 2}, {ID: 3}}},
		},
	}
	listener.OnWinnerDeclared(context.Background(), hackathon, 2)

	assert.Len(t, email.sent, 3)
	assert.Contains(t, email.sent[0], "Thanks for taking part")
	assert.Contains(t, email.sent[1], "Congratulations")
	assert.Contains(t, email.sent[2], "Congratulations")
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hackhub/hackhub-api/internal/domain"
	"github.com/hackhub/hackhub-api/internal/gateway"
	"github.com/hackhub/hackhub-api/internal/repository"
)

type fakeSupportRepo struct {
	requests map[uint]domain.SupportRequest
	nextID   uint
}

func newFakeSupportRepo() *fakeSupportRepo {
	return &fakeSupportRepo{
		requests: make(map[uint]domain.SupportRequest),
	}
}

func (f *fakeSupportRepo) Create(_ context.Context, request domain.SupportRequest) (domain.SupportRequest, error) {
	f.nextID++
	request.ID = f.nextID
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeSupportRepo) FindByID(_ context.Context, id uint) (domain.SupportRequest, error) {
	request, ok := f.requests[id]
	if !ok {
		return domain.SupportRequest{}, repository.ErrSupportRequestNotFound
	}
	return request, nil
}

func (f *fakeSupportRepo) Update(_ context.Context, request domain.SupportRequest) (domain.SupportRequest, error) {
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeSupportRepo) FindByMentorID(_ context.Context, mentorID uint) ([]domain.SupportRequest, error) {
	var found []domain.SupportRequest
	for _, r := range f.requests {
		if r.MentorID != nil && *r.MentorID == mentorID {
			found = append(found, r)
		}
	}
	return found, nil
}

func (f *fakeSupportRepo) FindByTeamID(_ context.Context, teamID uint) ([]domain.SupportRequest, error) {
	var found []domain.SupportRequest
	for _, r := range f.requests {
		if r.TeamID == teamID {
			found = append(found, r)
		}
	}
	return found, nil
}

func (f *fakeSupportRepo) FindPending(_ context.Context) ([]domain.SupportRequest, error) {
	var found []domain.SupportRequest
	for _, r := range f.requests {
		if r.IsPending() {
			found = append(found, r)
		}
	}
	return found, nil
}

type supportFixture struct {
	svc         *SupportService
	supportRepo *fakeSupportRepo
	repo        *fakeRepo
}

func newSupportFixture() *supportFixture {
	repo := newFakeRepo()
	h := repo.addHackathon(1, domain.StatusInProgress, 4)
	alice := repo.addUser(1, "alice", domain.RoleParticipant)
	repo.addUser(2, "mia", domain.RoleMentor)
	repo.addTeam(h, 10, "Rocket", alice)

	supportRepo := newFakeSupportRepo()
	facade := gateway.NewFacade(gateway.NewMockCalendar(0), gateway.NewMockPayment(0))

	return &supportFixture{
		svc:         NewSupportService(supportRepo, repo, repo, facade),
		supportRepo: supportRepo,
		repo:        repo,
	}
}

func (f *supportFixture) assignedRequest(t *testing.T) domain.SupportRequest {
	t.Helper()

	created, err := f.svc.CreateRequest(context.Background(), 10, "Stuck on deployment", "Need help with CI")
	require.NoError(t, err)
	assigned, err := f.svc.AssignMentor(context.Background(), created.ID, 2)
	require.NoError(t, err)

	return assigned
}

func TestSupportService_CreateRequest(t *testing.T) {
	t.Run("opens a PENDING request", func(t *testing.T) {
		f := newSupportFixture()

		created, err := f.svc.CreateRequest(context.Background(), 10, "Stuck on deployment", "Need help with CI")

		require.NoError(t, err)
		assert.Equal(t, domain.SupportPending, created.Status)
		assert.Equal(t, uint(10), created.TeamID)
		assert.Nil(t, created.MentorID)
	})

	t.Run("the team must exist", func(t *testing.T) {
		f := newSupportFixture()

		_, err := f.svc.CreateRequest(context.Background(), 99, "Stuck", "")

		assert.ErrorIs(t, err, ErrTeamNotFound)
	})
}

func TestSupportService_AssignMentor(t *testing.T) {
	t.Run("moves the request to ASSIGNED", func(t *testing.T) {
		f := newSupportFixture()
		created, err := f.svc.CreateRequest(context.Background(), 10, "Stuck", "")
		require.NoError(t, err)

		assigned, err := f.svc.AssignMentor(context.Background(), created.ID, 2)

		require.NoError(t, err)
		assert.Equal(t, domain.SupportAssigned, assigned.Status)
		require.NotNil(t, assigned.MentorID)
		assert.Equal(t, uint(2), *assigned.MentorID)
	})

	t.Run("only mentors may be assigned", func(t *testing.T) {
		f := newSupportFixture()
		created, err := f.svc.CreateRequest(context.Background(), 10, "Stuck", "")
		require.NoError(t, err)

		_, err = f.svc.AssignMentor(context.Background(), created.ID, 1)

		assert.ErrorIs(t, err, ErrRoleViolation)
	})

	t.Run("a resolved request cannot be reassigned", func(t *testing.T) {
		f := newSupportFixture()
		created, err := f.svc.CreateRequest(context.Background(), 10, "Stuck", "")
		require.NoError(t, err)
		_, err = f.svc.Resolve(context.Background(), created.ID)
		require.NoError(t, err)

		_, err = f.svc.AssignMentor(context.Background(), created.ID, 2)

		assert.ErrorIs(t, err, ErrSupportRequestResolved)
	})
}

func TestSupportService_ScheduleCall(t *testing.T) {
	t.Run("books a one-hour call and moves to SCHEDULED", func(t *testing.T) {
		f := newSupportFixture()
		assigned := f.assignedRequest(t)
		start := time.Now().Add(24 * time.Hour)

		scheduled, err := f.svc.ScheduleCall(context.Background(), assigned.ID, start)

		require.NoError(t, err)
		assert.Equal(t, domain.SupportScheduled, scheduled.Status)
		assert.NotEmpty(t, scheduled.CalendarEventID)
		require.NotNil(t, scheduled.ScheduledAt)
		assert.True(t, scheduled.ScheduledAt.Equal(start))
	})

	t.Run("a mentor must be assigned first", func(t *testing.T) {
		f := newSupportFixture()
		created, err := f.svc.CreateRequest(context.Background(), 10, "Stuck", "")
		require.NoError(t, err)

		_, err = f.svc.ScheduleCall(context.Background(), created.ID, time.Now().Add(time.Hour))

		assert.ErrorIs(t, err, ErrMentorNotAssigned)
	})

	t.Run("a resolved request cannot be scheduled", func(t *testing.T) {
		f := newSupportFixture()
		assigned := f.assignedRequest(t)
		_, err := f.svc.Resolve(context.Background(), assigned.ID)
		require.NoError(t, err)

		_, err = f.svc.ScheduleCall(context.Background(), assigned.ID, time.Now().Add(time.Hour))

		assert.ErrorIs(t, err, ErrSupportRequestResolved)
	})
}

func TestSupportService_CancelCall(t *testing.T) {
	t.Run("cancels the event and drops back to ASSIGNED", func(t *testing.T) {
		f := newSupportFixture()
		assigned := f.assignedRequest(t)
		scheduled, err := f.svc.ScheduleCall(context.Background(), assigned.ID, time.Now().Add(time.Hour))
		require.NoError(t, err)

		cancelled, err := f.svc.CancelCall(context.Background(), scheduled.ID)

		require.NoError(t, err)
		assert.Equal(t, domain.SupportAssigned, cancelled.Status)
		assert.Empty(t, cancelled.CalendarEventID)
		assert.Nil(t, cancelled.ScheduledAt)
	})

	t.Run("nothing to cancel without a booked call", func(t *testing.T) {
		f := newSupportFixture()
		assigned := f.assignedRequest(t)

		_, err := f.svc.CancelCall(context.Background(), assigned.ID)

		assert.ErrorIs(t, err, ErrNoScheduledCall)
	})
}

func TestSupportService_Resolve(t *testing.T) {
	f := newSupportFixture()
	assigned := f.assignedRequest(t)

	resolved, err := f.svc.Resolve(context.Background(), assigned.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.SupportResolved, resolved.Status)

	// Resolving again is idempotent.
	resolved, err = f.svc.Resolve(context.Background(), assigned.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SupportResolved, resolved.Status)
}

func TestSupportService_Listing(t *testing.T) {
	f := newSupportFixture()
	first := f.assignedRequest(t)
	second, err := f.svc.CreateRequest(context.Background(), 10, "Another question", "")
	require.NoError(t, err)

	byMentor, err := f.svc.ListRequestsByMentor(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, byMentor, 1)
	assert.Equal(t, first.ID, byMentor[0].ID)

	byTeam, err := f.svc.ListRequestsByTeam(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, byTeam, 2)

	pending, err := f.svc.ListPendingRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ID, pending[0].ID)
}

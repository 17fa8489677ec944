package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hackhub/hackhub-api/internal/domain"
	"github.com/hackhub/hackhub-api/internal/gateway"
)

type SupportRepository interface {
	Create(ctx context.Context, request domain.SupportRequest) (domain.SupportRequest, error)
	FindByID(ctx context.Context, id uint) (domain.SupportRequest, error)
	Update(ctx context.Context, request domain.SupportRequest) (domain.SupportRequest, error)
	FindByMentorID(ctx context.Context, mentorID uint) ([]domain.SupportRequest, error)
	FindByTeamID(ctx context.Context, teamID uint) ([]domain.SupportRequest, error)
	FindPending(ctx context.Context) ([]domain.SupportRequest, error)
}

type SupportTeamRepository interface {
	GetTeam(ctx context.Context, id uint) (*domain.Team, error)
}

type SupportUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

// SupportService runs a team's mentoring requests through their lifecycle:
// PENDING, ASSIGNED once a mentor takes it, SCHEDULED once a call is booked
// on the calendar, RESOLVED at the end. Calls are booked through the
// calendar boundary as one-hour meetings.
type SupportService struct {
	repo     SupportRepository
	teamRepo SupportTeamRepository
	userRepo SupportUserRepository
	facade   *gateway.Facade
}

func NewSupportService(
	repo SupportRepository,
	teamRepo SupportTeamRepository,
	userRepo SupportUserRepository,
	facade *gateway.Facade,
) *SupportService {
	return &SupportService{
		repo:     repo,
		teamRepo: teamRepo,
		userRepo: userRepo,
		facade:   facade,
	}
}

func (s *SupportService) CreateRequest(ctx context.Context, teamID uint, title, description string) (domain.SupportRequest, error) {
	if _, err := s.teamRepo.GetTeam(ctx, teamID); err != nil {
		return domain.SupportRequest{}, fmt.Errorf("s.teamRepo.GetTeam -> %w", err)
	}

	created, err := s.repo.Create(ctx, domain.SupportRequest{
		Title:       title,
		Description: description,
		Status:      domain.SupportPending,
		TeamID:      teamID,
	})
	if err != nil {
		return domain.SupportRequest{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// AssignMentor puts a mentor on the request and moves it to ASSIGNED.
func (s *SupportService) AssignMentor(ctx context.Context, requestID, mentorID uint) (domain.SupportRequest, error) {
	request, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return domain.SupportRequest{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if request.IsResolved() {
		return domain.SupportRequest{}, ErrSupportRequestResolved
	}

	mentor, err := s.userRepo.FindByID(ctx, mentorID)
	if err != nil {
		return domain.SupportRequest{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}
	if mentor.Role != domain.RoleMentor {
		return domain.SupportRequest{}, ErrRoleViolation
	}

	request.MentorID = &mentor.ID
	request.Status = domain.SupportAssigned

	updated, err := s.repo.Update(ctx, request)
	if err != nil {
		return domain.SupportRequest{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// ScheduleCall books a one-hour call between the assigned mentor and the
// team's creator, keeps the calendar event ID for later cancellation and
// moves the request to SCHEDULED.
func (s *SupportService) ScheduleCall(ctx context.Context, requestID uint, startTime time.Time) (domain.SupportRequest, error) {
	request, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return domain.SupportRequest{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if request.IsResolved() {
		return domain.SupportRequest{}, ErrSupportRequestResolved
	}
	if request.MentorID == nil {
		return domain.SupportRequest{}, ErrMentorNotAssigned
	}

	mentor, err := s.userRepo.FindByID(ctx, *request.MentorID)
	if err != nil {
		return domain.SupportRequest{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	team, err := s.teamRepo.GetTeam(ctx, request.TeamID)
	if err != nil {
		return domain.SupportRequest{}, fmt.Errorf("s.teamRepo.GetTeam -> %w", err)
	}

	var leaderEmail string
	if team.Creator != nil {
		leaderEmail = team.Creator.Email
	}

	eventID, err := s.facade.ScheduleMentorCall(ctx, mentor.Username, mentor.Email,
		team.Name, leaderEmail, startTime, startTime.Add(time.Hour), request.Title)
	if err != nil {
		return domain.SupportRequest{}, fmt.Errorf("s.facade.ScheduleMentorCall -> %w", err)
	}

	request.CalendarEventID = eventID
	request.ScheduledAt = &startTime
	request.Status = domain.SupportScheduled

	updated, err := s.repo.Update(ctx, request)
	if err != nil {
		return domain.SupportRequest{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// CancelCall cancels the booked calendar event and drops the request back to
// ASSIGNED.
func (s *SupportService) CancelCall(ctx context.Context, requestID uint) (domain.SupportRequest, error) {
	request, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return domain.SupportRequest{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if request.CalendarEventID == "" {
		return domain.SupportRequest{}, ErrNoScheduledCall
	}

	if _, err = s.facade.CancelMentorCall(ctx, request.CalendarEventID); err != nil {
		return domain.SupportRequest{}, fmt.Errorf("s.facade.CancelMentorCall -> %w", err)
	}

	request.CalendarEventID = ""
	request.ScheduledAt = nil
	request.Status = domain.SupportAssigned

	updated, err := s.repo.Update(ctx, request)
	if err != nil {
		return domain.SupportRequest{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *SupportService) Resolve(ctx context.Context, requestID uint) (domain.SupportRequest, error) {
	request, err := s.repo.FindByID(ctx, requestID)
	if err != nil {
		return domain.SupportRequest{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if request.IsResolved() {
		return request, nil
	}

	request.Status = domain.SupportResolved

	updated, err := s.repo.Update(ctx, request)
	if err != nil {
		return domain.SupportRequest{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *SupportService) GetRequest(ctx context.Context, id uint) (domain.SupportRequest, error) {
	request, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.SupportRequest{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return request, nil
}

func (s *SupportService) ListRequestsByMentor(ctx context.Context, mentorID uint) ([]domain.SupportRequest, error) {
	requests, err := s.repo.FindByMentorID(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByMentorID -> %w", err)
	}

	return requests, nil
}

func (s *SupportService) ListRequestsByTeam(ctx context.Context, teamID uint) ([]domain.SupportRequest, error) {
	requests, err := s.repo.FindByTeamID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByTeamID -> %w", err)
	}

	return requests, nil
}

func (s *SupportService) ListPendingRequests(ctx context.Context) ([]domain.SupportRequest, error) {
	requests, err := s.repo.FindPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindPending -> %w", err)
	}

	return requests, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/hackhub/hackhub-api/internal/domain"
	"github.com/hackhub/hackhub-api/internal/event"
	"github.com/hackhub/hackhub-api/internal/gateway"
)

type HackathonRepository interface {
	Create(ctx context.Context, hackathon domain.Hackathon) (domain.Hackathon, error)
	GetAggregate(ctx context.Context, id uint) (*domain.Hackathon, error)
	FindAll(ctx context.Context) ([]domain.Hackathon, error)
	FindByStatus(ctx context.Context, status domain.Status) ([]domain.Hackathon, error)
	FindByOrganizerID(ctx context.Context, organizerID uint) ([]domain.Hackathon, error)
	SaveLifecycle(ctx context.Context, hackathon *domain.Hackathon) error
	AddMentor(ctx context.Context, hackathonID, mentorID uint) error
	RemoveMentor(ctx context.Context, hackathonID, mentorID uint) error
}

type HackathonUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

// HackathonService owns the hackathon lifecycle. All mutations of one
// hackathon run under that hackathon's lock, so a status change and a
// concurrent evaluation or join can never interleave.
type HackathonService struct {
	repo     HackathonRepository
	userRepo HackathonUserRepository
	bus      *event.Bus
	facade   *gateway.Facade
	locks    *LockRegistry
}

func NewHackathonService(
	repo HackathonRepository,
	userRepo HackathonUserRepository,
	bus *event.Bus,
	facade *gateway.Facade,
	locks *LockRegistry,
) *HackathonService {
	return &HackathonService{
		repo:     repo,
		userRepo: userRepo,
		bus:      bus,
		facade:   facade,
		locks:    locks,
	}
}

// CreateHackathon creates a hackathon in REGISTRATION. Only organizers may
// create hackathons.
func (s *HackathonService) CreateHackathon(ctx context.Context, hackathon domain.Hackathon) (domain.Hackathon, error) {
	organizer, err := s.userRepo.FindByID(ctx, hackathon.OrganizerID)
	if err != nil {
		return domain.Hackathon{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}
	if organizer.Role != domain.RoleOrganizer {
		return domain.Hackathon{}, ErrRoleViolation
	}

	hackathon.Status = domain.StatusRegistration

	created, err := s.repo.Create(ctx, hackathon)
	if err != nil {
		return domain.Hackathon{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *HackathonService) GetHackathon(ctx context.Context, id uint) (*domain.Hackathon, error) {
	hackathon, err := s.repo.GetAggregate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAggregate -> %w", err)
	}

	return hackathon, nil
}

func (s *HackathonService) ListHackathons(ctx context.Context) ([]domain.Hackathon, error) {
	hackathons, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return hackathons, nil
}

func (s *HackathonService) ListHackathonsByStatus(ctx context.Context, status domain.Status) ([]domain.Hackathon, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	hackathons, err := s.repo.FindByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByStatus -> %w", err)
	}

	return hackathons, nil
}

func (s *HackathonService) ListHackathonsByOrganizer(ctx context.Context, organizerID uint) ([]domain.Hackathon, error) {
	hackathons, err := s.repo.FindByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByOrganizerID -> %w", err)
	}

	return hackathons, nil
}

// AssignJudge attaches a judge to the hackathon and notifies listeners.
func (s *HackathonService) AssignJudge(ctx context.Context, hackathonID, judgeID uint) (*domain.Hackathon, error) {
	judge, err := s.userRepo.FindByID(ctx, judgeID)
	if err != nil {
		return nil, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}
	if judge.Role != domain.RoleJudge {
		return nil, ErrRoleViolation
	}

	unlock := s.locks.Lock(hackathonID)
	defer unlock()

	hackathon, err := s.repo.GetAggregate(ctx, hackathonID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAggregate -> %w", err)
	}

	hackathon.Judge = &judge

	if err = s.repo.SaveLifecycle(ctx, hackathon); err != nil {
		return nil, fmt.Errorf("s.repo.SaveLifecycle -> %w", err)
	}

	s.bus.NotifyJudgeAssigned(ctx, hackathon)

	return hackathon, nil
}

// UpdateStatus moves the hackathon to newStatus. The status change event is
// emitted on every call, including one that sets the current status again.
// Moving to CONCLUDED always reruns winner determination, so a re-conclusion
// picks up evaluations recorded after the first one. The prize is paid out
// through the payment boundary only the first time a winner is recorded; a
// failed payout is returned to the caller after the status change has already
// been persisted.
func (s *HackathonService) UpdateStatus(ctx context.Context, hackathonID uint, newStatus domain.Status) (*domain.Hackathon, error) {
	if !newStatus.IsValid() {
		return nil, ErrInvalidStatus
	}

	unlock := s.locks.Lock(hackathonID)
	defer unlock()

	hackathon, err := s.repo.GetAggregate(ctx, hackathonID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAggregate -> %w", err)
	}

	oldStatus := hackathon.Status
	hackathon.Status = newStatus

	hadWinner := hackathon.WinnerTeamID != nil

	var winner *domain.Team
	if newStatus == domain.StatusConcluded {
		winner = hackathon.DetermineWinner()
	}

	if err = s.repo.SaveLifecycle(ctx, hackathon); err != nil {
		return nil, fmt.Errorf("s.repo.SaveLifecycle -> %w", err)
	}

	s.bus.NotifyStatusChange(ctx, hackathon, oldStatus, newStatus)

	if winner != nil {
		s.bus.NotifyWinnerDeclared(ctx, hackathon, winner.ID)

		if !hadWinner {
			if err = s.payPrize(ctx, hackathon, winner); err != nil {
				return hackathon, err
			}
		}
	}

	return hackathon, nil
}

// DeclareWinner sets the winner explicitly. The hackathon must already be
// CONCLUDED and the team must belong to it.
func (s *HackathonService) DeclareWinner(ctx context.Context, hackathonID, teamID uint) (*domain.Team, error) {
	unlock := s.locks.Lock(hackathonID)
	defer unlock()

	hackathon, err := s.repo.GetAggregate(ctx, hackathonID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAggregate -> %w", err)
	}

	if hackathon.Status != domain.StatusConcluded {
		return nil, ErrHackathonNotConcluded
	}

	team := hackathon.TeamByID(teamID)
	if team == nil {
		return nil, ErrTeamNotInHackathon
	}

	hackathon.WinnerTeamID = &team.ID

	if err = s.repo.SaveLifecycle(ctx, hackathon); err != nil {
		return nil, fmt.Errorf("s.repo.SaveLifecycle -> %w", err)
	}

	s.bus.NotifyWinnerDeclared(ctx, hackathon, team.ID)

	return team, nil
}

// AddMentor registers a mentor on the hackathon. Adding a mentor that is
// already registered is a no-op.
func (s *HackathonService) AddMentor(ctx context.Context, hackathonID, mentorID uint) error {
	mentor, err := s.userRepo.FindByID(ctx, mentorID)
	if err != nil {
		return fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}
	if mentor.Role != domain.RoleMentor {
		return ErrRoleViolation
	}

	unlock := s.locks.Lock(hackathonID)
	defer unlock()

	hackathon, err := s.repo.GetAggregate(ctx, hackathonID)
	if err != nil {
		return fmt.Errorf("s.repo.GetAggregate -> %w", err)
	}
	if hackathon.HasMentor(mentorID) {
		return nil
	}

	if err = s.repo.AddMentor(ctx, hackathonID, mentorID); err != nil {
		return fmt.Errorf("s.repo.AddMentor -> %w", err)
	}

	return nil
}

func (s *HackathonService) RemoveMentor(ctx context.Context, hackathonID, mentorID uint) error {
	if _, err := s.userRepo.FindByID(ctx, mentorID); err != nil {
		return fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	unlock := s.locks.Lock(hackathonID)
	defer unlock()

	if err := s.repo.RemoveMentor(ctx, hackathonID, mentorID); err != nil {
		return fmt.Errorf("s.repo.RemoveMentor -> %w", err)
	}

	return nil
}

func (s *HackathonService) GetMentors(ctx context.Context, hackathonID uint) ([]*domain.User, error) {
	hackathon, err := s.repo.GetAggregate(ctx, hackathonID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAggregate -> %w", err)
	}

	return hackathon.Mentors, nil
}

func (s *HackathonService) payPrize(ctx context.Context, hackathon *domain.Hackathon, winner *domain.Team) error {
	if hackathon.PrizePoolCents <= 0 || winner.Creator == nil {
		return nil
	}

	_, err := s.facade.ProcessHackathonPrize(ctx, hackathon.PrizePoolCents, hackathon.PrizeCurrency,
		winner.Name, winner.Creator.Email, hackathon.Name)
	if err != nil {
		return fmt.Errorf("s.facade.ProcessHackathonPrize -> %w", err)
	}

	return nil
}

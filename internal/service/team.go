package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hackhub/hackhub-api/internal/domain"
)

type TeamRepository interface {
	GetAggregate(ctx context.Context, id uint) (*domain.Hackathon, error)
	CreateTeam(ctx context.Context, team domain.Team) (domain.Team, error)
	GetTeam(ctx context.Context, id uint) (*domain.Team, error)
	FindTeamsByHackathonID(ctx context.Context, hackathonID uint) ([]domain.Team, error)
	SetUserTeam(ctx context.Context, userID uint, teamID *uint) error
	SaveTeamProject(ctx context.Context, team *domain.Team) error
	SaveTeamEvaluation(ctx context.Context, team *domain.Team) error
	DeleteTeam(ctx context.Context, teamID uint) error
}

type TeamUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
}

// TeamService owns team membership. Membership rules are enforced on the
// in-memory aggregate under the hackathon lock, then persisted as a single
// users.team_id update, so a mid-move crash can never leave a user in two
// teams or in none.
type TeamService struct {
	repo     TeamRepository
	userRepo TeamUserRepository
	locks    *LockRegistry
	now      func() time.Time
}

func NewTeamService(repo TeamRepository, userRepo TeamUserRepository, locks *LockRegistry) *TeamService {
	return &TeamService{
		repo:     repo,
		userRepo: userRepo,
		locks:    locks,
		now:      time.Now,
	}
}

// CreateTeam creates a team with the creator as its first member. The
// hackathon must still be open for registration and the creator must not
// already belong to a team.
func (s *TeamService) CreateTeam(ctx context.Context, hackathonID uint, name string, creatorID uint) (domain.Team, error) {
	creator, err := s.userRepo.FindByID(ctx, creatorID)
	if err != nil {
		return domain.Team{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}
	if creator.TeamID != nil {
		return domain.Team{}, ErrAlreadyInTeam
	}

	unlock := s.locks.Lock(hackathonID)
	defer unlock()

	hackathon, err := s.repo.GetAggregate(ctx, hackathonID)
	if err != nil {
		return domain.Team{}, fmt.Errorf("s.repo.GetAggregate -> %w", err)
	}

	if !hackathon.IsRegistrationOpen(s.now()) {
		return domain.Team{}, ErrRegistrationClosed
	}

	team, err := domain.NewTeam(name, hackathon, &creator)
	if err != nil {
		return domain.Team{}, err
	}

	created, err := s.repo.CreateTeam(ctx, *team)
	if err != nil {
		return domain.Team{}, fmt.Errorf("s.repo.CreateTeam -> %w", err)
	}

	return created, nil
}

// JoinTeam moves a user into a team. A user already in another team leaves
// it implicitly, unless they created that team; team creators stay. Both
// hackathons involved in a cross-hackathon move are locked in ascending ID
// order.
func (s *TeamService) JoinTeam(ctx context.Context, teamID, userID uint) (*domain.Team, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}

	target, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetTeam -> %w", err)
	}

	if user.TeamID != nil && *user.TeamID == teamID {
		return target, nil
	}

	var currentHackathonID uint
	if user.TeamID != nil {
		current, err := s.repo.GetTeam(ctx, *user.TeamID)
		if err != nil {
			return nil, fmt.Errorf("s.repo.GetTeam -> %w", err)
		}
		currentHackathonID = current.HackathonID
	}

	unlock := s.locks.LockBoth(target.HackathonID, currentHackathonID)
	defer unlock()

	hackathon, err := s.repo.GetAggregate(ctx, target.HackathonID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAggregate -> %w", err)
	}

	team := hackathon.TeamByID(teamID)
	if team == nil {
		return nil, ErrTeamNotFound
	}

	member, err := s.resolveMember(ctx, hackathon, currentHackathonID, &user)
	if err != nil {
		return nil, err
	}

	if err = member.JoinTeam(team); err != nil {
		return nil, err
	}

	if err = s.repo.SetUserTeam(ctx, userID, &team.ID); err != nil {
		return nil, fmt.Errorf("s.repo.SetUserTeam -> %w", err)
	}

	return team, nil
}

// LeaveTeam removes a user from a team. The creator cannot leave.
func (s *TeamService) LeaveTeam(ctx context.Context, teamID, userID uint) error {
	target, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return fmt.Errorf("s.repo.GetTeam -> %w", err)
	}

	unlock := s.locks.Lock(target.HackathonID)
	defer unlock()

	hackathon, err := s.repo.GetAggregate(ctx, target.HackathonID)
	if err != nil {
		return fmt.Errorf("s.repo.GetAggregate -> %w", err)
	}

	team := hackathon.TeamByID(teamID)
	if team == nil {
		return ErrTeamNotFound
	}

	member := memberByID(team, userID)
	if member == nil {
		return ErrNotTeamMember
	}

	if err = member.LeaveTeam(); err != nil {
		return err
	}

	if err = s.repo.SetUserTeam(ctx, userID, nil); err != nil {
		return fmt.Errorf("s.repo.SetUserTeam -> %w", err)
	}

	return nil
}

// SubmitProject records a team's submission while the hackathon is running.
// Only members may submit, and name, description and repository URL are
// stored together.
func (s *TeamService) SubmitProject(ctx context.Context, teamID, userID uint, name, description, repositoryURL string) (*domain.Team, error) {
	target, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetTeam -> %w", err)
	}

	unlock := s.locks.Lock(target.HackathonID)
	defer unlock()

	hackathon, err := s.repo.GetAggregate(ctx, target.HackathonID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAggregate -> %w", err)
	}

	team := hackathon.TeamByID(teamID)
	if team == nil {
		return nil, ErrTeamNotFound
	}
	if memberByID(team, userID) == nil {
		return nil, ErrNotTeamMember
	}

	if !hackathon.IsInProgress(s.now()) {
		return nil, ErrHackathonNotInProgress
	}

	team.SubmitProject(name, description, repositoryURL)

	if err = s.repo.SaveTeamProject(ctx, team); err != nil {
		return nil, fmt.Errorf("s.repo.SaveTeamProject -> %w", err)
	}

	return team, nil
}

// EvaluateTeam stores a judge's score and feedback for a team. The score
// must be between 0 and 10 inclusive; a later call overwrites the earlier
// evaluation.
func (s *TeamService) EvaluateTeam(ctx context.Context, teamID, judgeID uint, score float64, feedback string) (*domain.Team, error) {
	judge, err := s.userRepo.FindByID(ctx, judgeID)
	if err != nil {
		return nil, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}
	if judge.Role != domain.RoleJudge {
		return nil, ErrRoleViolation
	}

	target, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetTeam -> %w", err)
	}

	unlock := s.locks.Lock(target.HackathonID)
	defer unlock()

	if err = target.Evaluate(score, feedback); err != nil {
		return nil, err
	}

	if err = s.repo.SaveTeamEvaluation(ctx, target); err != nil {
		return nil, fmt.Errorf("s.repo.SaveTeamEvaluation -> %w", err)
	}

	return target, nil
}

// ResetEvaluation clears a team's evaluation so it no longer counts in the
// winner scan.
func (s *TeamService) ResetEvaluation(ctx context.Context, teamID uint) (*domain.Team, error) {
	target, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetTeam -> %w", err)
	}

	unlock := s.locks.Lock(target.HackathonID)
	defer unlock()

	target.ResetEvaluation()

	if err = s.repo.SaveTeamEvaluation(ctx, target); err != nil {
		return nil, fmt.Errorf("s.repo.SaveTeamEvaluation -> %w", err)
	}

	return target, nil
}

func (s *TeamService) GetTeam(ctx context.Context, id uint) (*domain.Team, error) {
	team, err := s.repo.GetTeam(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetTeam -> %w", err)
	}

	return team, nil
}

func (s *TeamService) ListTeamsByHackathon(ctx context.Context, hackathonID uint) ([]domain.Team, error) {
	teams, err := s.repo.FindTeamsByHackathonID(ctx, hackathonID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindTeamsByHackathonID -> %w", err)
	}

	return teams, nil
}

// DeleteTeam disbands a team and frees its members. Only the creator may
// disband their team.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID, requesterID uint) error {
	target, err := s.repo.GetTeam(ctx, teamID)
	if err != nil {
		return fmt.Errorf("s.repo.GetTeam -> %w", err)
	}
	if target.CreatorID != requesterID {
		return ErrRoleViolation
	}

	unlock := s.locks.Lock(target.HackathonID)
	defer unlock()

	if err = s.repo.DeleteTeam(ctx, teamID); err != nil {
		return fmt.Errorf("s.repo.DeleteTeam -> %w", err)
	}

	return nil
}

// resolveMember finds the live aggregate pointer for the joining user so the
// implicit leave runs against the team that actually holds them. A user with
// no current team gets a detached copy.
func (s *TeamService) resolveMember(ctx context.Context, hackathon *domain.Hackathon, currentHackathonID uint, user *domain.User) (*domain.User, error) {
	if member := findMember(hackathon, user.ID); member != nil {
		return member, nil
	}

	if currentHackathonID != 0 && currentHackathonID != hackathon.ID {
		other, err := s.repo.GetAggregate(ctx, currentHackathonID)
		if err != nil {
			return nil, fmt.Errorf("s.repo.GetAggregate -> %w", err)
		}
		if member := findMember(other, user.ID); member != nil {
			return member, nil
		}
	}

	detached := *user
	detached.Team = nil
	detached.TeamID = nil

	return &detached, nil
}

func findMember(hackathon *domain.Hackathon, userID uint) *domain.User {
	for _, team := range hackathon.Teams {
		if member := memberByID(team, userID); member != nil {
			return member
		}
	}
	return nil
}

func memberByID(team *domain.Team, userID uint) *domain.User {
	for _, m := range team.Members {
		if m.ID == userID {
			return m
		}
	}
	return nil
}

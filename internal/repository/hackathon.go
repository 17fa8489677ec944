package repository

import (
	"context"
	"fmt"

	"github.com/hackhub/hackhub-api/internal/domain"
	"github.com/hackhub/hackhub-api/internal/repository/dao"
)

var (
	ErrHackathonNotFound = dao.ErrHackathonNotFound
	ErrTeamNotFound      = dao.ErrTeamNotFound
)

type HackathonDAO interface {
	Insert(ctx context.Context, hackathon dao.Hackathon) (dao.Hackathon, error)
	FindByID(ctx context.Context, id uint) (dao.Hackathon, error)
	FindAll(ctx context.Context) ([]dao.Hackathon, error)
	FindByStatus(ctx context.Context, status string) ([]dao.Hackathon, error)
	FindByOrganizerID(ctx context.Context, organizerID uint) ([]dao.Hackathon, error)
	UpdateLifecycleFields(ctx context.Context, hackathon dao.Hackathon) error
	AddMentor(ctx context.Context, hackathonID, mentorID uint) error
	RemoveMentor(ctx context.Context, hackathonID, mentorID uint) error
	InsertTeam(ctx context.Context, team dao.Team) (dao.Team, error)
	FindTeamByID(ctx context.Context, id uint) (dao.Team, error)
	FindTeamsByHackathonID(ctx context.Context, hackathonID uint) ([]dao.Team, error)
	UpdateTeamProject(ctx context.Context, teamID uint, name, description, repositoryURL string) error
	UpdateTeamEvaluation(ctx context.Context, teamID uint, score *float64, feedback string) error
	DeleteTeam(ctx context.Context, teamID uint) error
}

type UserTeamDAO interface {
	SetTeam(ctx context.Context, userID uint, teamID *uint) error
}

// HackathonRepository loads hackathons as full aggregates (teams, members,
// mentors, organizer, judge) with both sides of every bidirectional
// reference wired, and persists the narrow mutations the services make.
type HackathonRepository struct {
	dao     HackathonDAO
	userDAO UserTeamDAO
}

func NewHackathonRepository(dao HackathonDAO, userDAO UserTeamDAO) *HackathonRepository {
	return &HackathonRepository{
		dao:     dao,
		userDAO: userDAO,
	}
}

func (r *HackathonRepository) Create(ctx context.Context, hackathon domain.Hackathon) (domain.Hackathon, error) {
	created, err := r.dao.Insert(ctx, dao.Hackathon{
		Name:                 hackathon.Name,
		Description:          hackathon.Description,
		Rules:                hackathon.Rules,
		RegistrationDeadline: hackathon.RegistrationDeadline,
		StartDate:            hackathon.StartDate,
		EndDate:              hackathon.EndDate,
		Status:               string(hackathon.Status),
		MaxTeamSize:          hackathon.MaxTeamSize,
		OrganizerID:          hackathon.OrganizerID,
		PrizePoolCents:       hackathon.PrizePoolCents,
		PrizeCurrency:        hackathon.PrizeCurrency,
	})
	if err != nil {
		return domain.Hackathon{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return *r.daoToDomainShallow(created), nil
}

// GetAggregate loads a hackathon with its owned teams and users wired
// together in memory.
func (r *HackathonRepository) GetAggregate(ctx context.Context, id uint) (*domain.Hackathon, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.buildAggregate(found), nil
}

func (r *HackathonRepository) FindAll(ctx context.Context) ([]domain.Hackathon, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomainShallow(found), nil
}

func (r *HackathonRepository) FindByStatus(ctx context.Context, status domain.Status) ([]domain.Hackathon, error) {
	found, err := r.dao.FindByStatus(ctx, string(status))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByStatus -> %w", err)
	}

	return r.daosToDomainShallow(found), nil
}

func (r *HackathonRepository) FindByOrganizerID(ctx context.Context, organizerID uint) ([]domain.Hackathon, error) {
	found, err := r.dao.FindByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByOrganizerID -> %w", err)
	}

	return r.daosToDomainShallow(found), nil
}

// SaveLifecycle persists status, judge and winner after a lifecycle mutation.
func (r *HackathonRepository) SaveLifecycle(ctx context.Context, hackathon *domain.Hackathon) error {
	var judgeID *uint
	if hackathon.Judge != nil {
		id := hackathon.Judge.ID
		judgeID = &id
	}

	err := r.dao.UpdateLifecycleFields(ctx, dao.Hackathon{
		ID:           hackathon.ID,
		Status:       string(hackathon.Status),
		JudgeID:      judgeID,
		WinnerTeamID: hackathon.WinnerTeamID,
	})
	if err != nil {
		return fmt.Errorf("r.dao.UpdateLifecycleFields -> %w", err)
	}

	return nil
}

func (r *HackathonRepository) AddMentor(ctx context.Context, hackathonID, mentorID uint) error {
	if err := r.dao.AddMentor(ctx, hackathonID, mentorID); err != nil {
		return fmt.Errorf("r.dao.AddMentor -> %w", err)
	}

	return nil
}

func (r *HackathonRepository) RemoveMentor(ctx context.Context, hackathonID, mentorID uint) error {
	if err := r.dao.RemoveMentor(ctx, hackathonID, mentorID); err != nil {
		return fmt.Errorf("r.dao.RemoveMentor -> %w", err)
	}

	return nil
}

func (r *HackathonRepository) CreateTeam(ctx context.Context, team domain.Team) (domain.Team, error) {
	created, err := r.dao.InsertTeam(ctx, dao.Team{
		Name:        team.Name,
		HackathonID: team.Hackathon.ID,
		CreatorID:   team.CreatorID,
	})
	if err != nil {
		return domain.Team{}, fmt.Errorf("r.dao.InsertTeam -> %w", err)
	}

	result := *r.teamDaoToDomain(created)
	result.Hackathon = team.Hackathon
	result.Creator = team.Creator
	result.Members = team.Members

	return result, nil
}

func (r *HackathonRepository) GetTeam(ctx context.Context, id uint) (*domain.Team, error) {
	found, err := r.dao.FindTeamByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTeamByID -> %w", err)
	}

	team := r.teamDaoToDomain(found)
	r.wireMembers(team, found.Members)

	return team, nil
}

func (r *HackathonRepository) FindTeamsByHackathonID(ctx context.Context, hackathonID uint) ([]domain.Team, error) {
	found, err := r.dao.FindTeamsByHackathonID(ctx, hackathonID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindTeamsByHackathonID -> %w", err)
	}

	teams := make([]domain.Team, 0, len(found))
	for _, t := range found {
		team := r.teamDaoToDomain(t)
		r.wireMembers(team, t.Members)
		teams = append(teams, *team)
	}

	return teams, nil
}

// SetUserTeam persists a membership change. Leave-and-join is a single
// column update, so a user can never be observed teamless in between.
func (r *HackathonRepository) SetUserTeam(ctx context.Context, userID uint, teamID *uint) error {
	if err := r.userDAO.SetTeam(ctx, userID, teamID); err != nil {
		return fmt.Errorf("r.userDAO.SetTeam -> %w", err)
	}

	return nil
}

func (r *HackathonRepository) SaveTeamProject(ctx context.Context, team *domain.Team) error {
	if team.Project == nil {
		return nil
	}

	err := r.dao.UpdateTeamProject(ctx, team.ID, team.Project.Name, team.Project.Description, team.Project.RepositoryURL)
	if err != nil {
		return fmt.Errorf("r.dao.UpdateTeamProject -> %w", err)
	}

	return nil
}

func (r *HackathonRepository) SaveTeamEvaluation(ctx context.Context, team *domain.Team) error {
	var (
		score    *float64
		feedback string
	)
	if team.Evaluation != nil {
		s := team.Evaluation.Score
		score = &s
		feedback = team.Evaluation.Feedback
	}

	if err := r.dao.UpdateTeamEvaluation(ctx, team.ID, score, feedback); err != nil {
		return fmt.Errorf("r.dao.UpdateTeamEvaluation -> %w", err)
	}

	return nil
}

func (r *HackathonRepository) DeleteTeam(ctx context.Context, teamID uint) error {
	if err := r.dao.DeleteTeam(ctx, teamID); err != nil {
		return fmt.Errorf("r.dao.DeleteTeam -> %w", err)
	}

	return nil
}

func (r *HackathonRepository) buildAggregate(h dao.Hackathon) *domain.Hackathon {
	hackathon := r.daoToDomainShallow(h)

	organizer := userDaoToDomain(h.Organizer)
	hackathon.Organizer = &organizer
	if h.Judge != nil {
		judge := userDaoToDomain(*h.Judge)
		hackathon.Judge = &judge
	}

	for _, m := range h.Mentors {
		mentor := userDaoToDomain(m)
		hackathon.Mentors = append(hackathon.Mentors, &mentor)
	}

	for _, t := range h.Teams {
		team := r.teamDaoToDomain(t)
		team.Hackathon = hackathon
		r.wireMembers(team, t.Members)
		hackathon.Teams = append(hackathon.Teams, team)
	}

	return hackathon
}

// wireMembers attaches member users to the team with both directions of the
// reference set, and resolves the creator pointer into the member set.
func (r *HackathonRepository) wireMembers(team *domain.Team, members []dao.User) {
	for _, m := range members {
		member := userDaoToDomain(m)
		member.Team = team
		member.TeamID = &team.ID
		team.Members = append(team.Members, &member)

		if member.ID == team.CreatorID {
			team.Creator = team.Members[len(team.Members)-1]
		}
	}
}

func (r *HackathonRepository) daoToDomainShallow(h dao.Hackathon) *domain.Hackathon {
	return &domain.Hackathon{
		ID:                   h.ID,
		Name:                 h.Name,
		Description:          h.Description,
		Rules:                h.Rules,
		RegistrationDeadline: h.RegistrationDeadline,
		StartDate:            h.StartDate,
		EndDate:              h.EndDate,
		Status:               domain.Status(h.Status),
		MaxTeamSize:          h.MaxTeamSize,
		OrganizerID:          h.OrganizerID,
		WinnerTeamID:         h.WinnerTeamID,
		PrizePoolCents:       h.PrizePoolCents,
		PrizeCurrency:        h.PrizeCurrency,
		CreatedAt:            h.CreatedAt,
		UpdatedAt:            h.UpdatedAt,
	}
}

func (r *HackathonRepository) daosToDomainShallow(hackathons []dao.Hackathon) []domain.Hackathon {
	result := make([]domain.Hackathon, 0, len(hackathons))
	for _, h := range hackathons {
		result = append(result, *r.daoToDomainShallow(h))
	}
	return result
}

func (r *HackathonRepository) teamDaoToDomain(t dao.Team) *domain.Team {
	team := &domain.Team{
		ID:          t.ID,
		Name:        t.Name,
		HackathonID: t.HackathonID,
		CreatorID:   t.CreatorID,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	if t.ProjectName != "" {
		team.Project = &domain.Project{
			Name:          t.ProjectName,
			Description:   t.ProjectDescription,
			RepositoryURL: t.RepositoryURL,
		}
	}

	if t.Score != nil {
		team.Evaluation = &domain.Evaluation{
			Score:    *t.Score,
			Feedback: t.JudgeFeedback,
		}
	}

	return team
}

func userDaoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Password:  u.Password,
		Role:      domain.Role(u.Role),
		TeamID:    u.TeamID,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

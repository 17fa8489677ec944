package service

import (
	"context"
	"time"

	"github.com/hackhub/hackhub-api/internal/domain"
	"github.com/hackhub/hackhub-api/internal/event"
	"github.com/hackhub/hackhub-api/internal/gateway"
	"github.com/hackhub/hackhub-api/internal/repository"
)

type setTeamCall struct {
	userID uint
	teamID *uint
}

// fakeRepo is an in-memory stand-in for the hackathon, team and user
// repositories. Aggregates are wired the same way the real repository wires
// them, with member and creator back-references in place.
type fakeRepo struct {
	hackathons map[uint]*domain.Hackathon
	users      map[uint]*domain.User

	setTeamCalls       []setTeamCall
	savedProjects      []uint
	savedEvaluations   []uint
	deletedTeams       []uint
	saveLifecycleCalls int
	nextTeamID         uint
	nextHackathonID    uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		hackathons: make(map[uint]*domain.Hackathon),
		users:      make(map[uint]*domain.User),
	}
}

func (f *fakeRepo) addUser(id uint, username string, role domain.Role) *domain.User {
	u := &domain.User{
		ID:       id,
		Email:    username + "@example.com",
		Username: username,
		Role:     role,
	}
	f.users[id] = u
	return u
}

func (f *fakeRepo) addHackathon(id uint, status domain.Status, maxTeamSize int) *domain.Hackathon {
	now := time.Now()
	h := &domain.Hackathon{
		ID:                   id,
		Name:                 "HackWeek",
		Status:               status,
		MaxTeamSize:          maxTeamSize,
		RegistrationDeadline: now.Add(24 * time.Hour),
		StartDate:            now.Add(-time.Hour),
		EndDate:              now.Add(48 * time.Hour),
	}
	f.hackathons[id] = h
	return h
}

func (f *fakeRepo) addTeam(h *domain.Hackathon, id uint, name string, creator *domain.User, members ...*domain.User) *domain.Team {
	team := &domain.Team{
		ID:          id,
		Name:        name,
		Hackathon:   h,
		HackathonID: h.ID,
		Creator:     creator,
		CreatorID:   creator.ID,
	}
	for _, m := range append([]*domain.User{creator}, members...) {
		m.Team = team
		m.TeamID = &team.ID
		team.Members = append(team.Members, m)
	}
	h.Teams = append(h.Teams, team)
	return team
}

func (f *fakeRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return *u, nil
}

func (f *fakeRepo) GetAggregate(_ context.Context, id uint) (*domain.Hackathon, error) {
	h, ok := f.hackathons[id]
	if !ok {
		return nil, repository.ErrHackathonNotFound
	}
	return h, nil
}

func (f *fakeRepo) CreateTeam(_ context.Context, team domain.Team) (domain.Team, error) {
	f.nextTeamID++
	team.ID = f.nextTeamID
	return team, nil
}

func (f *fakeRepo) GetTeam(_ context.Context, id uint) (*domain.Team, error) {
	for _, h := range f.hackathons {
		if team := h.TeamByID(id); team != nil {
			return team, nil
		}
	}
	return nil, repository.ErrTeamNotFound
}

func (f *fakeRepo) FindTeamsByHackathonID(_ context.Context, hackathonID uint) ([]domain.Team, error) {
	h, ok := f.hackathons[hackathonID]
	if !ok {
		return nil, repository.ErrHackathonNotFound
	}
	teams := make([]domain.Team, 0, len(h.Teams))
	for _, t := range h.Teams {
		teams = append(teams, *t)
	}
	return teams, nil
}

func (f *fakeRepo) SetUserTeam(_ context.Context, userID uint, teamID *uint) error {
	f.setTeamCalls = append(f.setTeamCalls, setTeamCall{userID: userID, teamID: teamID})
	if u, ok := f.users[userID]; ok {
		u.TeamID = teamID
	}
	return nil
}

func (f *fakeRepo) SaveTeamProject(_ context.Context, team *domain.Team) error {
	f.savedProjects = append(f.savedProjects, team.ID)
	return nil
}

func (f *fakeRepo) SaveTeamEvaluation(_ context.Context, team *domain.Team) error {
	f.savedEvaluations = append(f.savedEvaluations, team.ID)
	return nil
}

func (f *fakeRepo) DeleteTeam(_ context.Context, teamID uint) error {
	f.deletedTeams = append(f.deletedTeams, teamID)
	return nil
}

func (f *fakeRepo) Create(_ context.Context, hackathon domain.Hackathon) (domain.Hackathon, error) {
	f.nextHackathonID++
	hackathon.ID = f.nextHackathonID
	f.hackathons[hackathon.ID] = &hackathon
	return hackathon, nil
}

func (f *fakeRepo) FindAll(_ context.Context) ([]domain.Hackathon, error) {
	all := make([]domain.Hackathon, 0, len(f.hackathons))
	for _, h := range f.hackathons {
		all = append(all, *h)
	}
	return all, nil
}

func (f *fakeRepo) FindByStatus(_ context.Context, status domain.Status) ([]domain.Hackathon, error) {
	var found []domain.Hackathon
	for _, h := range f.hackathons {
		if h.Status == status {
			found = append(found, *h)
		}
	}
	return found, nil
}

func (f *fakeRepo) FindByOrganizerID(_ context.Context, organizerID uint) ([]domain.Hackathon, error) {
	var found []domain.Hackathon
	for _, h := range f.hackathons {
		if h.OrganizerID == organizerID {
			found = append(found, *h)
		}
	}
	return found, nil
}

func (f *fakeRepo) SaveLifecycle(_ context.Context, _ *domain.Hackathon) error {
	f.saveLifecycleCalls++
	return nil
}

func (f *fakeRepo) AddMentor(_ context.Context, hackathonID, mentorID uint) error {
	h, ok := f.hackathons[hackathonID]
	if !ok {
		return repository.ErrHackathonNotFound
	}
	if mentor, ok := f.users[mentorID]; ok {
		h.AddMentor(mentor)
	}
	return nil
}

func (f *fakeRepo) RemoveMentor(_ context.Context, hackathonID, mentorID uint) error {
	h, ok := f.hackathons[hackathonID]
	if !ok {
		return repository.ErrHackathonNotFound
	}
	h.RemoveMentor(mentorID)
	return nil
}

// recordingListener captures the events a service emits.
type recordingListener struct {
	statusChanges   []string
	judgeAssigned   int
	winnersDeclared []uint
}

func (l *recordingListener) OnStatusChange(_ context.Context, _ *domain.Hackathon, oldStatus, newStatus domain.Status) {
	l.statusChanges = append(l.statusChanges, string(oldStatus)+">"+string(newStatus))
}

func (l *recordingListener) OnJudgeAssigned(_ context.Context, _ *domain.Hackathon) {
	l.judgeAssigned++
}

func (l *recordingListener) OnWinnerDeclared(_ context.Context, _ *domain.Hackathon, winnerTeamID uint) {
	l.winnersDeclared = append(l.winnersDeclared, winnerTeamID)
}

// recordingPayment captures prize payouts and can be told to fail.
type recordingPayment struct {
	payments []gateway.Transaction
	err      error
}

func (p *recordingPayment) ProcessPrizePayment(_ context.Context, amountCents int64, currency, recipientName, recipientEmail, description string) (gateway.Transaction, error) {
	if p.err != nil {
		return gateway.Transaction{}, p.err
	}
	tx := gateway.Transaction{
		ID:             "tx_test",
		AmountCents:    amountCents,
		Currency:       currency,
		RecipientName:  recipientName,
		RecipientEmail: recipientEmail,
		Description:    description,
		Status:         gateway.PaymentCompleted,
	}
	p.payments = append(p.payments, tx)
	return tx, nil
}

func (p *recordingPayment) TransactionStatus(_ context.Context, _ string) (gateway.Transaction, error) {
	return gateway.Transaction{}, gateway.ErrTransactionNotFound
}

func (p *recordingPayment) RefundPayment(_ context.Context, _, _ string) (gateway.Transaction, error) {
	return gateway.Transaction{}, gateway.ErrTransactionNotFound
}

func newTestHackathonService(repo *fakeRepo, listener *recordingListener, payment gateway.Payment) *HackathonService {
	if payment == nil {
		payment = gateway.NewMockPayment(0)
	}
	bus := event.NewBus()
	if listener != nil {
		bus.Register(listener)
	}
	facade := gateway.NewFacade(gateway.NewMockCalendar(0), payment)

	return NewHackathonService(repo, repo, bus, facade, NewLockRegistry())
}

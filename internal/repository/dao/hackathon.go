package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrHackathonNotFound = errors.New("hackathon not found")
	ErrTeamNotFound      = errors.New("team not found")
)

type Hackathon struct {
	ID uint `gorm:"primaryKey"`

	Name        string `gorm:"not null"`
	Description string
	Rules       string

	RegistrationDeadline time.Time `gorm:"not null"`
	StartDate            time.Time `gorm:"not null"`
	EndDate              time.Time `gorm:"not null"`

	Status      string `gorm:"not null"`
	MaxTeamSize int    `gorm:"not null"`

	OrganizerID uint `gorm:"not null"`
	Organizer   User `gorm:"foreignKey:OrganizerID"`
	JudgeID     *uint
	Judge       *User  `gorm:"foreignKey:JudgeID"`
	Mentors     []User `gorm:"many2many:hackathon_mentors;"`
	Teams       []Team `gorm:"foreignKey:HackathonID"`

	WinnerTeamID   *uint
	PrizePoolCents int64  `gorm:"default:0"`
	PrizeCurrency  string `gorm:"default:'EUR'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Team struct {
	ID uint `gorm:"primaryKey"`

	Name string `gorm:"not null"`

	ProjectName        string
	ProjectDescription string
	RepositoryURL      string

	Score         *float64
	JudgeFeedback string

	HackathonID uint `gorm:"not null;index"`
	CreatorID   uint `gorm:"not null"`

	Members []User `gorm:"foreignKey:TeamID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type HackathonDAO struct {
	db *gorm.DB
}

func NewHackathonDAO(db *gorm.DB) *HackathonDAO {
	return &HackathonDAO{
		db: db,
	}
}

func (d *HackathonDAO) Insert(ctx context.Context, hackathon Hackathon) (Hackathon, error) {
	result := d.db.WithContext(ctx).Create(&hackathon)
	if result.Error != nil {
		return Hackathon{}, result.Error
	}

	return hackathon, nil
}

// FindByID loads the whole aggregate: organizer, judge, mentors and the teams
// with their members. Teams come back ordered by ID, which is creation order;
// the winner scan depends on that order.
func (d *HackathonDAO) FindByID(ctx context.Context, id uint) (Hackathon, error) {
	var hackathon Hackathon

	result := d.db.WithContext(ctx).
		Preload("Organizer").
		Preload("Judge").
		Preload("Mentors", func(db *gorm.DB) *gorm.DB {
			return db.Order("users.id")
		}).
		Preload("Teams", func(db *gorm.DB) *gorm.DB {
			return db.Order("teams.id")
		}).
		Preload("Teams.Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("users.id")
		}).
		First(&hackathon, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Hackathon{}, ErrHackathonNotFound
		}

		return Hackathon{}, result.Error
	}

	return hackathon, nil
}

func (d *HackathonDAO) FindAll(ctx context.Context) ([]Hackathon, error) {
	var hackathons []Hackathon

	result := d.db.WithContext(ctx).Order("id").Find(&hackathons)
	if result.Error != nil {
		return nil, result.Error
	}

	return hackathons, nil
}

func (d *HackathonDAO) FindByStatus(ctx context.Context, status string) ([]Hackathon, error) {
	var hackathons []Hackathon

	result := d.db.WithContext(ctx).Where("status = ?", status).Order("id").Find(&hackathons)
	if result.Error != nil {
		return nil, result.Error
	}

	return hackathons, nil
}

func (d *HackathonDAO) FindByOrganizerID(ctx context.Context, organizerID uint) ([]Hackathon, error) {
	var hackathons []Hackathon

	result := d.db.WithContext(ctx).Where("organizer_id = ?", organizerID).Order("id").Find(&hackathons)
	if result.Error != nil {
		return nil, result.Error
	}

	return hackathons, nil
}

// UpdateLifecycleFields persists the mutable lifecycle columns only; the
// aggregate's associations are maintained through their own operations.
func (d *HackathonDAO) UpdateLifecycleFields(ctx context.Context, hackathon Hackathon) error {
	result := d.db.WithContext(ctx).Model(&Hackathon{}).
		Where("id = ?", hackathon.ID).
		Updates(map[string]interface{}{
			"status":         hackathon.Status,
			"judge_id":       hackathon.JudgeID,
			"winner_team_id": hackathon.WinnerTeamID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHackathonNotFound
	}

	return nil
}

func (d *HackathonDAO) AddMentor(ctx context.Context, hackathonID, mentorID uint) error {
	hackathon := Hackathon{ID: hackathonID}
	mentor := User{ID: mentorID}

	return d.db.WithContext(ctx).Model(&hackathon).Association("Mentors").Append(&mentor)
}

func (d *HackathonDAO) RemoveMentor(ctx context.Context, hackathonID, mentorID uint) error {
	hackathon := Hackathon{ID: hackathonID}
	mentor := User{ID: mentorID}

	return d.db.WithContext(ctx).Model(&hackathon).Association("Mentors").Delete(&mentor)
}

// InsertTeam creates the team row and moves the creator into it in one
// transaction, so no one observes a team without its creator.
func (d *HackathonDAO) InsertTeam(ctx context.Context, team Team) (Team, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&team).Error; err != nil {
			return err
		}

		return tx.Model(&User{}).Where("id = ?", team.CreatorID).Update("team_id", team.ID).Error
	})
	if err != nil {
		return Team{}, err
	}

	return team, nil
}

func (d *HackathonDAO) FindTeamByID(ctx context.Context, id uint) (Team, error) {
	var team Team

	result := d.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("users.id")
		}).
		First(&team, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Team{}, ErrTeamNotFound
		}

		return Team{}, result.Error
	}

	return team, nil
}

func (d *HackathonDAO) FindTeamsByHackathonID(ctx context.Context, hackathonID uint) ([]Team, error) {
	var teams []Team

	result := d.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("users.id")
		}).
		Where("hackathon_id = ?", hackathonID).
		Order("id").
		Find(&teams)
	if result.Error != nil {
		return nil, result.Error
	}

	return teams, nil
}

func (d *HackathonDAO) UpdateTeamProject(ctx context.Context, teamID uint, name, description, repositoryURL string) error {
	result := d.db.WithContext(ctx).Model(&Team{}).
		Where("id = ?", teamID).
		Updates(map[string]interface{}{
			"project_name":        name,
			"project_description": description,
			"repository_url":      repositoryURL,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeamNotFound
	}

	return nil
}

func (d *HackathonDAO) UpdateTeamEvaluation(ctx context.Context, teamID uint, score *float64, feedback string) error {
	result := d.db.WithContext(ctx).Model(&Team{}).
		Where("id = ?", teamID).
		Updates(map[string]interface{}{
			"score":          score,
			"judge_feedback": feedback,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeamNotFound
	}

	return nil
}

// DeleteTeam releases every member and removes the team in one transaction.
func (d *HackathonDAO) DeleteTeam(ctx context.Context, teamID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&User{}).Where("team_id = ?", teamID).Update("team_id", nil).Error; err != nil {
			return err
		}

		result := tx.Delete(&Team{}, teamID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTeamNotFound
		}

		return nil
	})
}

package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrSupportRequestNotFound = errors.New("support request not found")
	ErrNotificationNotFound   = errors.New("notification not found")
)

type SupportRequest struct {
	ID uint `gorm:"primaryKey"`

	Title       string `gorm:"not null"`
	Description string
	Status      string `gorm:"not null"`

	TeamID   uint `gorm:"not null;index"`
	MentorID *uint

	CalendarEventID string
	ScheduledAt     *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Notification struct {
	ID uint `gorm:"primaryKey"`

	UserID  uint   `gorm:"not null;index"`
	Kind    string `gorm:"not null"`
	Message string `gorm:"not null"`

	CreatedAt time.Time
	ReadAt    *time.Time
}

type SupportDAO struct {
	db *gorm.DB
}

func NewSupportDAO(db *gorm.DB) *SupportDAO {
	return &SupportDAO{
		db: db,
	}
}

func (d *SupportDAO) Insert(ctx context.Context, request SupportRequest) (SupportRequest, error) {
	result := d.db.WithContext(ctx).Create(&request)
	if result.Error != nil {
		return SupportRequest{}, result.Error
	}

	return request, nil
}

func (d *SupportDAO) FindByID(ctx context.Context, id uint) (SupportRequest, error) {
	var request SupportRequest

	result := d.db.WithContext(ctx).First(&request, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return SupportRequest{}, ErrSupportRequestNotFound
		}

		return SupportRequest{}, result.Error
	}

	return request, nil
}

func (d *SupportDAO) Update(ctx context.Context, request SupportRequest) (SupportRequest, error) {
	result := d.db.WithContext(ctx).Save(&request)
	if result.Error != nil {
		return SupportRequest{}, result.Error
	}

	return request, nil
}

func (d *SupportDAO) FindByMentorID(ctx context.Context, mentorID uint) ([]SupportRequest, error) {
	var requests []SupportRequest

	result := d.db.WithContext(ctx).Where("mentor_id = ?", mentorID).Order("id").Find(&requests)
	if result.Error != nil {
		return nil, result.Error
	}

	return requests, nil
}

func (d *SupportDAO) FindByTeamID(ctx context.Context, teamID uint) ([]SupportRequest, error) {
	var requests []SupportRequest

	result := d.db.WithContext(ctx).Where("team_id = ?", teamID).Order("id").Find(&requests)
	if result.Error != nil {
		return nil, result.Error
	}

	return requests, nil
}

func (d *SupportDAO) FindByStatus(ctx context.Context, status string) ([]SupportRequest, error) {
	var requests []SupportRequest

	result := d.db.WithContext(ctx).Where("status = ?", status).Order("id").Find(&requests)
	if result.Error != nil {
		return nil, result.Error
	}

	return requests, nil
}

func (d *SupportDAO) InsertNotification(ctx context.Context, notification Notification) (Notification, error) {
	result := d.db.WithContext(ctx).Create(&notification)
	if result.Error != nil {
		return Notification{}, result.Error
	}

	return notification, nil
}

func (d *SupportDAO) FindNotificationsByUserID(ctx context.Context, userID uint) ([]Notification, error) {
	var notifications []Notification

	result := d.db.WithContext(ctx).Where("user_id = ?", userID).Order("id desc").Find(&notifications)
	if result.Error != nil {
		return nil, result.Error
	}

	return notifications, nil
}

func (d *SupportDAO) MarkNotificationRead(ctx context.Context, id, userID uint) error {
	now := time.Now()

	result := d.db.WithContext(ctx).Model(&Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read_at", &now)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

package repository

import (
	"context"
	"fmt"

	"github.com/hackhub/hackhub-api/internal/domain"
	"github.com/hackhub/hackhub-api/internal/repository/dao"
)

var (
	ErrSupportRequestNotFound = dao.ErrSupportRequestNotFound
	ErrNotificationNotFound   = dao.ErrNotificationNotFound
)

type SupportDAO interface {
	Insert(ctx context.Context, request dao.SupportRequest) (dao.SupportRequest, error)
	FindByID(ctx context.Context, id uint) (dao.SupportRequest, error)
	Update(ctx context.Context, request dao.SupportRequest) (dao.SupportRequest, error)
	FindByMentorID(ctx context.Context, mentorID uint) ([]dao.SupportRequest, error)
	FindByTeamID(ctx context.Context, teamID uint) ([]dao.SupportRequest, error)
	FindByStatus(ctx context.Context, status string) ([]dao.SupportRequest, error)
	InsertNotification(ctx context.Context, notification dao.Notification) (dao.Notification, error)
	FindNotificationsByUserID(ctx context.Context, userID uint) ([]dao.Notification, error)
	MarkNotificationRead(ctx context.Context, id, userID uint) error
}

type SupportRepository struct {
	dao SupportDAO
}

func NewSupportRepository(dao SupportDAO) *SupportRepository {
	return &SupportRepository{
		dao: dao,
	}
}

func (r *SupportRepository) Create(ctx context.Context, request domain.SupportRequest) (domain.SupportRequest, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(request))
	if err != nil {
		return domain.SupportRequest{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *SupportRepository) FindByID(ctx context.Context, id uint) (domain.SupportRequest, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.SupportRequest{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SupportRepository) Update(ctx context.Context, request domain.SupportRequest) (domain.SupportRequest, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(request))
	if err != nil {
		return domain.SupportRequest{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *SupportRepository) FindByMentorID(ctx context.Context, mentorID uint) ([]domain.SupportRequest, error) {
	found, err := r.dao.FindByMentorID(ctx, mentorID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByMentorID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *SupportRepository) FindByTeamID(ctx context.Context, teamID uint) ([]domain.SupportRequest, error) {
	found, err := r.dao.FindByTeamID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByTeamID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *SupportRepository) FindPending(ctx context.Context) ([]domain.SupportRequest, error) {
	found, err := r.dao.FindByStatus(ctx, string(domain.SupportPending))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByStatus -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *SupportRepository) CreateNotification(ctx context.Context, notification domain.Notification) (domain.Notification, error) {
	created, err := r.dao.InsertNotification(ctx, dao.Notification{
		UserID:  notification.UserID,
		Kind:    string(notification.Kind),
		Message: notification.Message,
	})
	if err != nil {
		return domain.Notification{}, fmt.Errorf("r.dao.InsertNotification -> %w", err)
	}

	return r.notificationDaoToDomain(created), nil
}

func (r *SupportRepository) FindNotificationsByUserID(ctx context.Context, userID uint) ([]domain.Notification, error) {
	found, err := r.dao.FindNotificationsByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindNotificationsByUserID -> %w", err)
	}

	notifications := make([]domain.Notification, 0, len(found))
	for _, n := range found {
		notifications = append(notifications, r.notificationDaoToDomain(n))
	}

	return notifications, nil
}

func (r *SupportRepository) MarkNotificationRead(ctx context.Context, id, userID uint) error {
	if err := r.dao.MarkNotificationRead(ctx, id, userID); err != nil {
		return fmt.Errorf("r.dao.MarkNotificationRead -> %w", err)
	}

	return nil
}

func (r *SupportRepository) domainToDao(request domain.SupportRequest) dao.SupportRequest {
	return dao.SupportRequest{
		ID:              request.ID,
		Title:           request.Title,
		Description:     request.Description,
		Status:          string(request.Status),
		TeamID:          request.TeamID,
		MentorID:        request.MentorID,
		CalendarEventID: request.CalendarEventID,
		ScheduledAt:     request.ScheduledAt,
		CreatedAt:       request.CreatedAt,
		UpdatedAt:       request.UpdatedAt,
	}
}

func (r *SupportRepository) daoToDomain(request dao.SupportRequest) domain.SupportRequest {
	return domain.SupportRequest{
		ID:              request.ID,
		Title:           request.Title,
		Description:     request.Description,
		Status:          domain.SupportRequestStatus(request.Status),
		TeamID:          request.TeamID,
		MentorID:        request.MentorID,
		CalendarEventID: request.CalendarEventID,
		ScheduledAt:     request.ScheduledAt,
		CreatedAt:       request.CreatedAt,
		UpdatedAt:       request.UpdatedAt,
	}
}

func (r *SupportRepository) daosToDomain(requests []dao.SupportRequest) []domain.SupportRequest {
	result := make([]domain.SupportRequest, 0, len(requests))
	for _, req := range requests {
		result = append(result, r.daoToDomain(req))
	}
	return result
}

func (r *SupportRepository) notificationDaoToDomain(n dao.Notification) domain.Notification {
	return domain.Notification{
		ID:        n.ID,
		UserID:    n.UserID,
		Kind:      domain.NotificationKind(n.Kind),
		Message:   n.Message,
		CreatedAt: n.CreatedAt,
		ReadAt:    n.ReadAt,
	}
}

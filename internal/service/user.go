package service

import (
	"context"
	"fmt"

	"github.com/hackhub/hackhub-api/internal/domain"
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id uint, role domain.Role) (domain.User, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return user, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return users, nil
}

func (s *UserService) ListUsersByRole(ctx context.Context, role domain.Role) ([]domain.User, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}

	users, err := s.repo.FindByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByRole -> %w", err)
	}

	return users, nil
}

func (s *UserService) UpdateRole(ctx context.Context, id uint, role domain.Role) (domain.User, error) {
	if !role.IsValid() {
		return domain.User{}, ErrInvalidRole
	}

	user, err := s.repo.UpdateRole(ctx, id, role)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.UpdateRole -> %w", err)
	}

	return user, nil
}

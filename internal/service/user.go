package service

import (
	"context"
	"fmt"

	"github.com/hackboard/hackboard-api/internal/domain"
)

const RoleJudge = "judge"

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	ListByRole(ctx context.Context, role string) ([]domain.User, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

func (s *UserService) ListJudges(ctx context.Context) ([]domain.User, error) {
	judges, err := s.repo.ListByRole(ctx, RoleJudge)
	if err != nil {
		return nil, fmt.Errorf("s.repo.ListByRole -> %w", err)
	}

	return judges, nil
}

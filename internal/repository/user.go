package repository

import (
	"context"
	"fmt"

	"github.com/hackboard/hackboard-api/internal/domain"
	"github.com/hackboard/hackboard-api/internal/repository/dao"
)

var (
	ErrUserNotFound    = dao.ErrUserNotFound
	ErrUserEmailExists = dao.ErrUserEmailExists
)

type UserStore interface {
	InsertUser(ctx context.Context, user dao.User) (dao.User, error)
	FindUserByEmail(ctx context.Context, email string) (dao.User, error)
	ListUsersByRole(ctx context.Context, role string) ([]dao.User, error)
}

type UserRepository struct {
	store UserStore
}

func NewUserRepository(store UserStore) *UserRepository {
	return &UserRepository{
		store: store,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.User, error) {
	created, err := r.store.InsertUser(ctx, dao.User{
		ID:        user.ID,
		Email:     user.Email,
		Password:  user.Password,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	})
	if err != nil {
		return domain.User{}, err
	}

	return r.daoToDomain(created), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.store.FindUserByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role string) ([]domain.User, error) {
	found, err := r.store.ListUsersByRole(ctx, role)
	if err != nil {
		return nil, fmt.Errorf("r.store.ListUsersByRole -> %w", err)
	}

	users := make([]domain.User, len(found))
	for i, user := range found {
		users[i] = r.daoToDomain(user)
	}

	return users, nil
}

func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	return domain.User{
		ID:        u.ID,
		Email:     u.Email,
		Password:  u.Password,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sewakita/sewakita-backend/pkg/config"
	"github.com/sewakita/sewakita-backend/pkg/db"
	"github.com/sewakita/sewakita-backend/pkg/db/models"
	"github.com/sewakita/sewakita-backend/pkg/enums"
	apperrors "github.com/sewakita/sewakita-backend/pkg/errors"
	"github.com/sewakita/sewakita-backend/pkg/pagination"
	"github.com/sewakita/sewakita-backend/pkg/security"
)

// CreateUserInput holds the validated payload for an admin-created account.
type CreateUserInput struct {
	Name              string
	Email             string
	Password          string
	Role              enums.Role
	IsVerifiedByAdmin bool
}

// UpdateUserInput holds optional mutation values for an account.
type UpdateUserInput struct {
	Name              *string
	Email             *string
	Password          *string
	Role              *enums.Role
	IsVerifiedByAdmin *bool
}

// UserListResult pairs a page of users with the total row count.
type UserListResult struct {
	Users []UserDTO
	Total int64
}

// Service exposes account operations for the profile and admin surfaces.
type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*UserDTO, error)
	List(ctx context.Context, filter ListFilter) (*UserListResult, pagination.Page, error)
	Create(ctx context.Context, input CreateUserInput) (*UserDTO, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*UserDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo        Repository
	passwordCfg config.PasswordConfig
}

// NewService constructs a users service bound to the provided repository.
func NewService(repo Repository, passwordCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository is required")
	}
	return &service{repo: repo, passwordCfg: passwordCfg}, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*UserDTO, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "user not found")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "load user")
	}
	return FromModel(user), nil
}

func (s *service) List(ctx context.Context, filter ListFilter) (*UserListResult, pagination.Page, error) {
	filter.Pagination = pagination.Normalize(filter.Pagination)
	if filter.Role != nil && !filter.Role.IsValid() {
		return nil, pagination.Page{}, apperrors.New(apperrors.CodeValidation, "invalid role")
	}
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, pagination.Page{}, apperrors.Wrap(apperrors.CodeInternal, err, "list users")
	}
	return &UserListResult{Users: FromModels(rows), Total: total}, pagination.NewPage(filter.Pagination, total), nil
}

func (s *service) Create(ctx context.Context, input CreateUserInput) (*UserDTO, error) {
	if !input.Role.IsValid() {
		return nil, apperrors.New(apperrors.CodeValidation, "invalid role")
	}

	hash, err := security.HashPassword(input.Password, s.passwordCfg)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "hash password")
	}

	user := &models.User{
		ID:                uuid.New(),
		Name:              strings.TrimSpace(input.Name),
		Email:             strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash:      hash,
		Role:              input.Role,
		IsVerifiedByAdmin: input.IsVerifiedByAdmin,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, apperrors.New(apperrors.CodeConflict, "email already registered")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "create user")
	}
	return FromModel(created), nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*UserDTO, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "user not found")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "load user")
	}

	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, apperrors.New(apperrors.CodeValidation, "invalid role")
		}
		user.Role = *input.Role
	}
	if input.IsVerifiedByAdmin != nil {
		user.IsVerifiedByAdmin = *input.IsVerifiedByAdmin
	}
	if input.Password != nil {
		hash, err := security.HashPassword(*input.Password, s.passwordCfg)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeInternal, err, "hash password")
		}
		user.PasswordHash = hash
	}

	updated, err := s.repo.Update(ctx, user)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, apperrors.New(apperrors.CodeConflict, "email already registered")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "update user")
	}
	return FromModel(updated), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.CodeNotFound, "user not found")
		}
		return apperrors.Wrap(apperrors.CodeInternal, err, "delete user")
	}
	return nil
}

package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/kunalkt5656/Taskflow/internal/auth"
	dto "github.com/kunalkt5656/Taskflow/internal/data_models"
	apperrors "github.com/kunalkt5656/Taskflow/internal/errors"
	model "github.com/kunalkt5656/Taskflow/internal/models"
	repository "github.com/kunalkt5656/Taskflow/internal/repositories"
	"github.com/kunalkt5656/Taskflow/pkg/constants"
)

type AuthService struct {
	users  *repository.UserRepository
	tokens *auth.TokenManager
}

func NewAuthService(users *repository.UserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (*model.User, string, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, "", apperrors.ErrEmailTaken
	} else if !errors.Is(err, apperrors.ErrUserNotFound) {
		return nil, "", err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, "", err
	}

	user := &model.User{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Email:           req.Email,
		PasswordHash:    hash,
		Role:            constants.RoleMember,
		ProfileImageURL: req.ProfileImageURL,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login deliberately collapses unknown-email and wrong-password into the
// same generic error so the response cannot be used to probe accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate resolves a bearer token to a live user. A valid signature is
// not enough: the subject must still exist.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*model.User, error) {
	userID, err := s.tokens.Parse(token)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	return s.users.FindByID(ctx, userID)
}

// UpdateProfile applies the provided fields and issues a fresh token, since
// a changed profile may be the caller's only copy of their credentials.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*model.User, string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	}
	if req.Email != nil && *req.Email != "" {
		if existing, err := s.users.FindByEmail(ctx, *req.Email); err == nil && existing.ID != user.ID {
			return nil, "", apperrors.ErrEmailTaken
		}
		user.Email = *req.Email
	}
	if req.ProfileImageURL != nil {
		user.ProfileImageURL = *req.ProfileImageURL
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, "", err
		}
		user.PasswordHash = hash
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

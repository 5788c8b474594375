package user

import (
	"context"
	"strings"
	"time"

	userRepo "eventra/database/repository/user"
	"eventra/models"
	"eventra/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const tokenDuration = 72 * time.Hour

// Register creates a new account and returns it with a signed session token.
func (s *DefaultUserService) Register(ctx context.Context, req RegistrationRequest) (*models.User, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, "", ErrEmailTaken
	} else if err != nil && err != userRepo.ErrNotFound {
		return nil, "", err
	}

	if req.Role != models.RoleCustomer && req.Role != models.RoleServiceProvider {
		req.Role = models.RoleCustomer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	u := &models.User{
		ID:           uuid.New().String(),
		Role:         req.Role,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(u.ID, string(u.Role), u.Email, tokenDuration)
	if err != nil {
		return nil, "", err
	}

	s.Logger.Info("user registered", zap.String("userId", u.ID), zap.String("role", string(u.Role)))
	return u, token, nil
}

// Authenticate verifies the credentials and returns the user with a fresh token.
func (s *DefaultUserService) Authenticate(ctx context.Context, email, password string) (*models.User, string, error) {
	u, err := s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if err == userRepo.ErrNotFound {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(u.ID, string(u.Role), u.Email, tokenDuration)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// GetUserByID retrieves a user by its unique ID.
func (s *DefaultUserService) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

// SetFCMToken records the device token push notifications are sent to.
func (s *DefaultUserService) SetFCMToken(ctx context.Context, userID, token string) error {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	u.FCMToken = token
	return s.Repo.Update(ctx, u)
}

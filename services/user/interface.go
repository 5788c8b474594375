package user

import (
	"context"
	"errors"

	userRepo "eventra/database/repository/user"
	"eventra/models"

	"go.uber.org/zap"
)

// ErrInvalidCredentials is returned when email/password authentication fails.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken is returned when registering with an email already in use.
var ErrEmailTaken = errors.New("email is already registered")

// RegistrationRequest carries the fields for a new account.
type RegistrationRequest struct {
	FirstName string          `json:"firstName" binding:"required"`
	LastName  string          `json:"lastName" binding:"required"`
	Email     string          `json:"email" binding:"required,email"`
	Password  string          `json:"password" binding:"required,min=8"`
	Role      models.UserRole `json:"role" binding:"required"`
}

// UserService resolves and manages the accounts on either side of a booking.
type UserService interface {
	Register(ctx context.Context, req RegistrationRequest) (*models.User, string, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, string, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	SetFCMToken(ctx context.Context, userID, token string) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Logger *zap.Logger
}

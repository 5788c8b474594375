package offering

import (
	"context"
	"errors"

	offeringRepo "eventra/database/repository/offering"
	"eventra/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// ErrNotOwner is returned when a provider tries to mutate a service
// published by someone else.
var ErrNotOwner = errors.New("offered service does not belong to this provider")

// CreateOfferingRequest carries the provider-supplied fields for a new service.
type CreateOfferingRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Location    string  `json:"location"`
}

// OfferedServiceService manages the catalogue of bookable services.
type OfferedServiceService interface {
	Create(ctx context.Context, providerID string, req CreateOfferingRequest) (*models.OfferedService, error)
	GetByID(ctx context.Context, id string) (*models.OfferedService, error)
	UpdatePrice(ctx context.Context, providerID, id string, price float64) (*models.OfferedService, error)
	SetAvailability(ctx context.Context, providerID, id string, available bool) error
	ListByProvider(ctx context.Context, providerID string) ([]models.OfferedService, error)
	ListAvailable(ctx context.Context) ([]models.OfferedService, error)
}

// DefaultOfferedServiceService is the production implementation. Reads go
// through a short-lived redis cache; every mutation invalidates the cached
// entry before returning.
type DefaultOfferedServiceService struct {
	Repo   offeringRepo.OfferedServiceRepository
	Cache  *redis.Client
	Logger *zap.Logger
}

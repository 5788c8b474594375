package offeringRepo

import (
	"context"
	"errors"

	"eventra/models"
)

// ErrNotFound is returned when no offered service matches the given id.
var ErrNotFound = errors.New("offered service not found")

// OfferedServiceRepository defines the interface for offered-service data access.
type OfferedServiceRepository interface {
	Create(ctx context.Context, svc *models.OfferedService) error
	GetByID(ctx context.Context, id string) (*models.OfferedService, error)
	Update(ctx context.Context, svc *models.OfferedService) error
	SetAvailability(ctx context.Context, id string, available bool) error
	ListByProvider(ctx context.Context, providerID string) ([]models.OfferedService, error)
	ListAvailable(ctx context.Context) ([]models.OfferedService, error)
}

package offering

import (
	"context"
	"encoding/json"
	"time"

	"eventra/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const cacheTTL = 5 * time.Minute

func cacheKey(id string) string {
	return "offering:" + id
}

// Create publishes a new bookable service for the provider.
func (s *DefaultOfferedServiceService) Create(ctx context.Context, providerID string, req CreateOfferingRequest) (*models.OfferedService, error) {
	svc := &models.OfferedService{
		ID:          uuid.New().String(),
		ProviderID:  providerID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Available:   true,
		Location:    req.Location,
	}
	if err := s.Repo.Create(ctx, svc); err != nil {
		return nil, err
	}

	s.Logger.Info("offered service created",
		zap.String("serviceId", svc.ID),
		zap.String("providerId", providerID),
	)
	return svc, nil
}

// GetByID retrieves a service, serving repeated reads from the cache.
func (s *DefaultOfferedServiceService) GetByID(ctx context.Context, id string) (*models.OfferedService, error) {
	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, cacheKey(id)).Result(); err == nil {
			var svc models.OfferedService
			if err := json.Unmarshal([]byte(data), &svc); err == nil {
				return &svc, nil
			}
		}
	}

	svc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(svc); err == nil {
			s.Cache.Set(ctx, cacheKey(id), data, cacheTTL)
		}
	}
	return svc, nil
}

// UpdatePrice changes the live price of a service. Existing bookings keep
// the price snapshotted at their creation.
func (s *DefaultOfferedServiceService) UpdatePrice(ctx context.Context, providerID, id string, price float64) (*models.OfferedService, error) {
	svc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc.ProviderID != providerID {
		return nil, ErrNotOwner
	}

	svc.Price = price
	if err := s.Repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return svc, nil
}

// SetAvailability toggles whether the service accepts new bookings.
func (s *DefaultOfferedServiceService) SetAvailability(ctx context.Context, providerID, id string, available bool) error {
	svc, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if svc.ProviderID != providerID {
		return ErrNotOwner
	}

	if err := s.Repo.SetAvailability(ctx, id, available); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// ListByProvider retrieves the provider's published services.
func (s *DefaultOfferedServiceService) ListByProvider(ctx context.Context, providerID string) ([]models.OfferedService, error) {
	return s.Repo.ListByProvider(ctx, providerID)
}

// ListAvailable retrieves all currently bookable services.
func (s *DefaultOfferedServiceService) ListAvailable(ctx context.Context) ([]models.OfferedService, error) {
	return s.Repo.ListAvailable(ctx)
}

func (s *DefaultOfferedServiceService) invalidate(ctx context.Context, id string) {
	if s.Cache != nil {
		s.Cache.Del(ctx, cacheKey(id))
	}
}

package offeringRepo

import (
	"context"
	"fmt"
	"time"

	"eventra/database"
	"eventra/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoOfferedServiceRepo implements OfferedServiceRepository using MongoDB.
type MongoOfferedServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoOfferedServiceRepo creates a new instance of OfferedServiceRepository using MongoDB.
func NewMongoOfferedServiceRepo() OfferedServiceRepository {
	coll := database.DB().Collection("offered_services")
	repo := &MongoOfferedServiceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create offered service indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoOfferedServiceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "provider_id", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new offered service document.
func (r *MongoOfferedServiceRepo) Create(ctx context.Context, svc *models.OfferedService) error {
	cctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	if _, err := r.coll.InsertOne(cctx, svc); err != nil {
		return fmt.Errorf("failed to create offered service: %w", err)
	}
	return nil
}

// GetByID retrieves an offered service by its unique ID.
func (r *MongoOfferedServiceRepo) GetByID(ctx context.Context, id string) (*models.OfferedService, error) {
	cctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.OfferedService
	if err := r.coll.FindOne(cctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch offered service %s: %w", id, err)
	}
	return &svc, nil
}

// Update modifies an existing offered service document.
func (r *MongoOfferedServiceRepo) Update(ctx context.Context, svc *models.OfferedService) error {
	cctx, cancel := newContext(5 * time.Second)
	defer cancel()

	svc.UpdatedAt = time.Now()
	result, err := r.coll.UpdateOne(cctx, bson.M{"id": svc.ID}, bson.M{"$set": svc})
	if err != nil {
		return fmt.Errorf("failed to update offered service %s: %w", svc.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetAvailability toggles the availability flag of an offered service.
func (r *MongoOfferedServiceRepo) SetAvailability(ctx context.Context, id string, available bool) error {
	cctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"available": available, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(cctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set availability of offered service %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByProvider retrieves all services published by a provider.
func (r *MongoOfferedServiceRepo) ListByProvider(ctx context.Context, providerID string) ([]models.OfferedService, error) {
	return r.list(bson.M{"provider_id": providerID})
}

// ListAvailable retrieves all currently bookable services.
func (r *MongoOfferedServiceRepo) ListAvailable(ctx context.Context) ([]models.OfferedService, error) {
	return r.list(bson.M{"available": true})
}

func (r *MongoOfferedServiceRepo) list(filter bson.M) ([]models.OfferedService, error) {
	cctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(cctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list offered services: %w", err)
	}
	defer cursor.Close(cctx)

	var services []models.OfferedService
	if err := cursor.All(cctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode offered services: %w", err)
	}
	return services, nil
}

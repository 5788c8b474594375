package referenceRepo

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

// MongoReferenceRepo implements ReferenceRepository using MongoDB. A unique
// index on the code column makes Reserve a single atomic insert; there is no
// separate check-then-insert window.
type MongoReferenceRepo struct {
	coll *mongo.Collection
}

// NewMongoReferenceRepo creates a new instance of ReferenceRepository using MongoDB.
func NewMongoReferenceRepo() ReferenceRepository {
	coll := database.DB().Collection("booking_references")
	repo := &MongoReferenceRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create reference indexes: %v\n", err)
	}
	return repo
}

func (r *MongoReferenceRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "code", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := r.coll.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Reserve inserts the code into the ledger, relying on the unique index to
// reject duplicates.
func (r *MongoReferenceRepo) Reserve(ctx context.Context, code string) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ref := models.BookingReference{Code: code, CreatedAt: time.Now()}
	if _, err := r.coll.InsertOne(cctx, ref); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrCodeTaken
		}
		return fmt.Errorf("failed to reserve booking reference %s: %w", code, err)
	}
	return nil
}

// Exists reports whether the code has already been issued.
func (r *MongoReferenceRepo) Exists(ctx context.Context, code string) (bool, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(cctx, bson.M{"code": code})
	if err != nil {
		return false, fmt.Errorf("failed to check booking reference %s: %w", code, err)
	}
	return count > 0, nil
}

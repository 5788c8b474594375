// File: database/repository/booking/bookingMongoCrud.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"eventra/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	cctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if _, err := r.coll.InsertOne(cctx, booking); err != nil {
		return fmt.Errorf("failed to create booking %s: %w", booking.Reference, err)
	}
	return nil
}

// GetByReference retrieves a booking by its unique reference.
func (r *MongoBookingRepo) GetByReference(ctx context.Context, reference string) (*models.Booking, error) {
	cctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(cctx, bson.M{"booking_reference": reference}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch booking %s: %w", reference, err)
	}
	return &booking, nil
}

// UpdateStatus atomically moves a booking from one status to another. The
// from-state rides in the filter, so a document whose status changed since
// the caller read it simply does not match.
func (r *MongoBookingRepo) UpdateStatus(ctx context.Context, reference string, from, to models.BookingStatus) (*models.Booking, error) {
	cctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"booking_reference": reference, "status": from}
	update := bson.M{"$set": bson.M{"status": to, "updated_at": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Booking
	err := r.coll.FindOneAndUpdate(cctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to update status of booking %s: %w", reference, err)
	}

	// No match: either the booking is gone or its status moved underneath us.
	if _, gerr := r.GetByReference(ctx, reference); gerr != nil {
		if gerr == ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, gerr
	}
	return nil, ErrStatusConflict
}

// ListByCustomer retrieves all bookings made by a customer, newest first.
func (r *MongoBookingRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	return r.list(bson.M{"customer_id": customerID})
}

// ListByProvider retrieves all bookings against a provider's services, newest first.
func (r *MongoBookingRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return r.list(bson.M{"provider_id": providerID})
}

func (r *MongoBookingRepo) list(filter bson.M) ([]models.Booking, error) {
	cctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(cctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer cursor.Close(cctx)

	var bookings []models.Booking
	if err := cursor.All(cctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

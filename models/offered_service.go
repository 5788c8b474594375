package models

import "time"

// OfferedService is a bookable service published by a provider. Its live
// price may change over time; bookings snapshot the price at creation and
// never re-read it.
type OfferedService struct {
	ID          string    `bson:"id" json:"id"`
	ProviderID  string    `bson:"provider_id" json:"providerId"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64   `bson:"price" json:"price"`
	Available   bool      `bson:"available" json:"available"`
	Location    string    `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updatedAt"`
}

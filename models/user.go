package models

import "time"

// UserRole distinguishes the two sides of a booking plus the internal system
// actor used by the payment subsystem.
type UserRole string

const (
	RoleCustomer        UserRole = "CUSTOMER"
	RoleServiceProvider UserRole = "SERVICE_PROVIDER"
	RoleSystem          UserRole = "SYSTEM"
)

// User is an account on either side of a booking.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Role         UserRole  `bson:"role" json:"role"`
	FirstName    string    `bson:"first_name" json:"firstName"`
	LastName     string    `bson:"last_name" json:"lastName"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updatedAt"`
}

// Actor identifies who is driving a booking transition.
type Actor struct {
	ID   string
	Role UserRole
}

// SystemActor is the trusted payment-subsystem identity. It is the only
// actor permitted to confirm or fail a payment.
func SystemActor() Actor {
	return Actor{ID: "system", Role: RoleSystem}
}

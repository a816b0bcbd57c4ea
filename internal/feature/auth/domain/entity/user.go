// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// User represents a registered account document.
// The watchlist lives on the same document as an unordered set of ticker
// symbols; the watchlist feature mutates it through its own repository.
type User struct {
	// ID is the unique identifier for the user.
	ID bson.ObjectID `bson:"_id,omitempty"`

	// Name is the user's display name.
	Name string `bson:"name"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `bson:"email"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords.
	Password string `bson:"password"`

	// Stocks is the set of ticker symbols the user tracks.
	Stocks []string `bson:"stocks,omitempty"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `bson:"createdAt"`
}

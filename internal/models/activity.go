package models

import "time"

// Activity feed entry types
const (
	ActivityRegistration = "registration"
	ActivityRequest      = "request"
	ActivityDonation     = "donation"
)

// Activity is an append-only feed entry. Observational only; never read
// back for business logic.
type Activity struct {
	ID        string    `bson:"_id" json:"id"`
	Type      string    `bson:"type" json:"type"`
	Message   string    `bson:"message" json:"message"`
	ActorName string    `bson:"actor_name" json:"actor_name"`
	BloodType string    `bson:"blood_type,omitempty" json:"blood_type,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

package models

import "time"

// Blood request lifecycle states
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Urgency levels, ordered low < medium < high < critical
const (
	UrgencyLow      = "low"
	UrgencyMedium   = "medium"
	UrgencyHigh     = "high"
	UrgencyCritical = "critical"
)

// ValidStatus reports whether s is one of the four lifecycle states
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ValidUrgency reports whether u is a known urgency level
func ValidUrgency(u string) bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

// BloodRequest represents a recipient's request for blood.
// Recipient and donor names are denormalized at creation time for display.
type BloodRequest struct {
	ID             string    `bson:"_id" json:"id"`
	RecipientID    string    `bson:"recipient_id" json:"recipient_id"`
	RecipientName  string    `bson:"recipient_name" json:"recipient_name"`
	RecipientPhone string    `bson:"recipient_phone" json:"recipient_phone"`
	DonorID        string    `bson:"donor_id,omitempty" json:"donor_id,omitempty"`
	DonorName      string    `bson:"donor_name,omitempty" json:"donor_name,omitempty"`
	BloodType      string    `bson:"blood_type" json:"blood_type"`
	Location       string    `bson:"location" json:"location"`
	Urgency        string    `bson:"urgency" json:"urgency"`
	Emergency      bool      `bson:"emergency" json:"emergency"`
	Message        string    `bson:"message,omitempty" json:"message,omitempty"`
	Status         string    `bson:"status" json:"status"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// BloodRequestCreate is the payload for POST /blood-requests
type BloodRequestCreate struct {
	DonorID   string `json:"donor_id"`
	BloodType string `json:"blood_type" binding:"required"`
	Location  string `json:"location" binding:"required"`
	Urgency   string `json:"urgency" binding:"required"`
	Emergency bool   `json:"emergency"`
	Message   string `json:"message"`
}

// BloodRequestStatusUpdate is the payload for PUT /blood-requests/:id
type BloodRequestStatusUpdate struct {
	Status string `json:"status" binding:"required"`
}

package models

import "time"

// The eight ABO/Rh blood types
const (
	BloodAPos  = "A+"
	BloodANeg  = "A-"
	BloodBPos  = "B+"
	BloodBNeg  = "B-"
	BloodABPos = "AB+"
	BloodABNeg = "AB-"
	BloodOPos  = "O+"
	BloodONeg  = "O-"
)

// BloodTypes lists all known ABO/Rh types
var BloodTypes = []string{
	BloodAPos, BloodANeg, BloodBPos, BloodBNeg,
	BloodABPos, BloodABNeg, BloodOPos, BloodONeg,
}

// ValidBloodType reports whether t is one of the eight known types
func ValidBloodType(t string) bool {
	for _, bt := range BloodTypes {
		if t == bt {
			return true
		}
	}
	return false
}

// DonorProfile holds the donation-specific record for a user of role donor
type DonorProfile struct {
	ID               string     `bson:"_id" json:"id"`
	UserID           string     `bson:"user_id" json:"user_id"`
	BloodType        string     `bson:"blood_type" json:"blood_type"`
	Available        bool       `bson:"available" json:"available"`
	LastDonationDate *time.Time `bson:"last_donation_date,omitempty" json:"last_donation_date,omitempty"`
	TotalDonations   int        `bson:"total_donations" json:"total_donations"`
	CreatedAt        time.Time  `bson:"created_at" json:"created_at"`
}

// DonorView is a donor profile enriched with its owning user's contact
// fields. Never persisted; assembled per request.
type DonorView struct {
	DonorProfile
	Name         string   `json:"name"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Location     string   `json:"location"`
	Achievements []string `json:"achievements"`
}

// DonorFilter holds the optional directory query constraints.
// Available is a tri-state: nil means no availability predicate.
type DonorFilter struct {
	BloodType string
	Location  string
	Available *bool
}

// LeaderboardEntry is one row of the donor leaderboard
type LeaderboardEntry struct {
	DonorID        string   `json:"donor_id"`
	Name           string   `json:"name"`
	BloodType      string   `json:"blood_type"`
	TotalDonations int      `json:"total_donations"`
	Achievements   []string `json:"achievements"`
}

// AvailabilityUpdate is the payload for PUT /donors/me/availability.
// Pointer so that an explicit false still satisfies the required binding.
type AvailabilityUpdate struct {
	Available *bool `json:"available" binding:"required"`
}

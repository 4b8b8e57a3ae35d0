package models

import "time"

// DonationHistory is an immutable record of one completed donation.
// Blood type, location and recipient fields are copied from the request
// at recording time.
type DonationHistory struct {
	ID            string    `bson:"_id" json:"id"`
	RequestID     string    `bson:"request_id" json:"request_id"`
	DonorID       string    `bson:"donor_id" json:"donor_id"`
	DonorUserID   string    `bson:"donor_user_id" json:"donor_user_id"`
	RecipientID   string    `bson:"recipient_id" json:"recipient_id"`
	RecipientName string    `bson:"recipient_name" json:"recipient_name"`
	BloodType     string    `bson:"blood_type" json:"blood_type"`
	Location      string    `bson:"location" json:"location"`
	Units         int       `bson:"units" json:"units"`
	DonatedAt     time.Time `bson:"donated_at" json:"donated_at"`
}

// DonationCreate is the payload for POST /donations
type DonationCreate struct {
	RequestID string `json:"request_id" binding:"required"`
	Units     int    `json:"units" binding:"required,min=1"`
}

package models

// TypeCount is one bucket of a group-aggregate result
type TypeCount struct {
	Type  string `bson:"_id" json:"type"`
	Count int64  `bson:"count" json:"count"`
}

// Stats holds point-in-time aggregate counts. Each field is computed by an
// independent query; there is no cross-field snapshot isolation.
type Stats struct {
	TotalUsers            int64       `json:"total_users"`
	TotalDonors           int64       `json:"total_donors"`
	AvailableDonors       int64       `json:"available_donors"`
	TotalRequests         int64       `json:"total_requests"`
	PendingRequests       int64       `json:"pending_requests"`
	CompletedRequests     int64       `json:"completed_requests"`
	EmergencyRequests     int64       `json:"emergency_requests"`
	TotalDonations        int64       `json:"total_donations"`
	BloodTypeDistribution []TypeCount `json:"blood_type_distribution"`
	UrgencyDistribution   []TypeCount `json:"urgency_distribution"`
}

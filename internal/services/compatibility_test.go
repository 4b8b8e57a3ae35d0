package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bloodlink/bloodlink-backend/internal/models"
)

// The full donor-to-recipient compatibility table over all 8x8 pairs.
var compatibilityTable = map[string]map[string]bool{
	"O-":  {"O-": true, "O+": true, "A-": true, "A+": true, "B-": true, "B+": true, "AB-": true, "AB+": true},
	"O+":  {"O-": false, "O+": true, "A-": false, "A+": true, "B-": false, "B+": true, "AB-": false, "AB+": true},
	"A-":  {"O-": false, "O+": false, "A-": true, "A+": true, "B-": false, "B+": false, "AB-": true, "AB+": true},
	"A+":  {"O-": false, "O+": false, "A-": false, "A+": true, "B-": false, "B+": false, "AB-": false, "AB+": true},
	"B-":  {"O-": false, "O+": false, "A-": false, "A+": false, "B-": true, "B+": true, "AB-": true, "AB+": true},
	"B+":  {"O-": false, "O+": false, "A-": false, "A+": false, "B-": false, "B+": true, "AB-": false, "AB+": true},
	"AB-": {"O-": false, "O+": false, "A-": false, "A+": false, "B-": false, "B+": false, "AB-": true, "AB+": true},
	"AB+": {"O-": false, "O+": false, "A-": false, "A+": false, "B-": false, "B+": false, "AB-": false, "AB+": true},
}

func TestResolveCompatibilityFullTable(t *testing.T) {
	for donor, recipients := range compatibilityTable {
		for recipient, want := range recipients {
			compatible, explanation := ResolveCompatibility(donor, recipient)
			assert.Equalf(t, want, compatible, "%s -> %s", donor, recipient)
			assert.NotEmpty(t, explanation)
		}
	}
}

func TestResolveCompatibilityUniversalDonor(t *testing.T) {
	for _, recipient := range models.BloodTypes {
		compatible, _ := ResolveCompatibility("O-", recipient)
		assert.Truef(t, compatible, "O- should donate to %s", recipient)
	}
}

func TestResolveCompatibilityUniversalRecipient(t *testing.T) {
	for _, donor := range models.BloodTypes {
		compatible, _ := ResolveCompatibility(donor, "AB+")
		assert.Truef(t, compatible, "%s should donate to AB+", donor)
	}
}

func TestResolveCompatibilityUnknownTypes(t *testing.T) {
	cases := []struct {
		name      string
		donor     string
		recipient string
	}{
		{"unknown donor", "X+", "A+"},
		{"unknown recipient", "A+", "C-"},
		{"both unknown", "", "??"},
		{"lowercase is not a known type", "o-", "A+"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			compatible, explanation := ResolveCompatibility(tc.donor, tc.recipient)
			assert.False(t, compatible)
			assert.Contains(t, explanation, "unknown blood type")
		})
	}
}

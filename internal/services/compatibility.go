package services

import "fmt"

// donorCompatibility maps a donor's ABO/Rh type to the fixed set of
// recipient types that may safely receive that donor's blood. O- is the
// universal donor; AB+ is the universal recipient but donates only to AB+.
var donorCompatibility = map[string][]string{
	"O-":  {"O-", "O+", "A-", "A+", "B-", "B+", "AB-", "AB+"},
	"O+":  {"O+", "A+", "B+", "AB+"},
	"A-":  {"A-", "A+", "AB-", "AB+"},
	"A+":  {"A+", "AB+"},
	"B-":  {"B-", "B+", "AB-", "AB+"},
	"B+":  {"B+", "AB+"},
	"AB-": {"AB-", "AB+"},
	"AB+": {"AB+"},
}

// ResolveCompatibility decides whether blood of donorType can be
// transfused to a recipient of recipientType. Unknown type strings are
// reported as incompatible, never as a failure.
func ResolveCompatibility(donorType, recipientType string) (bool, string) {
	recipients, ok := donorCompatibility[donorType]
	if !ok {
		return false, fmt.Sprintf("unknown blood type %q", donorType)
	}
	if _, ok := donorCompatibility[recipientType]; !ok {
		return false, fmt.Sprintf("unknown blood type %q", recipientType)
	}

	for _, rt := range recipients {
		if rt == recipientType {
			return true, fmt.Sprintf("%s can donate to %s", donorType, recipientType)
		}
	}
	return false, fmt.Sprintf("%s cannot donate to %s", donorType, recipientType)
}

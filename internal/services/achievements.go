package services

// achievementLevel pairs a cumulative donation threshold with its badge
type achievementLevel struct {
	threshold int
	badge     string
}

// Thresholds are cumulative and strictly increasing.
var achievementLevels = []achievementLevel{
	{1, "First Drop"},
	{5, "Lifesaver"},
	{10, "Hero"},
	{25, "Legend"},
	{50, "Guardian Angel"},
}

// Achievements returns the badges earned at the given lifetime donation
// count, in threshold order.
func Achievements(totalDonations int) []string {
	badges := []string{}
	for _, lvl := range achievementLevels {
		if totalDonations >= lvl.threshold {
			badges = append(badges, lvl.badge)
		}
	}
	return badges
}

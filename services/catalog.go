package services

// ResolveCampusCost picks the unit cost a catalog service carries for a
// campus. Campus-specific overrides win; a campus without an override (or
// no campus selected yet) falls back to the catalog default. Quote service
// lines are re-resolved through this whenever the quote's campus changes.
func ResolveCampusCost(campusCosts map[string]float64, campusID string, defaultCost float64) float64 {
	if campusID == "" {
		return defaultCost
	}
	if cost, ok := campusCosts[campusID]; ok {
		return cost
	}
	return defaultCost
}

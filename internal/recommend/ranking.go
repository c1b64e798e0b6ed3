package recommend

import "sort"

// Dedupe removes recommendations with duplicate IDs, keeping the first
// occurrence of each. The input is not modified.
func Dedupe(recs []Recommendation) []Recommendation {
	seen := make(map[string]bool, len(recs))
	deduped := make([]Recommendation, 0, len(recs))
	for _, r := range recs {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		deduped = append(deduped, r)
	}
	return deduped
}

// RankByPriority stably sorts recommendations so that high priority
// precedes medium precedes low, preserving source order within a level.
func RankByPriority(recs []Recommendation) []Recommendation {
	sorted := make([]Recommendation, len(recs))
	copy(sorted, recs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})
	return sorted
}

// MapExternalPriority converts the external planner priority scale
// (1 = highest, 2 = elevated, anything else routine) to the internal one.
func MapExternalPriority(p int) int {
	switch p {
	case 1:
		return PriorityHigh
	case 2:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

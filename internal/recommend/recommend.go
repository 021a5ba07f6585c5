package recommend

import (
	"fmt"

	"course-dash/internal/domain"
)

// Cap on how many recommendations the service returns per user.
const maxRecommendations = 5

// ForUser selects courses relevant to a user by category affinity: a course
// is recommended when it shares a category with a course the user is
// enrolled in. Already-enrolled courses are never recommended. Catalog order
// is preserved and the result is capped at maxRecommendations.
func ForUser(catalog []domain.Course, enrolledIDs []int) []domain.Recommendation {
	byID := make(map[int]domain.Course, len(catalog))
	for _, c := range catalog {
		byID[c.ID] = c
	}

	// Map each enrolled category to the first course carrying it in the
	// user's enrollment-list order; that course names the recommendation's
	// reason.
	enrolled := make(map[int]bool, len(enrolledIDs))
	triggerByCategory := make(map[string]domain.Course)
	for _, id := range enrolledIDs {
		enrolled[id] = true
		c, ok := byID[id]
		if !ok {
			continue
		}
		if _, seen := triggerByCategory[c.Category]; !seen {
			triggerByCategory[c.Category] = c
		}
	}

	recs := make([]domain.Recommendation, 0, maxRecommendations)
	for _, c := range catalog {
		if enrolled[c.ID] {
			continue
		}
		trigger, ok := triggerByCategory[c.Category]
		if !ok {
			continue
		}
		recs = append(recs, domain.Recommendation{
			Course: c,
			Reason: fmt.Sprintf("Because you are taking '%s'", trigger.Title),
		})
		if len(recs) == maxRecommendations {
			break
		}
	}
	return recs
}

package dashboard

import "course-dash/internal/domain"

// AnnotatedCourse is a catalog course tagged with the user's enrollment.
type AnnotatedCourse struct {
	domain.Course
	Enrolled bool
}

// ViewModel is the render-ready dashboard shape: the service's ranked
// recommendations plus the full catalog annotated with enrollment.
type ViewModel struct {
	Recommendations []domain.Recommendation
	Courses         []AnnotatedCourse
}

// Aggregate combines catalog, recommendations and the enrollment set into a
// view model. Pure: recomputed on every refresh, no caching.
//
// Catalog order and recommendation order are preserved exactly; the
// recommendation sequence passes through untouched: no re-ranking, no
// dedup against the enrolled set (whether an enrolled course may also be
// recommended is the service's call, not ours).
func Aggregate(catalog []domain.Course, recs []domain.Recommendation, enrolledIDs []int) ViewModel {
	enrolled := make(map[int]bool, len(enrolledIDs))
	for _, id := range enrolledIDs {
		enrolled[id] = true
	}

	courses := make([]AnnotatedCourse, 0, len(catalog))
	for _, c := range catalog {
		courses = append(courses, AnnotatedCourse{
			Course:   c,
			Enrolled: enrolled[c.ID],
		})
	}

	return ViewModel{
		Recommendations: recs,
		Courses:         courses,
	}
}

package domain

// UserProfile is the authenticated user's profile as returned by the
// service. Immutable once fetched within a session; discarded when the token
// is cleared.
type UserProfile struct {
	ID                int    `json:"id"`
	Username          string `json:"username"`
	Email             string `json:"email"`
	EnrolledCourseIDs []int  `json:"enrolled_courses"`
}

// IsEnrolled reports whether the user is enrolled in the given course.
func (p UserProfile) IsEnrolled(courseID int) bool {
	for _, id := range p.EnrolledCourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}

package recommend

import (
	"testing"

	"course-dash/internal/domain"
)

func testCatalog() []domain.Course {
	return []domain.Course{
		{ID: 101, Title: "Introduction to Python", Category: "Programming", Difficulty: domain.DifficultyBeginner},
		{ID: 102, Title: "Advanced JavaScript", Category: "Programming", Difficulty: domain.DifficultyAdvanced},
		{ID: 103, Title: "Data Science with Pandas", Category: "Data Science", Difficulty: domain.DifficultyIntermediate},
		{ID: 104, Title: "Machine Learning Basics", Category: "Data Science", Difficulty: domain.DifficultyIntermediate},
		{ID: 105, Title: "Digital Marketing 101", Category: "Marketing", Difficulty: domain.DifficultyBeginner},
	}
}

func TestForUserCategoryAffinity(t *testing.T) {
	recs := ForUser(testCatalog(), []int{101, 103})

	if len(recs) != 2 {
		t.Fatalf("Expected 2 recommendations, got %d", len(recs))
	}

	if recs[0].ID != 102 {
		t.Errorf("Expected first recommendation to be course 102, got %d", recs[0].ID)
	}
	if recs[0].Reason != "Because you are taking 'Introduction to Python'" {
		t.Errorf("Unexpected reason: '%s'", recs[0].Reason)
	}

	if recs[1].ID != 104 {
		t.Errorf("Expected second recommendation to be course 104, got %d", recs[1].ID)
	}
	if recs[1].Reason != "Because you are taking 'Data Science with Pandas'" {
		t.Errorf("Unexpected reason: '%s'", recs[1].Reason)
	}
}

func TestForUserSuppressesEnrolled(t *testing.T) {
	recs := ForUser(testCatalog(), []int{101, 103})

	for _, r := range recs {
		if r.ID == 101 || r.ID == 103 {
			t.Errorf("Enrolled course %d must not be recommended", r.ID)
		}
	}
}

func TestForUserTriggerFollowsEnrollmentOrder(t *testing.T) {
	// Two same-category enrollments whose enrollment order is the reverse
	// of catalog order: the reason names the first course in the user's
	// enrollment list, not the first one in the catalog.
	catalog := []domain.Course{
		{ID: 10, Title: "First", Category: "Programming", Difficulty: domain.DifficultyBeginner},
		{ID: 20, Title: "Second", Category: "Programming", Difficulty: domain.DifficultyIntermediate},
		{ID: 30, Title: "Third", Category: "Programming", Difficulty: domain.DifficultyAdvanced},
	}

	recs := ForUser(catalog, []int{20, 10})

	if len(recs) != 1 {
		t.Fatalf("Expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].ID != 30 {
		t.Errorf("Expected course 30 to be recommended, got %d", recs[0].ID)
	}
	if recs[0].Reason != "Because you are taking 'Second'" {
		t.Errorf("Expected reason to name 'Second', got '%s'", recs[0].Reason)
	}
}

func TestForUserNoEnrollments(t *testing.T) {
	recs := ForUser(testCatalog(), nil)
	if len(recs) != 0 {
		t.Errorf("Expected no recommendations without enrollments, got %d", len(recs))
	}
}

func TestForUserUnknownEnrollment(t *testing.T) {
	// Enrollment referencing a course outside the catalog contributes no
	// category affinity.
	recs := ForUser(testCatalog(), []int{999})
	if len(recs) != 0 {
		t.Errorf("Expected no recommendations for unknown enrollment, got %d", len(recs))
	}
}

func TestForUserCap(t *testing.T) {
	catalog := []domain.Course{
		{ID: 1, Title: "Seed", Category: "Programming", Difficulty: domain.DifficultyBeginner},
	}
	for i := 2; i <= 10; i++ {
		catalog = append(catalog, domain.Course{
			ID:         i,
			Title:      "Course",
			Category:   "Programming",
			Difficulty: domain.DifficultyBeginner,
		})
	}

	recs := ForUser(catalog, []int{1})
	if len(recs) != maxRecommendations {
		t.Errorf("Expected recommendations capped at %d, got %d", maxRecommendations, len(recs))
	}
}

func TestForUserPreservesCatalogOrder(t *testing.T) {
	catalog := []domain.Course{
		{ID: 1, Title: "Seed", Category: "Programming"},
		{ID: 5, Title: "E", Category: "Programming"},
		{ID: 3, Title: "C", Category: "Programming"},
		{ID: 4, Title: "D", Category: "Programming"},
	}

	recs := ForUser(catalog, []int{1})
	got := []int{recs[0].ID, recs[1].ID, recs[2].ID}
	want := []int{5, 3, 4}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected recommendation order %v, got %v", want, got)
			break
		}
	}
}

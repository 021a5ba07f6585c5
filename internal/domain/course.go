package domain

// Difficulty is the course difficulty level as the service reports it.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Course is one catalog entry. The catalog is read-only from the client's
// perspective; all fields come straight off the wire.
type Course struct {
	ID         int        `json:"id"`
	Title      string     `json:"title"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
}

// Recommendation is a catalog course the service selected for a specific
// user, plus a human-readable reason. Reasons are produced by the service;
// the client never generates or rewrites them.
type Recommendation struct {
	Course
	Reason string `json:"reason"`
}

package model

type Difficulty string

const (
	DifficultyEasy      Difficulty = "Easy"
	DifficultyModerate  Difficulty = "Moderate"
	DifficultyHard      Difficulty = "Hard"
	DifficultyDifficult Difficulty = "Difficult"
)

// Trek is a named hiking route. Treks are static reference data seeded on
// first run; users never create or edit them.
type Trek struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Region      string     `json:"region"`
	Difficulty  Difficulty `json:"difficulty"`
	Duration    int        `json:"duration"` // days
	Description string     `json:"description"`
	ImageURL    string     `json:"imageUrl,omitempty"`
}

package exercises

// Exercise is a row of the reference catalog. The catalog is read-only for
// the API, rows come in via seeding.
type Exercise struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	MuscleGroup string `json:"muscle_group"`
	Description string `json:"description"`
}

// Filters are conjunctive, an empty field matches everything.
type Filters struct {
	Category    string
	MuscleGroup string
	Search      string
}

// Package seedmodels defines the JSON shapes consumed by the seed command.
package seedmodels

// SeedInstructor is an instructor account plus the courses it owns.
type SeedInstructor struct {
	Username string       `json:"username"`
	Email    string       `json:"email"`
	Password string       `json:"password"`
	Name     string       `json:"name"`
	Courses  []SeedCourse `json:"courses"`
}

// SeedCourse is a course with its ordered lessons.
type SeedCourse struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Level       string       `json:"level"`
	Price       float64      `json:"price"`
	IsPublished bool         `json:"isPublished"`
	Lessons     []SeedLesson `json:"lessons"`
}

// SeedLesson is one lesson of a seeded course.
type SeedLesson struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
}

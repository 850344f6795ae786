package homework

// Record is one homework entry as returned by the review API.
// Only Name and Status are required; the rest are carried when present.
type Record struct {
	ID              int64
	Name            string // homework_name
	Status          Status
	LessonName      string
	ReviewerComment string
	DateUpdated     string
}

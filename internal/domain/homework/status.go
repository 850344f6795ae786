// internal/domain/homework/status.go
package homework

// Status is the review state reported by the homework API.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Verdicts maps every known status to the text shown to the student.
var Verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Known reports whether s is present in Verdicts.
func (s Status) Known() bool {
	_, ok := Verdicts[s]
	return ok
}

// Verdict returns the verdict text for s, or "" for unknown statuses.
func (s Status) Verdict() string {
	return Verdicts[s]
}

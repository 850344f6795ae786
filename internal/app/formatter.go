package app

import (
	"fmt"

	"homework_status_bot/internal/domain/homework"
)

// ParseStatus renders the notification text for a single homework.
func ParseStatus(rec homework.Record) (string, error) {
	if rec.Name == "" {
		return "", fmt.Errorf("%w: homework_name", homework.ErrMissingField)
	}
	if rec.Status == "" {
		return "", fmt.Errorf("%w: status", homework.ErrMissingField)
	}
	verdict, ok := homework.Verdicts[rec.Status]
	if !ok {
		return "", fmt.Errorf("%w: status %q has no verdict", homework.ErrMissingField, rec.Status)
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\" %s %s", rec.Name, rec.Status, verdict), nil
}

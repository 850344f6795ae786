package app

import (
	"fmt"

	"homework_status_bot/internal/domain/homework"
)

// CheckResponse validates the decoded API body and extracts its homeworks.
// An empty homeworks list yields (nil, nil): nothing changed in the window.
// Only the first record's status is checked, since only it is reported.
func CheckResponse(raw any) ([]homework.Record, error) {
	if raw == nil {
		return nil, fmt.Errorf("%w: empty response", homework.ErrMalformedResponse)
	}
	body, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected an object, got %T", homework.ErrMalformedResponse, raw)
	}
	field, ok := body["homeworks"]
	if !ok {
		return nil, fmt.Errorf("%w: no homeworks key", homework.ErrMalformedResponse)
	}
	list, ok := field.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: homeworks is %T, not a list", homework.ErrMalformedResponse, field)
	}
	if len(list) == 0 {
		return nil, nil
	}

	records := make([]homework.Record, 0, len(list))
	for i, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: homeworks[%d] is %T, not an object", homework.ErrMalformedResponse, i, item)
		}
		records = append(records, recordFrom(obj))
	}

	if st := records[0].Status; !st.Known() {
		return nil, fmt.Errorf("%w: %q", homework.ErrUnknownStatus, st)
	}
	return records, nil
}

// CurrentDate returns the server time the API reports alongside the homeworks.
func CurrentDate(raw any) (int64, bool) {
	body, ok := raw.(map[string]any)
	if !ok {
		return 0, false
	}
	return asInt(body["current_date"])
}

func recordFrom(obj map[string]any) homework.Record {
	id, _ := asInt(obj["id"])
	return homework.Record{
		ID:              id,
		Name:            asString(obj["homework_name"]),
		Status:          homework.Status(asString(obj["status"])),
		LessonName:      asString(obj["lesson_name"]),
		ReviewerComment: asString(obj["reviewer_comment"]),
		DateUpdated:     asString(obj["date_updated"]),
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	}
	return 0, false
}

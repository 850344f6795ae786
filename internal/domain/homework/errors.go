package homework

import (
	"errors"
	"fmt"
)

var (
	ErrAPIUnreachable       = fmt.Errorf("homework API is unreachable")
	ErrUnexpectedStatusCode = fmt.Errorf("unexpected status code from homework API")
	ErrMalformedResponse    = fmt.Errorf("malformed homework API response")
	ErrUnknownStatus        = fmt.Errorf("unknown homework status")
	ErrMissingField         = fmt.Errorf("homework record is missing a field")
	ErrMissingConfiguration = fmt.Errorf("required configuration is missing")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrAPIUnreachable, "ApiUnreachable"},
	{ErrUnexpectedStatusCode, "UnexpectedStatusCode"},
	{ErrMalformedResponse, "MalformedResponse"},
	{ErrUnknownStatus, "UnknownStatus"},
	{ErrMissingField, "MissingField"},
	{ErrMissingConfiguration, "MissingConfiguration"},
}

// KindOf names the taxonomy entry err belongs to, or "Unexpected".
func KindOf(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "Unexpected"
}

// NeedsCatalogUpdate reports whether err points at data the bot does not
// understand yet, as opposed to a transient API failure.
func NeedsCatalogUpdate(err error) bool {
	return errors.Is(err, ErrUnknownStatus) || errors.Is(err, ErrMissingField)
}

package routes

import "time"

// timestamp parses an RFC 3339 string that already passed `datetime`
// validation.
func timestamp(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &t
}

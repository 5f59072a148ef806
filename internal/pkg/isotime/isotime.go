// Package isotime formats and parses the ISO-8601 timestamps exchanged with clients
// and kept in the document store.
package isotime

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"
)

// StorageLayout is fixed width so that stored strings sort chronologically.
const StorageLayout = "2006-01-02T15:04:05.000000-07:00"

var parseLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ErrFormat is wrapped by every parse failure.
var ErrFormat = errors.New("not an ISO-8601 timestamp")

// Normalize converts t to UTC at the microsecond precision the store keeps.
func Normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// Format renders t in StorageLayout after normalising it.
func Format(t time.Time) string {
	// UTC renders as "+00:00" with this layout rather than "Z".
	return Normalize(t).Format(StorageLayout)
}

// Parse accepts RFC 3339 strings as well as the offset-less forms many clients send.
// Timestamps without an offset are taken as UTC.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Normalize(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("isotime: %q: %w", s, ErrFormat)
}

// Time is a JSON-decodable timestamp that tolerates the layouts Parse accepts.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("isotime: expected a string, got %s: %w", b, ErrFormat)
	}
	parsed, err := Parse(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return t.Time.MarshalJSON()
}

package database

import (
	"fmt"
	"time"
)

// Timestamp scans a timestamp column from either driver. PostgreSQL hands
// over time.Time values while SQLite stores RFC 3339 text.
type Timestamp struct {
	Time  time.Time
	Valid bool
}

// Scan implements sql.Scanner.
func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time, t.Valid = time.Time{}, false
		return nil
	case time.Time:
		t.Time, t.Valid = v.UTC(), true
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Timestamp", src)
	}
}

func (t *Timestamp) parse(s string) error {
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		// SQLite's CURRENT_TIMESTAMP form
		parsed, err = time.Parse(time.DateTime, s)
		if err != nil {
			return fmt.Errorf("parse timestamp %q: %w", s, err)
		}
	}
	t.Time, t.Valid = parsed.UTC(), true
	return nil
}

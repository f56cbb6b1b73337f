package mcp

import (
	"fmt"
	"strings"
	"time"

	"github.com/felixgeelhaar/minutes/internal/meetings/application"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// parseDate accepts RFC 3339 or a bare YYYY-MM-DD, read as UTC midnight.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, use YYYY-MM-DD or RFC 3339: %q", value)
	}
	return t, nil
}

func parseUUID(field, value string) (uuid.UUID, error) {
	if value == "" {
		return uuid.Nil, fmt.Errorf("%s is required", field)
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %w", field, err)
	}
	return id, nil
}

// invalid reports an argument error as a failed envelope, the same shape
// the services use for validation failures.
func invalid[T any](err error) application.Result[T] {
	return application.Fail[T](err.Error())
}

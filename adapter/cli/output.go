package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/felixgeelhaar/minutes/internal/meetings/application"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// Date layouts accepted by --date flags.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Render prints a result. With --json the envelope is written as-is;
// otherwise text renders the data. A failed result returns its error
// message verbatim so the command exits non-zero.
func Render[T any](cmd *cobra.Command, res application.Result[T], text func(w io.Writer, data T)) error {
	out := cmd.OutOrStdout()
	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	}
	if !res.Success {
		return errors.New(res.Error)
	}
	if !jsonOutput && text != nil {
		text(out, res.Data)
	}
	return nil
}

// ParseID parses a uuid argument.
func ParseID(kind, s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s ID: %w", kind, err)
	}
	return id, nil
}

// ParseDate parses a --date value. Dates without a zone are read in local time.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD or RFC 3339)", s)
}

// SplitTags splits a comma separated tag list, dropping blanks.
func SplitTags(s string) []string {
	tags := []string{}
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// OptionalString returns a pointer to s, or nil when s is blank.
func OptionalString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// Deref renders an optional string, using "-" for nil.
func Deref(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// FormatDate renders a meeting date in local time.
func FormatDate(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04")
}

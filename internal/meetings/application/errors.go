package application

import (
	"errors"
	"fmt"

	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/database"
)

// Messages placed in failed envelopes.
const (
	MessageUnknown          = "An unknown error occurred"
	MessageUnexpected       = "An unexpected error occurred"
	MessageMissingRelation  = "The store is missing a required table. Run the setup script for its driver (schema/postgres.sql or schema/sqlite.sql, printed by `minutes schema`) against the database."
	MessagePermissionDenied = "The store denied access. Check the access policy granted to the configured access key."
)

// ErrorMessage turns an error from a service operation into the message
// reported to callers.
func ErrorMessage(err error) string {
	if err == nil {
		return MessageUnknown
	}
	if errors.Is(err, domain.ErrNotFound) || domain.IsValidationError(err) {
		return err.Error()
	}

	se := database.Classify(err)
	switch se.Kind {
	case database.KindMissingRelation:
		return MessageMissingRelation
	case database.KindPermissionDenied:
		return MessagePermissionDenied
	}
	if se.Message != "" {
		return se.Message
	}
	if se.Code != "" {
		return fmt.Sprintf("Store request failed (code %s)", se.Code)
	}
	return MessageUnknown
}

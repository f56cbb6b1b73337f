package domain

import "errors"

var validationErrors = []error{
	ErrMeetingEmptyTitle,
	ErrMeetingInvalidStatus,
	ErrMeetingMissingDate,
	ErrAttendeeEmptyName,
	ErrAttendeeEmptyEmail,
	ErrInvalidAttendanceStatus,
	ErrInvalidPage,
}

// IsValidationError reports whether err was raised by input validation,
// before any store request.
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

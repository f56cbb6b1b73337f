package domain

import "errors"

// DefaultPageSize applies when an offset is given without a limit.
const DefaultPageSize = 10

var ErrInvalidPage = errors.New("limit and offset cannot be negative")

// ValidatePage checks the paging arguments of a listing.
func ValidatePage(limit, offset int) error {
	if limit < 0 || offset < 0 {
		return ErrInvalidPage
	}
	return nil
}

// PageLimit resolves the effective limit for a listing. An offset without a
// limit pages by DefaultPageSize; zero means unbounded.
func PageLimit(limit, offset int) int {
	if offset > 0 && limit == 0 {
		return DefaultPageSize
	}
	return limit
}

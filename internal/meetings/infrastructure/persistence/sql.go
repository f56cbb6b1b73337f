package persistence

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/database"
)

// likeEscaper escapes LIKE metacharacters so search terms match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a lowercased substring pattern for searchClause.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// searchClause ORs a case-insensitive match of one pattern placeholder per
// column. PostgreSQL uses ILIKE; SQLite lowercases the column.
func searchClause(driver database.Driver, columns ...string) string {
	terms := make([]string, len(columns))
	for i, col := range columns {
		if driver == database.DriverPostgres {
			terms[i] = col + ` ILIKE ? ESCAPE '\'`
		} else {
			terms[i] = `LOWER(` + col + `) LIKE ? ESCAPE '\'`
		}
	}
	return "(" + strings.Join(terms, " OR ") + ")"
}

// appendPage appends LIMIT/OFFSET clauses. An offset without a limit pages by
// domain.DefaultPageSize.
func appendPage(query string, args []any, limit, offset int) (string, []any) {
	if limit = domain.PageLimit(limit, offset); limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	if offset > 0 {
		query += " OFFSET ?"
		args = append(args, offset)
	}
	return query, args
}

// encodeTags stores tags as a JSON array. A nil slice is stored as NULL.
func encodeTags(tags []string) any {
	if tags == nil {
		return nil
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return nil
	}
	return string(raw)
}

func decodeTags(raw *string) ([]string, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(*raw), &tags); err != nil {
		return nil, fmt.Errorf("decode tags: %w", err)
	}
	return tags, nil
}

// notFound maps a no-rows error onto domain.ErrNotFound.
func notFound(err error) error {
	if database.IsNoRows(err) {
		return domain.ErrNotFound
	}
	return err
}

// setClause accumulates "col = ?" assignments for partial updates.
type setClause struct {
	parts []string
	args  []any
}

func (s *setClause) add(column string, value any) {
	s.parts = append(s.parts, column+" = ?")
	s.args = append(s.args, value)
}

func (s *setClause) raw(assignment string) {
	s.parts = append(s.parts, assignment)
}

func (s *setClause) String() string {
	return strings.Join(s.parts, ", ")
}

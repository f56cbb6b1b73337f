package persistence

import (
	"context"

	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/database"
	"github.com/google/uuid"
)

const attendeeColumns = `id, name, email, role, department, created_at, updated_at`

// AttendeeRepository implements domain.AttendeeRepository for PostgreSQL and SQLite.
type AttendeeRepository struct {
	conn database.Connection
}

// NewAttendeeRepository creates a new attendee repository.
func NewAttendeeRepository(conn database.Connection) *AttendeeRepository {
	return &AttendeeRepository{conn: conn}
}

type attendeeRow struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Role       *string
	Department *string
	CreatedAt  database.Timestamp
	UpdatedAt  database.Timestamp
}

func (r *attendeeRow) dest() []any {
	return []any{&r.ID, &r.Name, &r.Email, &r.Role, &r.Department, &r.CreatedAt, &r.UpdatedAt}
}

func (r *attendeeRow) toDomain() domain.Attendee {
	return domain.Attendee{
		ID:         r.ID,
		Name:       r.Name,
		Email:      r.Email,
		Role:       r.Role,
		Department: r.Department,
		CreatedAt:  r.CreatedAt.Time,
		UpdatedAt:  r.UpdatedAt.Time,
	}
}

// nullableAttendeeRow scans the attendee side of an outer join.
type nullableAttendeeRow struct {
	ID         uuid.NullUUID
	Name       *string
	Email      *string
	Role       *string
	Department *string
	CreatedAt  database.Timestamp
	UpdatedAt  database.Timestamp
}

func (r *nullableAttendeeRow) dest() []any {
	return []any{&r.ID, &r.Name, &r.Email, &r.Role, &r.Department, &r.CreatedAt, &r.UpdatedAt}
}

// toDomain returns false when the join produced no attendee.
func (r *nullableAttendeeRow) toDomain() (domain.Attendee, bool) {
	if !r.ID.Valid {
		return domain.Attendee{}, false
	}
	a := domain.Attendee{
		ID:         r.ID.UUID,
		Role:       r.Role,
		Department: r.Department,
		CreatedAt:  r.CreatedAt.Time,
		UpdatedAt:  r.UpdatedAt.Time,
	}
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Email != nil {
		a.Email = *r.Email
	}
	return a, true
}

// List returns attendees ordered by name, narrowed by a search over name and email.
func (r *AttendeeRepository) List(ctx context.Context, filter domain.AttendeeFilter) ([]domain.Attendee, error) {
	query := `SELECT ` + attendeeColumns + ` FROM attendees WHERE 1=1`
	var args []any

	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query += " AND " + searchClause(r.conn.Driver(), "name", "email")
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY name ASC, created_at ASC`
	query, args = appendPage(query, args, filter.Limit, filter.Offset)

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attendees := make([]domain.Attendee, 0)
	for rows.Next() {
		var row attendeeRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, err
		}
		attendees = append(attendees, row.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return attendees, nil
}

// FindByID retrieves a single attendee.
func (r *AttendeeRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Attendee, error) {
	var row attendeeRow
	err := r.conn.QueryRow(ctx, `SELECT `+attendeeColumns+` FROM attendees WHERE id = ?`, id).Scan(row.dest()...)
	if err != nil {
		return nil, notFound(err)
	}
	a := row.toDomain()
	return &a, nil
}

// Create inserts an attendee and returns the stored row.
func (r *AttendeeRepository) Create(ctx context.Context, in domain.AttendeeInsert) (*domain.Attendee, error) {
	query := `
		INSERT INTO attendees (name, email, role, department)
		VALUES (?, ?, ?, ?)
		RETURNING ` + attendeeColumns

	var row attendeeRow
	if err := r.conn.QueryRow(ctx, query, in.Name, in.Email, in.Role, in.Department).Scan(row.dest()...); err != nil {
		return nil, err
	}
	a := row.toDomain()
	return &a, nil
}

// Update applies the supplied fields, bumps updated_at and returns the full row.
func (r *AttendeeRepository) Update(ctx context.Context, id uuid.UUID, u domain.AttendeeUpdate) (*domain.Attendee, error) {
	var set setClause
	if u.Name != nil {
		set.add("name", *u.Name)
	}
	if u.Email != nil {
		set.add("email", *u.Email)
	}
	if u.Role != nil {
		set.add("role", *u.Role)
	}
	if u.Department != nil {
		set.add("department", *u.Department)
	}
	set.raw("updated_at = " + r.conn.Driver().Now())

	query := `UPDATE attendees SET ` + set.String() + ` WHERE id = ? RETURNING ` + attendeeColumns
	args := append(set.args, id)

	var row attendeeRow
	if err := r.conn.QueryRow(ctx, query, args...).Scan(row.dest()...); err != nil {
		return nil, notFound(err)
	}
	a := row.toDomain()
	return &a, nil
}

// Delete removes an attendee and, through the cascade, its links.
func (r *AttendeeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM attendees WHERE id = ?`, id)
	return err
}

var _ domain.AttendeeRepository = (*AttendeeRepository)(nil)

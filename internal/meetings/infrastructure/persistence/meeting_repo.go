package persistence

import (
	"context"

	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/database"
	"github.com/google/uuid"
)

const meetingColumns = `id, title, content, meeting_date, location, status, tags, created_by, created_at, updated_at`

// MeetingRepository implements domain.MeetingRepository for PostgreSQL and SQLite.
type MeetingRepository struct {
	conn database.Connection
}

// NewMeetingRepository creates a new meeting repository.
func NewMeetingRepository(conn database.Connection) *MeetingRepository {
	return &MeetingRepository{conn: conn}
}

type meetingRow struct {
	ID          uuid.UUID
	Title       string
	Content     string
	MeetingDate database.Timestamp
	Location    *string
	Status      string
	Tags        *string
	CreatedBy   uuid.NullUUID
	CreatedAt   database.Timestamp
	UpdatedAt   database.Timestamp
}

func (r *meetingRow) dest() []any {
	return []any{
		&r.ID,
		&r.Title,
		&r.Content,
		&r.MeetingDate,
		&r.Location,
		&r.Status,
		&r.Tags,
		&r.CreatedBy,
		&r.CreatedAt,
		&r.UpdatedAt,
	}
}

func (r *meetingRow) toDomain() (domain.MeetingMinute, error) {
	tags, err := decodeTags(r.Tags)
	if err != nil {
		return domain.MeetingMinute{}, err
	}
	m := domain.MeetingMinute{
		ID:          r.ID,
		Title:       r.Title,
		Content:     r.Content,
		MeetingDate: r.MeetingDate.Time,
		Location:    r.Location,
		Status:      domain.Status(r.Status),
		Tags:        tags,
		CreatedAt:   r.CreatedAt.Time,
		UpdatedAt:   r.UpdatedAt.Time,
	}
	if r.CreatedBy.Valid {
		id := r.CreatedBy.UUID
		m.CreatedBy = &id
	}
	return m, nil
}

// List returns meetings newest first, narrowed by status and a search over
// title and content.
func (r *MeetingRepository) List(ctx context.Context, filter domain.MeetingFilter) ([]domain.MeetingMinute, error) {
	query := `SELECT ` + meetingColumns + ` FROM meeting_minutes WHERE 1=1`
	var args []any

	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, string(filter.Status))
	}
	if filter.Search != "" {
		pattern := containsPattern(filter.Search)
		query += " AND " + searchClause(r.conn.Driver(), "title", "content")
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY meeting_date DESC, created_at DESC`
	query, args = appendPage(query, args, filter.Limit, filter.Offset)

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meetings := make([]domain.MeetingMinute, 0)
	for rows.Next() {
		var row meetingRow
		if err := rows.Scan(row.dest()...); err != nil {
			return nil, err
		}
		m, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return meetings, nil
}

// FindByID retrieves a single meeting record.
func (r *MeetingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.MeetingMinute, error) {
	query := `SELECT ` + meetingColumns + ` FROM meeting_minutes WHERE id = ?`

	var row meetingRow
	if err := r.conn.QueryRow(ctx, query, id).Scan(row.dest()...); err != nil {
		return nil, notFound(err)
	}
	m, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindDetail retrieves a meeting with its linked attendees in a single
// LEFT JOIN. Each link row is flattened into the attendee it points to.
func (r *MeetingRepository) FindDetail(ctx context.Context, id uuid.UUID) (*domain.MeetingDetail, error) {
	query := `
		SELECT m.id, m.title, m.content, m.meeting_date, m.location, m.status,
		       m.tags, m.created_by, m.created_at, m.updated_at,
		       a.id, a.name, a.email, a.role, a.department, a.created_at, a.updated_at,
		       ma.attendance_status
		FROM meeting_minutes m
		LEFT JOIN meeting_attendees ma ON ma.meeting_id = m.id
		LEFT JOIN attendees a ON a.id = ma.attendee_id
		WHERE m.id = ?
		ORDER BY a.name ASC, ma.created_at ASC
	`

	rows, err := r.conn.Query(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var detail *domain.MeetingDetail
	for rows.Next() {
		var (
			row    meetingRow
			att    nullableAttendeeRow
			status *string
		)
		dest := append(row.dest(), att.dest()...)
		dest = append(dest, &status)
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		if detail == nil {
			m, err := row.toDomain()
			if err != nil {
				return nil, err
			}
			detail = &domain.MeetingDetail{
				MeetingMinute: m,
				Attendees:     make([]domain.AttendeeWithStatus, 0),
			}
		}

		if a, ok := att.toDomain(); ok {
			entry := domain.AttendeeWithStatus{Attendee: a}
			if status != nil {
				entry.AttendanceStatus = domain.AttendanceStatus(*status)
			}
			detail.Attendees = append(detail.Attendees, entry)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if detail == nil {
		return nil, domain.ErrNotFound
	}
	return detail, nil
}

// Create inserts a meeting and returns the stored row.
func (r *MeetingRepository) Create(ctx context.Context, in domain.MeetingMinuteInsert) (*domain.MeetingMinute, error) {
	driver := r.conn.Driver()
	query := `
		INSERT INTO meeting_minutes (title, content, meeting_date, location, status, tags, created_by)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING ` + meetingColumns

	var row meetingRow
	err := r.conn.QueryRow(ctx, query,
		in.Title,
		in.Content,
		driver.TimeValue(in.MeetingDate),
		in.Location,
		string(in.Status),
		encodeTags(in.Tags),
		in.CreatedBy,
	).Scan(row.dest()...)
	if err != nil {
		return nil, err
	}
	m, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Update applies the supplied fields, bumps updated_at and returns the full row.
func (r *MeetingRepository) Update(ctx context.Context, id uuid.UUID, u domain.MeetingMinuteUpdate) (*domain.MeetingMinute, error) {
	driver := r.conn.Driver()

	var set setClause
	if u.Title != nil {
		set.add("title", *u.Title)
	}
	if u.Content != nil {
		set.add("content", *u.Content)
	}
	if u.MeetingDate != nil {
		set.add("meeting_date", driver.TimeValue(*u.MeetingDate))
	}
	if u.Location != nil {
		set.add("location", *u.Location)
	}
	if u.Status != nil {
		set.add("status", string(*u.Status))
	}
	if u.Tags != nil {
		set.add("tags", encodeTags(*u.Tags))
	}
	set.raw("updated_at = " + driver.Now())

	query := `UPDATE meeting_minutes SET ` + set.String() + ` WHERE id = ? RETURNING ` + meetingColumns
	args := append(set.args, id)

	var row meetingRow
	if err := r.conn.QueryRow(ctx, query, args...).Scan(row.dest()...); err != nil {
		return nil, notFound(err)
	}
	m, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Delete removes a meeting. Links are removed by the foreign key cascade.
func (r *MeetingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.conn.Exec(ctx, `DELETE FROM meeting_minutes WHERE id = ?`, id)
	return err
}

// Statuses projects the status column of every meeting.
func (r *MeetingRepository) Statuses(ctx context.Context) ([]domain.Status, error) {
	rows, err := r.conn.Query(ctx, `SELECT status FROM meeting_minutes`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	statuses := make([]domain.Status, 0)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		statuses = append(statuses, domain.Status(s))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return statuses, nil
}

var _ domain.MeetingRepository = (*MeetingRepository)(nil)

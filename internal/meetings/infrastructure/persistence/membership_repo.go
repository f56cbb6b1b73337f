package persistence

import (
	"context"

	"github.com/felixgeelhaar/minutes/internal/meetings/domain"
	"github.com/felixgeelhaar/minutes/internal/shared/infrastructure/database"
	"github.com/google/uuid"
)

const linkColumns = `id, meeting_id, attendee_id, attendance_status, created_at`

// MembershipRepository implements domain.MembershipRepository.
type MembershipRepository struct {
	conn database.Connection
}

// NewMembershipRepository creates a new membership repository.
func NewMembershipRepository(conn database.Connection) *MembershipRepository {
	return &MembershipRepository{conn: conn}
}

type linkRow struct {
	ID               uuid.UUID
	MeetingID        uuid.UUID
	AttendeeID       uuid.UUID
	AttendanceStatus string
	CreatedAt        database.Timestamp
}

func (r *linkRow) dest() []any {
	return []any{&r.ID, &r.MeetingID, &r.AttendeeID, &r.AttendanceStatus, &r.CreatedAt}
}

func (r *linkRow) toDomain() domain.MeetingAttendee {
	return domain.MeetingAttendee{
		ID:               r.ID,
		MeetingID:        r.MeetingID,
		AttendeeID:       r.AttendeeID,
		AttendanceStatus: domain.AttendanceStatus(r.AttendanceStatus),
		CreatedAt:        r.CreatedAt.Time,
	}
}

// Add links an attendee to a meeting.
func (r *MembershipRepository) Add(ctx context.Context, meetingID, attendeeID uuid.UUID, status domain.AttendanceStatus) (*domain.MeetingAttendee, error) {
	query := `
		INSERT INTO meeting_attendees (meeting_id, attendee_id, attendance_status)
		VALUES (?, ?, ?)
		RETURNING ` + linkColumns

	var row linkRow
	if err := r.conn.QueryRow(ctx, query, meetingID, attendeeID, string(status)).Scan(row.dest()...); err != nil {
		return nil, err
	}
	link := row.toDomain()
	return &link, nil
}

// Remove deletes the link identified by the meeting and attendee pair.
func (r *MembershipRepository) Remove(ctx context.Context, meetingID, attendeeID uuid.UUID) error {
	_, err := r.conn.Exec(ctx,
		`DELETE FROM meeting_attendees WHERE meeting_id = ? AND attendee_id = ?`,
		meetingID, attendeeID,
	)
	return err
}

// UpdateStatus changes the attendance status of an existing link.
func (r *MembershipRepository) UpdateStatus(ctx context.Context, meetingID, attendeeID uuid.UUID, status domain.AttendanceStatus) (*domain.MeetingAttendee, error) {
	query := `
		UPDATE meeting_attendees SET attendance_status = ?
		WHERE meeting_id = ? AND attendee_id = ?
		RETURNING ` + linkColumns

	var row linkRow
	if err := r.conn.QueryRow(ctx, query, string(status), meetingID, attendeeID).Scan(row.dest()...); err != nil {
		return nil, notFound(err)
	}
	link := row.toDomain()
	return &link, nil
}

// ListByMeeting returns the links of a meeting with the attendee nested in each.
func (r *MembershipRepository) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]domain.MeetingAttendeeWithAttendee, error) {
	query := `
		SELECT ma.id, ma.meeting_id, ma.attendee_id, ma.attendance_status, ma.created_at,
		       a.id, a.name, a.email, a.role, a.department, a.created_at, a.updated_at
		FROM meeting_attendees ma
		LEFT JOIN attendees a ON a.id = ma.attendee_id
		WHERE ma.meeting_id = ?
		ORDER BY a.name ASC, ma.created_at ASC
	`

	rows, err := r.conn.Query(ctx, query, meetingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make([]domain.MeetingAttendeeWithAttendee, 0)
	for rows.Next() {
		var (
			link linkRow
			att  nullableAttendeeRow
		)
		if err := rows.Scan(append(link.dest(), att.dest()...)...); err != nil {
			return nil, err
		}
		entry := domain.MeetingAttendeeWithAttendee{MeetingAttendee: link.toDomain()}
		if a, ok := att.toDomain(); ok {
			entry.Attendee = &a
		}
		links = append(links, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return links, nil
}

var _ domain.MembershipRepository = (*MembershipRepository)(nil)

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-chat-sync/models"
)

// buildUpsertSubscriptionQuery builds an INSERT ... ON CONFLICT query that
// creates or updates the subscription row identified by the record's room ID.
// Only fields present in the incoming record are written, so a partial delta
// never blanks out columns the server did not send. sessionID may be nil,
// which stores the row without an owning session.
func buildUpsertSubscriptionQuery(sub models.SubscriptionRecord, sessionID *string, now time.Time) (string, []any, error) {
	columns := []string{"rid", "session_id", "created_at", "updated_at"}
	values := []any{sub.RoomID, sessionID, now, now}

	// created_at is intentionally absent here: the original creation time
	// survives every later upsert.
	assignments := []string{
		"session_id = excluded.session_id",
		"updated_at = excluded.updated_at",
	}

	if sub.Name != "" {
		columns = append(columns, "name")
		values = append(values, sub.Name)
		assignments = append(assignments, "name = excluded.name")
	}
	if sub.FullName != nil {
		columns = append(columns, "fname")
		values = append(values, *sub.FullName)
		assignments = append(assignments, "fname = excluded.fname")
	}
	if sub.Type != "" {
		columns = append(columns, "room_type")
		values = append(values, string(sub.Type))
		assignments = append(assignments, "room_type = excluded.room_type")
	}
	if sub.Unread != nil {
		columns = append(columns, "unread")
		values = append(values, *sub.Unread)
		assignments = append(assignments, "unread = excluded.unread")
	}
	if sub.Alert != nil {
		columns = append(columns, "alert")
		values = append(values, *sub.Alert)
		assignments = append(assignments, "alert = excluded.alert")
	}
	if sub.Open != nil {
		columns = append(columns, "open")
		values = append(values, *sub.Open)
		assignments = append(assignments, "open = excluded.open")
	}
	if sub.LastSeen != nil {
		columns = append(columns, "last_seen")
		values = append(values, sub.LastSeen.Time)
		assignments = append(assignments, "last_seen = excluded.last_seen")
	}

	return sq.Insert("subscriptions").
		Columns(columns...).
		Values(values...).
		Suffix("ON CONFLICT (rid) DO UPDATE SET " + strings.Join(assignments, ", ")).
		PlaceholderFormat(sq.Dollar).
		ToSql()
}

// buildEnrichRoomQuery builds an UPDATE that copies room-level fields onto the
// matching subscription row. The query touches only fields present in the
// incoming record and never inserts: rooms the user has no subscription row
// for are left alone.
func buildEnrichRoomQuery(room models.RoomRecord) (string, []any, error) {
	query := sq.Update("subscriptions").
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"rid": room.RoomID}).
		PlaceholderFormat(sq.Dollar)

	if room.Name != nil {
		query = query.Set("name", *room.Name)
	}
	if room.Type != "" {
		query = query.Set("room_type", string(room.Type))
	}
	if room.Topic != nil {
		query = query.Set("topic", *room.Topic)
	}
	if room.Announcement != nil {
		query = query.Set("announcement", *room.Announcement)
	}
	if room.Description != nil {
		query = query.Set("description", *room.Description)
	}
	if room.ReadOnly != nil {
		query = query.Set("read_only", *room.ReadOnly)
	}

	return query.ToSql()
}

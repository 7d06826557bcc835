package models

import "github.com/tidwall/gjson"

// RoomRecord is one room entry of a server rooms payload.
//
// Rooms only enrich subscriptions that already exist locally: the merge
// writes the present fields onto the matching subscription row and never
// creates rows of its own.
type RoomRecord struct {
	// RoomID is the server-side room identifier ("_id" on the wire).
	RoomID string `json:"_id"`

	// Name is the optional short room name.
	Name *string `json:"name,omitempty"`

	// Type is the room classification, see [RoomType].
	Type RoomType `json:"t,omitempty"`

	// Topic is the optional room topic line.
	Topic *string `json:"topic,omitempty"`

	// Announcement is the optional room-wide announcement.
	Announcement *string `json:"announcement,omitempty"`

	// Description is the optional long room description.
	Description *string `json:"description,omitempty"`

	// ReadOnly reports whether posting to the room is restricted.
	ReadOnly *bool `json:"ro,omitempty"`

	// UpdatedAt is the server-side modification timestamp.
	UpdatedAt *WireDate `json:"_updatedAt,omitempty"`
}

// Valid reports whether the record carries the identity required for merging.
func (r RoomRecord) Valid() bool {
	return r.RoomID != ""
}

// HasUpdates reports whether the record carries at least one enrichable field.
func (r RoomRecord) HasUpdates() bool {
	return r.Name != nil || r.Type != "" || r.Topic != nil ||
		r.Announcement != nil || r.Description != nil || r.ReadOnly != nil
}

// RoomRecordFromJSON maps one loosely-typed legacy payload entry into a
// [RoomRecord]. Absent attributes stay nil.
func RoomRecordFromJSON(raw gjson.Result) RoomRecord {
	record := RoomRecord{
		RoomID: raw.Get("_id").String(),
		Type:   RoomType(raw.Get("t").String()),
	}

	if value := raw.Get("name"); value.Exists() {
		name := value.String()
		record.Name = &name
	}
	if value := raw.Get("topic"); value.Exists() {
		topic := value.String()
		record.Topic = &topic
	}
	if value := raw.Get("announcement"); value.Exists() {
		announcement := value.String()
		record.Announcement = &announcement
	}
	if value := raw.Get("description"); value.Exists() {
		description := value.String()
		record.Description = &description
	}
	if value := raw.Get("ro"); value.Exists() {
		readOnly := value.Bool()
		record.ReadOnly = &readOnly
	}
	if updatedAt, ok := WireDateFromJSON(raw.Get("_updatedAt")); ok {
		record.UpdatedAt = &updatedAt
	}

	return record
}

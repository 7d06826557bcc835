// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/tidwall/gjson"
)

// RoomType classifies a conversation on the server side.
type RoomType string

// Room types of the chat protocol.
const (
	RoomTypeChannel  RoomType = "c"
	RoomTypeDirect   RoomType = "d"
	RoomTypePrivate  RoomType = "p"
	RoomTypeLivechat RoomType = "l"
)

// SubscriptionRecord is one subscription entry of a server delta payload.
//
// Optional attributes are pointers: a nil field means the server omitted the
// attribute and the locally stored value must be preserved. RoomID is the
// merge identity and the only field a record cannot live without.
type SubscriptionRecord struct {
	// RoomID is the server-side room identifier ("rid" on the wire).
	RoomID string `json:"rid"`

	// Name is the short room name used for lists and lookups.
	Name string `json:"name"`

	// FullName is the optional human-readable display name.
	FullName *string `json:"fname,omitempty"`

	// Type is the room classification, see [RoomType].
	Type RoomType `json:"t"`

	// Unread is the server-counted number of unread messages.
	Unread *int64 `json:"unread,omitempty"`

	// Alert reports whether the room demands the user's attention.
	Alert *bool `json:"alert,omitempty"`

	// Open reports whether the room is visible in the user's room list.
	Open *bool `json:"open,omitempty"`

	// LastSeen is the moment the user last viewed the room.
	LastSeen *WireDate `json:"ls,omitempty"`

	// UpdatedAt is the server-side modification timestamp.
	UpdatedAt *WireDate `json:"_updatedAt,omitempty"`
}

// Valid reports whether the record carries the identity required for merging.
func (r SubscriptionRecord) Valid() bool {
	return r.RoomID != ""
}

// SubscriptionRecordFromJSON maps one loosely-typed legacy payload entry into
// a [SubscriptionRecord]. Absent attributes stay nil.
func SubscriptionRecordFromJSON(raw gjson.Result) SubscriptionRecord {
	record := SubscriptionRecord{
		RoomID: raw.Get("rid").String(),
		Name:   raw.Get("name").String(),
		Type:   RoomType(raw.Get("t").String()),
	}

	if value := raw.Get("fname"); value.Exists() {
		fullName := value.String()
		record.FullName = &fullName
	}
	if value := raw.Get("unread"); value.Exists() {
		unread := value.Int()
		record.Unread = &unread
	}
	if value := raw.Get("alert"); value.Exists() {
		alert := value.Bool()
		record.Alert = &alert
	}
	if value := raw.Get("open"); value.Exists() {
		open := value.Bool()
		record.Open = &open
	}
	if lastSeen, ok := WireDateFromJSON(raw.Get("ls")); ok {
		record.LastSeen = &lastSeen
	}
	if updatedAt, ok := WireDateFromJSON(raw.Get("_updatedAt")); ok {
		record.UpdatedAt = &updatedAt
	}

	return record
}

// Subscription is the locally persisted subscription row.
//
// SessionID links the row to the session that owns it. Removal never deletes
// the row: it only clears the link, so message history tied to the room stays
// addressable. A later upsert for the same room re-establishes the link.
type Subscription struct {
	RoomID       string
	SessionID    *string
	Name         string
	FullName     *string
	Type         RoomType
	Unread       int64
	Alert        bool
	Open         bool
	ReadOnly     bool
	Topic        *string
	Announcement *string
	Description  *string
	LastSeen     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Owned reports whether the row is linked to a session.
func (s Subscription) Owned() bool {
	return s.SessionID != nil && *s.SessionID != ""
}

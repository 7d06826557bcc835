// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SubscriptionBatch is the normalized merge input produced from one server
// delta. Upserts keep payload order with full-state entries ahead of update
// entries, so a later record for the same room wins. FetchedAt becomes the
// new subscriptions watermark in the same transaction that applies the batch.
type SubscriptionBatch struct {
	// SessionID is the owning session the upserted rows get linked to.
	SessionID string

	// FetchedAt is the moment the delta was obtained from the server.
	FetchedAt time.Time

	// Upserts are the records to create or refresh.
	Upserts []SubscriptionRecord

	// Removals are the records whose session link must be cleared.
	Removals []SubscriptionRecord

	// Dropped counts payload entries discarded for missing identity.
	Dropped int
}

// Empty reports whether the batch changes no rows.
func (b SubscriptionBatch) Empty() bool {
	return len(b.Upserts) == 0 && len(b.Removals) == 0
}

// RoomBatch is the normalized merge input produced from one rooms payload.
type RoomBatch struct {
	// Rooms are the enrichment records to match against stored subscriptions.
	Rooms []RoomRecord

	// Dropped counts payload entries discarded for missing identity.
	Dropped int
}

// Empty reports whether the batch carries no rooms.
func (b RoomBatch) Empty() bool {
	return len(b.Rooms) == 0
}

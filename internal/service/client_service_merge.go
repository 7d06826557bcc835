package service

import (
	"time"

	"github.com/MKhiriev/go-chat-sync/models"
	"github.com/tidwall/gjson"
)

// buildSubscriptionBatch normalizes one subscription delta into merge input.
// Full-state entries (list) go ahead of update entries, so for a room present
// in both groups the update lands last and wins. Records without a room id
// are dropped and counted.
func buildSubscriptionBatch(sessionID string, fetchedAt time.Time, list, update, remove []models.SubscriptionRecord) models.SubscriptionBatch {
	batch := models.SubscriptionBatch{
		SessionID: sessionID,
		FetchedAt: fetchedAt,
		Upserts:   make([]models.SubscriptionRecord, 0, len(list)+len(update)),
		Removals:  make([]models.SubscriptionRecord, 0, len(remove)),
	}

	for _, record := range list {
		if !record.Valid() {
			batch.Dropped++
			continue
		}
		batch.Upserts = append(batch.Upserts, record)
	}
	for _, record := range update {
		if !record.Valid() {
			batch.Dropped++
			continue
		}
		batch.Upserts = append(batch.Upserts, record)
	}
	for _, record := range remove {
		if !record.Valid() {
			batch.Dropped++
			continue
		}
		batch.Removals = append(batch.Removals, record)
	}

	return batch
}

// buildRoomBatch normalizes one rooms delta into merge input. Full-state
// entries (list) go ahead of update entries, so for a room present in both
// groups the update lands last and wins. Records without a room id are
// dropped and counted.
func buildRoomBatch(list, update []models.RoomRecord) models.RoomBatch {
	batch := models.RoomBatch{Rooms: make([]models.RoomRecord, 0, len(list)+len(update))}

	for _, group := range [][]models.RoomRecord{list, update} {
		for _, room := range group {
			if !room.Valid() {
				batch.Dropped++
				continue
			}
			batch.Rooms = append(batch.Rooms, room)
		}
	}

	return batch
}

// splitLegacySubscriptions maps a legacy subscriptions/get result onto the
// three delta groups. The oldest servers answer with a bare array carrying
// the full subscription state; later legacy servers answer with update and
// remove groups.
func splitLegacySubscriptions(result gjson.Result) (list, update, remove []models.SubscriptionRecord) {
	if result.IsArray() {
		for _, raw := range result.Array() {
			list = append(list, models.SubscriptionRecordFromJSON(raw))
		}
		return list, nil, nil
	}

	for _, raw := range result.Get("update").Array() {
		update = append(update, models.SubscriptionRecordFromJSON(raw))
	}
	for _, raw := range result.Get("remove").Array() {
		remove = append(remove, models.SubscriptionRecordFromJSON(raw))
	}
	return nil, update, remove
}

// splitLegacyRooms maps a legacy rooms/get result onto enrichment records.
// Removal groups are ignored: rooms only ever enrich stored subscriptions.
func splitLegacyRooms(result gjson.Result) []models.RoomRecord {
	source := result
	if !result.IsArray() {
		source = result.Get("update")
	}

	var rooms []models.RoomRecord
	for _, raw := range source.Array() {
		rooms = append(rooms, models.RoomRecordFromJSON(raw))
	}
	return rooms
}

package models

// SyncOutcome is the terminal state of one sync operation. Every call ends in
// exactly one of the three outcomes.
type SyncOutcome string

const (
	// SyncApplied means a batch was merged into the local store.
	SyncApplied SyncOutcome = "applied"

	// SyncSkipped means the server declined the fetch and nothing changed.
	SyncSkipped SyncOutcome = "skipped"

	// SyncFailed means the operation aborted; the error return carries the kind.
	SyncFailed SyncOutcome = "failed"
)

// SyncProtocol identifies the protocol generation that served an operation.
type SyncProtocol string

const (
	// ProtocolAPI is the typed HTTP API.
	ProtocolAPI SyncProtocol = "api"

	// ProtocolRealtime is the legacy method-call channel.
	ProtocolRealtime SyncProtocol = "realtime"
)

// SyncResult summarizes one sync operation.
type SyncResult struct {
	Outcome  SyncOutcome
	Protocol SyncProtocol

	// Upserted and Removed count subscription rows written by the batch.
	Upserted int
	Removed  int

	// Matched counts room records that found a stored subscription to enrich.
	Matched int

	// Dropped counts payload entries that were discarded for missing identity.
	Dropped int
}

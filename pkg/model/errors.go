package model

import "errors"

// Error taxonomy shared across services and handlers. Handlers match these
// with errors.Is to pick the HTTP status and the bilingual user message.
var (
	// ErrDistrictNotFound is returned when no district exists for an id.
	ErrDistrictNotFound = errors.New("district not found")

	// ErrNoCandidates is returned by nearest-district resolution when no
	// district in the catalog carries coordinates.
	ErrNoCandidates = errors.New("no districts with coordinates")

	// ErrStoreUnavailable wraps driver errors when the backing store
	// cannot be reached.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrFeedUnavailable marks a per-district feed failure. It is absorbed
	// by the ingestion job and counted, never fatal for the run.
	ErrFeedUnavailable = errors.New("feed unavailable")

	// ErrIngestionAborted marks a fatal ingestion run failure: the catalog
	// could not be loaded or the batch write failed.
	ErrIngestionAborted = errors.New("ingestion aborted")
)

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package workoutstore

import (
	"github.com/rs/zerolog"
)

// Log event names
const (
	EventTypeAdded     = "workout_type_added"
	EventWorkoutLogged = "workout_logged"
	EventEntryDeleted  = "entry_deleted"
	EventPageServed    = "page_served"
	EventStorageError  = "storage_error"
)

// logWrite logs a successful upsert of one entry.
func logWrite(logger zerolog.Logger, event, owner, sortKey string) {
	logger.Info().
		Str("event", event).
		Str("owner", owner).
		Str("sort_key", sortKey).
		Msg("Entry written")
}

// logDelete logs removal of one entry.
func logDelete(logger zerolog.Logger, owner, sortKey string) {
	logger.Info().
		Str("event", EventEntryDeleted).
		Str("owner", owner).
		Str("sort_key", sortKey).
		Msg("Entry deleted")
}

// logPage logs one served result page.
func logPage(logger zerolog.Logger, operation, owner string, count int, more bool) {
	logger.Debug().
		Str("event", EventPageServed).
		Str("operation", operation).
		Str("owner", owner).
		Int("items", count).
		Bool("more", more).
		Msg("Page served")
}

// logStorageError logs a storage failure. The key is logged; the
// attribute payload never is.
func logStorageError(logger zerolog.Logger, operation, owner, key string, err error) {
	logger.Error().
		Str("event", EventStorageError).
		Str("operation", operation).
		Str("owner", owner).
		Str("key", key).
		Err(err).
		Msg("Storage call failed")
}

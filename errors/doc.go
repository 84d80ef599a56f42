/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package errors defines the error taxonomy for workoutstore.

Three sentinel errors partition every failure the module can produce:

  - ErrInvalidField: input rejected before any I/O; the caller must
    correct the input, automatic retries will not help.
  - ErrMalformedKey: data read back from the store does not match a
    recognized key shape; treated as corruption and surfaced.
  - ErrStorageUnavailable: the storage capability failed or the call was
    cancelled; callers may retry with backoff, the module itself never
    retries.

An empty query result is not an error.

All errors support errors.Is against their sentinel, and
StorageUnavailableError additionally supports errors.As and Unwrap so the
underlying SDK or context error stays reachable:

	if errors.IsStorageUnavailable(err) && !errors.IsCancelled(err) {
		// back off and retry
	}
*/
package errors

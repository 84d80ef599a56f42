/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package keycodec encodes and decodes the composite keys that let workout
type entries and workout log entries share one partitioned table.

The partition key is the opaque owner identifier. The sort key is a
composite string with the entry kind as discriminant prefix:

	Type#<TypeName>           workout type entry
	Workout#<TypeName>#<Date> workout log entry, primary ordering

Field order inside the composite is the central design decision: kind
first so each kind occupies a contiguous key range, then the field most
commonly filtered (the workout type), then the field used for
fine-grained ranges (the date). The byDate secondary ordering, which
swaps the last two fields, lives in package projection.

Dates are always the fixed-width form YYYY-MM-DD, because sort key
ordering is plain byte ordering and any other rendering breaks range
queries. The codec is the only writer of key material; callers never
concatenate key fragments themselves.
*/
package keycodec

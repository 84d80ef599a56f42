/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package projection

import (
	"strings"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/workoutstore/errors"
	"github.com/suparena/workoutstore/keycodec"
)

// Project derives the byDate ordering key for a workout log entry:
// the same owner partition, with sort key Workout#<Date>#<TypeName>.
// Pure function, called once per log entry write alongside the primary
// encoding; the store maintains the byDate index from the attributes.
// Validation is shared with the key codec, so invalid input fails with
// the same InvalidFieldError the primary encoding would produce.
func Project(owner, typeName string, date strfmt.Date) (pk, sk string, err error) {
	if _, _, err := keycodec.EncodeWorkoutKey(owner, typeName, date); err != nil {
		return "", "", err
	}
	prefix, err := keycodec.WorkoutDatePrefix(date)
	if err != nil {
		return "", "", err
	}
	return owner, prefix + typeName, nil
}

// Decode parses a byDate sort key back into its date and type name.
// Entity decoding uses it to audit the index shadow a stored item
// carries; entities themselves are rebuilt from their denormalized
// attributes, never from keys.
func Decode(sortKey string) (date strfmt.Date, typeName string, err error) {
	parts := strings.Split(sortKey, keycodec.Separator)
	if len(parts) != 3 || keycodec.Kind(parts[0]) != keycodec.KindWorkout || parts[2] == "" {
		return strfmt.Date{}, "", errors.NewMalformedKeyError(sortKey, "want Workout#<Date>#<TypeName>")
	}
	date, err = keycodec.ParseDate(parts[1])
	if err != nil {
		return strfmt.Date{}, "", errors.NewMalformedKeyError(sortKey, "date field is not canonical")
	}
	return date, parts[2], nil
}

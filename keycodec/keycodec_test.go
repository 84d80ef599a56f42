/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package keycodec

import (
	"strings"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/workoutstore/errors"
)

func date(s string) strfmt.Date {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return strfmt.Date(t)
}

func TestEncodeTypeKeyRoundTrip(t *testing.T) {
	pk, sk, err := EncodeTypeKey("User1", "Swimming")
	require.NoError(t, err)
	assert.Equal(t, "User1", pk)
	assert.Equal(t, "Type#Swimming", sk)

	decoded, err := Decode(sk)
	require.NoError(t, err)
	assert.Equal(t, KindType, decoded.Kind)
	assert.Equal(t, "Swimming", decoded.TypeName)
}

func TestEncodeWorkoutKeyRoundTrip(t *testing.T) {
	pk, sk, err := EncodeWorkoutKey("User1", "Swimming", date("2024-03-21"))
	require.NoError(t, err)
	assert.Equal(t, "User1", pk)
	assert.Equal(t, "Workout#Swimming#2024-03-21", sk)

	decoded, err := Decode(sk)
	require.NoError(t, err)
	assert.Equal(t, KindWorkout, decoded.Kind)
	assert.Equal(t, "Swimming", decoded.TypeName)
	assert.Equal(t, "2024-03-21", time.Time(decoded.Date).Format(DateLayout))
}

func TestDateOrderingIsLexicographic(t *testing.T) {
	dates := []string{
		"1999-12-31",
		"2024-01-09",
		"2024-01-10",
		"2024-03-21",
		"2024-10-02",
		"2025-01-01",
	}
	for i := 1; i < len(dates); i++ {
		_, prev, err := EncodeWorkoutKey("User1", "Running", date(dates[i-1]))
		require.NoError(t, err)
		_, next, err := EncodeWorkoutKey("User1", "Running", date(dates[i]))
		require.NoError(t, err)
		assert.Less(t, prev, next, "%s must sort before %s", dates[i-1], dates[i])
	}
}

func TestPrefixCorrectness(t *testing.T) {
	_, sk, err := EncodeWorkoutKey("User1", "Swimming", date("2024-03-21"))
	require.NoError(t, err)

	byType, err := WorkoutTypePrefix("Swimming")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(sk, WorkoutPrefix()))
	assert.True(t, strings.HasPrefix(sk, byType))
}

func TestWorkoutTypePrefixDoesNotMatchExtensions(t *testing.T) {
	_, swimming, err := EncodeWorkoutKey("User1", "Swimming", date("2024-03-21"))
	require.NoError(t, err)

	swimPrefix, err := WorkoutTypePrefix("Swim")
	require.NoError(t, err)

	assert.False(t, strings.HasPrefix(swimming, swimPrefix))
}

func TestOwnerIsolation(t *testing.T) {
	pkA, _, err := EncodeTypeKey("UserA", "Swimming")
	require.NoError(t, err)
	pkB, _, err := EncodeTypeKey("UserB", "Swimming")
	require.NoError(t, err)
	assert.NotEqual(t, pkA, pkB)
}

func TestEncodeRejectsSeparatorInTypeName(t *testing.T) {
	_, _, err := EncodeWorkoutKey("User1", "Swim#ming", date("2024-03-21"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidField(err))

	_, _, err = EncodeTypeKey("User1", "Swim#ming")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidField(err))

	_, err = WorkoutTypePrefix("Swim#ming")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidField(err))
}

func TestEncodeRejectsEmptyFields(t *testing.T) {
	_, _, err := EncodeTypeKey("", "Swimming")
	assert.True(t, errors.IsInvalidField(err))

	_, _, err = EncodeTypeKey("User1", "")
	assert.True(t, errors.IsInvalidField(err))

	_, _, err = EncodeWorkoutKey("User1", "Swimming", strfmt.Date{})
	assert.True(t, errors.IsInvalidField(err))
}

func TestDecodeRejectsUnknownShapes(t *testing.T) {
	cases := []string{
		"",
		"Type#",
		"Type#Swimming#extra",
		"Workout#Swimming",
		"Workout##2024-03-21",
		"Workout#Swimming#21-03-2024",
		"Workout#Swimming#2024-3-21",
		"Workout#2024-03-21#Swimming", // byDate ordering is not a primary key
		"Bogus#anything",
	}
	for _, sk := range cases {
		_, err := Decode(sk)
		assert.True(t, errors.IsMalformedKey(err), "expected malformed key for %q", sk)
	}
}

func TestCanonicalDate(t *testing.T) {
	s, err := CanonicalDate(date("2024-03-05"))
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", s)

	_, err = CanonicalDate(strfmt.Date{})
	assert.True(t, errors.IsInvalidField(err))

	_, err = CanonicalDate(strfmt.Date(time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, errors.IsInvalidField(err))
}

func TestParseDateRequiresCanonicalForm(t *testing.T) {
	d, err := ParseDate("2024-03-21")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-21", time.Time(d).Format(DateLayout))

	for _, s := range []string{"2024-3-21", "24-03-21", "2024/03/21", "2024-03-21T00:00:00Z"} {
		_, err := ParseDate(s)
		assert.True(t, errors.IsInvalidField(err), "expected rejection of %q", s)
	}
}

func TestWorkoutRangeBounds(t *testing.T) {
	lower, upper, err := WorkoutRangeBounds("Running", date("2024-01-01"), date("2024-01-31"))
	require.NoError(t, err)
	assert.Equal(t, "Workout#Running#2024-01-01", lower)
	assert.Equal(t, "Workout#Running#2024-01-31", upper)

	_, _, err = WorkoutRangeBounds("Running", date("2024-02-01"), date("2024-01-01"))
	assert.True(t, errors.IsInvalidField(err))
}

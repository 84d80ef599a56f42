/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package projection

import (
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/workoutstore/errors"
	"github.com/suparena/workoutstore/keycodec"
)

func date(s string) strfmt.Date {
	t, err := time.Parse(keycodec.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return strfmt.Date(t)
}

func TestProject(t *testing.T) {
	pk, sk, err := Project("User1", "Swimming", date("2024-03-21"))
	require.NoError(t, err)
	assert.Equal(t, "User1", pk, "byDate index carries the same partition key")
	assert.Equal(t, "Workout#2024-03-21#Swimming", sk)
}

func TestProjectIsDeterministic(t *testing.T) {
	_, first, err := Project("User1", "Swimming", date("2024-03-21"))
	require.NoError(t, err)
	_, second, err := Project("User1", "Swimming", date("2024-03-21"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProjectPropagatesCodecValidation(t *testing.T) {
	_, _, err := Project("", "Swimming", date("2024-03-21"))
	assert.True(t, errors.IsInvalidField(err))

	_, _, err = Project("User1", "Swim#ming", date("2024-03-21"))
	assert.True(t, errors.IsInvalidField(err))

	_, _, err = Project("User1", "Swimming", strfmt.Date{})
	assert.True(t, errors.IsInvalidField(err))
}

func TestDecodeRoundTrip(t *testing.T) {
	_, sk, err := Project("User1", "Swimming", date("2024-03-21"))
	require.NoError(t, err)

	d, typeName, err := Decode(sk)
	require.NoError(t, err)
	assert.Equal(t, "Swimming", typeName)
	assert.Equal(t, "2024-03-21", time.Time(d).Format(keycodec.DateLayout))
}

func TestDecodeRejectsPrimaryOrdering(t *testing.T) {
	// Primary sort keys put the type name before the date.
	_, _, err := Decode("Workout#Swimming#2024-03-21")
	assert.True(t, errors.IsMalformedKey(err))

	_, _, err = Decode("Type#Swimming")
	assert.True(t, errors.IsMalformedKey(err))
}

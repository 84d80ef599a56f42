/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package keycodec

import (
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/suparena/workoutstore/errors"
)

// Separator is the reserved byte between the fields of a composite sort
// key. Discriminator values containing it are rejected, never escaped.
const Separator = "#"

// DateLayout is the canonical calendar date form. Fixed width and
// zero padded so that byte order equals calendar order; any other
// rendering would break range queries.
const DateLayout = "2006-01-02"

// Kind discriminates the two entry shapes sharing the table.
type Kind string

const (
	// KindType tags workout type entries: Type#<TypeName>.
	KindType Kind = "Type"

	// KindWorkout tags workout log entries: Workout#<TypeName>#<Date>.
	KindWorkout Kind = "Workout"
)

// DecodedKey is the result of decoding a primary sort key.
type DecodedKey struct {
	Kind     Kind
	TypeName string
	// Date is set only for KindWorkout.
	Date strfmt.Date
}

// EncodeTypeKey builds the primary key pair for a workout type entry.
func EncodeTypeKey(owner, typeName string) (pk, sk string, err error) {
	if err := ValidateOwner(owner); err != nil {
		return "", "", err
	}
	if err := validateDiscriminator("TypeName", typeName); err != nil {
		return "", "", err
	}
	return owner, string(KindType) + Separator + typeName, nil
}

// EncodeWorkoutKey builds the primary key pair for a workout log entry.
// Two log entries with the same owner, type and date encode to the same
// key pair; writes to that pair are last-write-wins.
func EncodeWorkoutKey(owner, typeName string, date strfmt.Date) (pk, sk string, err error) {
	if err := ValidateOwner(owner); err != nil {
		return "", "", err
	}
	if err := validateDiscriminator("TypeName", typeName); err != nil {
		return "", "", err
	}
	canonical, err := CanonicalDate(date)
	if err != nil {
		return "", "", err
	}
	return owner, string(KindWorkout) + Separator + typeName + Separator + canonical, nil
}

// Decode parses a primary sort key back into its entry kind and
// discriminator fields. Keys that match neither recognized shape fail
// with a MalformedKeyError.
func Decode(sortKey string) (*DecodedKey, error) {
	parts := strings.Split(sortKey, Separator)
	switch Kind(parts[0]) {
	case KindType:
		if len(parts) != 2 || parts[1] == "" {
			return nil, errors.NewMalformedKeyError(sortKey, "want Type#<TypeName>")
		}
		return &DecodedKey{Kind: KindType, TypeName: parts[1]}, nil

	case KindWorkout:
		if len(parts) != 3 || parts[1] == "" {
			return nil, errors.NewMalformedKeyError(sortKey, "want Workout#<TypeName>#<Date>")
		}
		date, err := ParseDate(parts[2])
		if err != nil {
			return nil, errors.NewMalformedKeyError(sortKey, "date field is not canonical")
		}
		return &DecodedKey{Kind: KindWorkout, TypeName: parts[1], Date: date}, nil

	default:
		return nil, errors.NewMalformedKeyError(sortKey, "unknown entry kind")
	}
}

// TypePrefix returns the sort key prefix covering every type entry.
func TypePrefix() string {
	return string(KindType) + Separator
}

// WorkoutPrefix returns the sort key prefix covering every log entry.
func WorkoutPrefix() string {
	return string(KindWorkout) + Separator
}

// WorkoutTypePrefix returns the sort key prefix covering log entries of
// one workout type. The trailing separator keeps "Swim" from matching
// "Swimming" entries.
func WorkoutTypePrefix(typeName string) (string, error) {
	if err := validateDiscriminator("TypeName", typeName); err != nil {
		return "", err
	}
	return string(KindWorkout) + Separator + typeName + Separator, nil
}

// WorkoutDatePrefix returns the byDate sort key prefix covering log
// entries of one calendar date. Only meaningful against the byDate
// index, whose sort key puts the date first.
func WorkoutDatePrefix(date strfmt.Date) (string, error) {
	canonical, err := CanonicalDate(date)
	if err != nil {
		return "", err
	}
	return string(KindWorkout) + Separator + canonical + Separator, nil
}

// WorkoutRangeBounds returns inclusive lower/upper sort key bounds for
// log entries of one type between two dates.
func WorkoutRangeBounds(typeName string, from, to strfmt.Date) (lower, upper string, err error) {
	if err := validateDiscriminator("TypeName", typeName); err != nil {
		return "", "", err
	}
	fromCanonical, err := CanonicalDate(from)
	if err != nil {
		return "", "", err
	}
	toCanonical, err := CanonicalDate(to)
	if err != nil {
		return "", "", err
	}
	if toCanonical < fromCanonical {
		return "", "", errors.NewInvalidFieldError("Date", "range upper bound precedes lower bound")
	}
	base := string(KindWorkout) + Separator + typeName + Separator
	return base + fromCanonical, base + toCanonical, nil
}

// CanonicalDate renders a date in the canonical fixed-width form, or
// fails with an InvalidFieldError if the date cannot be represented in
// it. The zero date is rejected rather than rendered, since a silently
// substituted date would corrupt key ordering.
func CanonicalDate(date strfmt.Date) (string, error) {
	t := time.Time(date)
	if t.IsZero() {
		return "", errors.NewInvalidFieldError("Date", "date is not set")
	}
	if t.Year() < 1 || t.Year() > 9999 {
		return "", errors.NewInvalidFieldError("Date", "year outside fixed-width range")
	}
	return t.Format(DateLayout), nil
}

// ParseDate parses a canonical date string. It round-trips through
// CanonicalDate so padded or otherwise non-canonical spellings fail.
func ParseDate(s string) (strfmt.Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return strfmt.Date{}, errors.NewInvalidFieldError("Date", "not a canonical calendar date")
	}
	if t.Format(DateLayout) != s {
		return strfmt.Date{}, errors.NewInvalidFieldError("Date", "not a canonical calendar date")
	}
	return strfmt.Date(t), nil
}

// ValidateOwner checks the partition key value. Owners are opaque; the
// only requirement is that they are not empty.
func ValidateOwner(owner string) error {
	if owner == "" {
		return errors.NewInvalidFieldError("Owner", "must not be empty")
	}
	return nil
}

func validateDiscriminator(field, value string) error {
	if value == "" {
		return errors.NewInvalidFieldError(field, "must not be empty")
	}
	if strings.Contains(value, Separator) {
		return errors.NewInvalidFieldError(field, "must not contain the reserved separator "+Separator)
	}
	return nil
}

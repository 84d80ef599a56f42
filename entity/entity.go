/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package entity

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/go-openapi/strfmt"

	"github.com/suparena/workoutstore/errors"
	"github.com/suparena/workoutstore/keycodec"
	"github.com/suparena/workoutstore/projection"
	"github.com/suparena/workoutstore/registry"
	"github.com/suparena/workoutstore/storagemodels"
)

func init() {
	registry.RegisterKind(string(keycodec.KindType), func(item storagemodels.Item) (interface{}, error) {
		return DecodeWorkoutType(item)
	})
	registry.RegisterKind(string(keycodec.KindWorkout), func(item storagemodels.Item) (interface{}, error) {
		return DecodeWorkoutLog(item)
	})
}

// WorkoutType is a workout type entry: a named kind of workout an owner
// tracks, with a free-form description.
type WorkoutType struct {
	Owner       string
	Name        string
	Description string
}

// WorkoutLog is a workout log entry: one performed workout of a given
// type on a given date, with an opaque attribute payload (duration,
// calories, ...) the module stores but never interprets.
type WorkoutLog struct {
	Owner       string
	WorkoutType string
	Date        strfmt.Date
	Attributes  map[string]string
}

// Stored item shapes. TypeName and Date live both inside the composite
// sort keys and as standalone attributes; Item() writes both from the
// same fields, so they cannot diverge.
type workoutTypeRecord struct {
	PK          string `dynamodbav:"PK"`
	SK          string `dynamodbav:"SK"`
	EntityType  string `dynamodbav:"EntityType"`
	Name        string `dynamodbav:"Name"`
	Description string `dynamodbav:"Description,omitempty"`
}

type workoutLogRecord struct {
	PK          string            `dynamodbav:"PK"`
	SK          string            `dynamodbav:"SK"`
	PK1         string            `dynamodbav:"PK1"`
	SK1         string            `dynamodbav:"SK1"`
	EntityType  string            `dynamodbav:"EntityType"`
	WorkoutType string            `dynamodbav:"WorkoutType"`
	Date        string            `dynamodbav:"Date"`
	Attributes  map[string]string `dynamodbav:"Attributes,omitempty"`
}

// NewWorkoutType validates and builds a workout type entry.
func NewWorkoutType(owner, name, description string) (*WorkoutType, error) {
	if _, _, err := keycodec.EncodeTypeKey(owner, name); err != nil {
		return nil, err
	}
	return &WorkoutType{Owner: owner, Name: name, Description: description}, nil
}

// NewWorkoutLog validates and builds a workout log entry. The attribute
// payload is copied so later caller mutation cannot leak into a write.
func NewWorkoutLog(owner, typeName string, date strfmt.Date, attributes map[string]string) (*WorkoutLog, error) {
	if _, _, err := keycodec.EncodeWorkoutKey(owner, typeName, date); err != nil {
		return nil, err
	}
	var attrs map[string]string
	if len(attributes) > 0 {
		attrs = make(map[string]string, len(attributes))
		for k, v := range attributes {
			attrs[k] = v
		}
	}
	return &WorkoutLog{Owner: owner, WorkoutType: typeName, Date: date, Attributes: attrs}, nil
}

// Item renders the full stored item for a workout type entry.
func (w *WorkoutType) Item() (storagemodels.Item, error) {
	pk, sk, err := keycodec.EncodeTypeKey(w.Owner, w.Name)
	if err != nil {
		return nil, err
	}
	record := workoutTypeRecord{
		PK:          pk,
		SK:          sk,
		EntityType:  string(keycodec.KindType),
		Name:        w.Name,
		Description: w.Description,
	}
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal workout type: %w", err)
	}
	return item, nil
}

// SortKey returns the primary sort key for this entry.
func (w *WorkoutType) SortKey() (string, error) {
	_, sk, err := keycodec.EncodeTypeKey(w.Owner, w.Name)
	return sk, err
}

// Item renders the full stored item for a workout log entry, including
// the byDate index attributes. Primary key and index shadow are written
// together in the one item; the store keeps the index itself in sync.
func (w *WorkoutLog) Item() (storagemodels.Item, error) {
	pk, sk, err := keycodec.EncodeWorkoutKey(w.Owner, w.WorkoutType, w.Date)
	if err != nil {
		return nil, err
	}
	pk1, sk1, err := projection.Project(w.Owner, w.WorkoutType, w.Date)
	if err != nil {
		return nil, err
	}
	canonical, err := keycodec.CanonicalDate(w.Date)
	if err != nil {
		return nil, err
	}
	record := workoutLogRecord{
		PK:          pk,
		SK:          sk,
		PK1:         pk1,
		SK1:         sk1,
		EntityType:  string(keycodec.KindWorkout),
		WorkoutType: w.WorkoutType,
		Date:        canonical,
		Attributes:  w.Attributes,
	}
	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal workout log: %w", err)
	}
	return item, nil
}

// SortKey returns the primary sort key for this entry.
func (w *WorkoutLog) SortKey() (string, error) {
	_, sk, err := keycodec.EncodeWorkoutKey(w.Owner, w.WorkoutType, w.Date)
	return sk, err
}

// DecodeWorkoutType rebuilds a workout type entry from a raw item. The
// denormalized attributes are authoritative; the sort key is cross
// checked against them so silent divergence surfaces as corruption.
func DecodeWorkoutType(item storagemodels.Item) (*WorkoutType, error) {
	var record workoutTypeRecord
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, errors.NewMalformedKeyError(record.SK, "unreadable workout type item")
	}
	decoded, err := keycodec.Decode(record.SK)
	if err != nil {
		return nil, err
	}
	if decoded.Kind != keycodec.KindType || decoded.TypeName != record.Name {
		return nil, errors.NewMalformedKeyError(record.SK, "sort key disagrees with Name attribute")
	}
	if record.PK == "" {
		return nil, errors.NewMalformedKeyError(record.SK, "missing partition key")
	}
	return &WorkoutType{Owner: record.PK, Name: record.Name, Description: record.Description}, nil
}

// DecodeWorkoutLog rebuilds a workout log entry from a raw item.
func DecodeWorkoutLog(item storagemodels.Item) (*WorkoutLog, error) {
	var record workoutLogRecord
	if err := attributevalue.UnmarshalMap(item, &record); err != nil {
		return nil, errors.NewMalformedKeyError(record.SK, "unreadable workout log item")
	}
	decoded, err := keycodec.Decode(record.SK)
	if err != nil {
		return nil, err
	}
	date, err := keycodec.ParseDate(record.Date)
	if err != nil {
		return nil, errors.NewMalformedKeyError(record.SK, "Date attribute is not canonical")
	}
	canonicalKeyDate, err := keycodec.CanonicalDate(decoded.Date)
	if err != nil {
		return nil, err
	}
	if decoded.Kind != keycodec.KindWorkout || decoded.TypeName != record.WorkoutType || canonicalKeyDate != record.Date {
		return nil, errors.NewMalformedKeyError(record.SK, "sort key disagrees with WorkoutType/Date attributes")
	}
	if record.SK1 != "" {
		shadowDate, shadowType, err := projection.Decode(record.SK1)
		if err != nil {
			return nil, err
		}
		canonicalShadow, err := keycodec.CanonicalDate(shadowDate)
		if err != nil {
			return nil, err
		}
		if shadowType != record.WorkoutType || canonicalShadow != record.Date {
			return nil, errors.NewMalformedKeyError(record.SK1, "index shadow key disagrees with WorkoutType/Date attributes")
		}
	}
	if record.PK == "" {
		return nil, errors.NewMalformedKeyError(record.SK, "missing partition key")
	}
	return &WorkoutLog{
		Owner:       record.PK,
		WorkoutType: record.WorkoutType,
		Date:        date,
		Attributes:  record.Attributes,
	}, nil
}

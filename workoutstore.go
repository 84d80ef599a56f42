/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package workoutstore

import (
	"context"
	"fmt"

	"github.com/go-openapi/strfmt"
	"github.com/rs/zerolog"

	"github.com/suparena/workoutstore/datastore"
	"github.com/suparena/workoutstore/entity"
	"github.com/suparena/workoutstore/errors"
	"github.com/suparena/workoutstore/keycodec"
	"github.com/suparena/workoutstore/registry"
	"github.com/suparena/workoutstore/storagemodels"
)

// DefaultPageSize bounds a single result page when the caller does not
// choose one.
const DefaultPageSize = 100

// Store resolves the fixed access patterns against a storage adapter.
// It holds no mutable state of its own; operations are independent
// request/response calls and a Store is safe for concurrent use.
type Store struct {
	adapter  datastore.StorageAdapter
	logger   zerolog.Logger
	pageSize int32
}

// Option configures a Store.
type Option func(*Store)

// WithLogger attaches a logger. The zero logger is a no-op.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithPageSize sets the page size for list operations.
func WithPageSize(size int32) Option {
	return func(s *Store) {
		if size > 0 {
			s.pageSize = size
		}
	}
}

// New constructs a Store over a storage adapter.
func New(adapter datastore.StorageAdapter, opts ...Option) (*Store, error) {
	if adapter == nil {
		return nil, fmt.Errorf("workoutstore: adapter must not be nil")
	}
	s := &Store{
		adapter:  adapter,
		logger:   zerolog.Nop(),
		pageSize: DefaultPageSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Page is one bounded slice of a result sequence, in ascending key
// order. An empty Items slice is a successful result, not an error.
// A non-empty NextToken resumes the sequence; tokens are opaque.
type Page[T any] struct {
	Items     []T
	NextToken string
}

// AddWorkoutType upserts a workout type entry. Re-adding an existing
// type overwrites its description (idempotent upsert by composite key).
func (s *Store) AddWorkoutType(ctx context.Context, workoutType *entity.WorkoutType) error {
	item, err := workoutType.Item()
	if err != nil {
		return err
	}
	sortKey, err := workoutType.SortKey()
	if err != nil {
		return err
	}
	if err := s.adapter.PutItem(ctx, item); err != nil {
		logStorageError(s.logger, "AddWorkoutType", workoutType.Owner, sortKey, err)
		return errors.NewStorageUnavailableError("AddWorkoutType", workoutType.Owner, sortKey, err)
	}
	logWrite(s.logger, EventTypeAdded, workoutType.Owner, sortKey)
	return nil
}

// LogWorkout upserts a workout log entry. Two log entries for the same
// (owner, type, date) serialize to the same key pair, so logging the
// same triple twice keeps only the second write's attributes. That is
// intentional last-write-wins, not a defect: a day's entry for one
// workout type is the unit this table models.
func (s *Store) LogWorkout(ctx context.Context, log *entity.WorkoutLog) error {
	item, err := log.Item()
	if err != nil {
		return err
	}
	sortKey, err := log.SortKey()
	if err != nil {
		return err
	}
	if err := s.adapter.PutItem(ctx, item); err != nil {
		logStorageError(s.logger, "LogWorkout", log.Owner, sortKey, err)
		return errors.NewStorageUnavailableError("LogWorkout", log.Owner, sortKey, err)
	}
	logWrite(s.logger, EventWorkoutLogged, log.Owner, sortKey)
	return nil
}

// ListWorkoutTypes returns one page of the owner's workout type
// entries, ordered by type name.
func (s *Store) ListWorkoutTypes(ctx context.Context, owner, token string) (*Page[*entity.WorkoutType], error) {
	if err := keycodec.ValidateOwner(owner); err != nil {
		return nil, err
	}
	return listPrefix[entity.WorkoutType](ctx, s, "ListWorkoutTypes", owner, storagemodels.PrefixQuery{
		Index:         storagemodels.IndexPrimary,
		PartitionKey:  owner,
		SortKeyPrefix: keycodec.TypePrefix(),
	}, token)
}

// ListWorkouts returns one page of all the owner's workout log entries,
// ordered by type name then date.
func (s *Store) ListWorkouts(ctx context.Context, owner, token string) (*Page[*entity.WorkoutLog], error) {
	if err := keycodec.ValidateOwner(owner); err != nil {
		return nil, err
	}
	return listPrefix[entity.WorkoutLog](ctx, s, "ListWorkouts", owner, storagemodels.PrefixQuery{
		Index:         storagemodels.IndexPrimary,
		PartitionKey:  owner,
		SortKeyPrefix: keycodec.WorkoutPrefix(),
	}, token)
}

// ListWorkoutsByType returns one page of the owner's log entries for
// one workout type, ordered by date.
func (s *Store) ListWorkoutsByType(ctx context.Context, owner, typeName, token string) (*Page[*entity.WorkoutLog], error) {
	if err := keycodec.ValidateOwner(owner); err != nil {
		return nil, err
	}
	prefix, err := keycodec.WorkoutTypePrefix(typeName)
	if err != nil {
		return nil, err
	}
	return listPrefix[entity.WorkoutLog](ctx, s, "ListWorkoutsByType", owner, storagemodels.PrefixQuery{
		Index:         storagemodels.IndexPrimary,
		PartitionKey:  owner,
		SortKeyPrefix: prefix,
	}, token)
}

// ListWorkoutsByDate returns one page of the owner's log entries for
// one calendar date, ordered by type name. Served by the byDate index,
// an eventually consistent projection: a just-written entry may lag.
func (s *Store) ListWorkoutsByDate(ctx context.Context, owner string, date strfmt.Date, token string) (*Page[*entity.WorkoutLog], error) {
	if err := keycodec.ValidateOwner(owner); err != nil {
		return nil, err
	}
	prefix, err := keycodec.WorkoutDatePrefix(date)
	if err != nil {
		return nil, err
	}
	return listPrefix[entity.WorkoutLog](ctx, s, "ListWorkoutsByDate", owner, storagemodels.PrefixQuery{
		Index:         storagemodels.IndexByDate,
		PartitionKey:  owner,
		SortKeyPrefix: prefix,
	}, token)
}

// ListWorkoutsInRange returns one page of the owner's log entries for
// one workout type between two dates, bounds inclusive, ordered by
// date.
func (s *Store) ListWorkoutsInRange(ctx context.Context, owner, typeName string, from, to strfmt.Date, token string) (*Page[*entity.WorkoutLog], error) {
	if err := keycodec.ValidateOwner(owner); err != nil {
		return nil, err
	}
	lower, upper, err := keycodec.WorkoutRangeBounds(typeName, from, to)
	if err != nil {
		return nil, err
	}
	cursor, err := decodeToken(token)
	if err != nil {
		return nil, err
	}
	page, err := s.adapter.QueryByRange(ctx, &storagemodels.RangeQuery{
		Index:        storagemodels.IndexPrimary,
		PartitionKey: owner,
		LowerBound:   lower,
		UpperBound:   upper,
		Limit:        s.pageSize,
		StartCursor:  cursor,
	})
	if err != nil {
		logStorageError(s.logger, "ListWorkoutsInRange", owner, lower, err)
		return nil, errors.NewStorageUnavailableError("ListWorkoutsInRange", owner, lower, err)
	}
	return decodePage[entity.WorkoutLog](s, "ListWorkoutsInRange", owner, page)
}

// GetWorkoutType reads one workout type entry by exact key.
// A miss returns (nil, nil): absence is a successful outcome.
func (s *Store) GetWorkoutType(ctx context.Context, owner, name string) (*entity.WorkoutType, error) {
	pk, sk, err := keycodec.EncodeTypeKey(owner, name)
	if err != nil {
		return nil, err
	}
	item, err := s.adapter.GetItem(ctx, pk, sk)
	if err != nil {
		logStorageError(s.logger, "GetWorkoutType", owner, sk, err)
		return nil, errors.NewStorageUnavailableError("GetWorkoutType", owner, sk, err)
	}
	if item == nil {
		return nil, nil
	}
	return entity.DecodeWorkoutType(item)
}

// GetWorkout reads one workout log entry by exact key.
// A miss returns (nil, nil).
func (s *Store) GetWorkout(ctx context.Context, owner, typeName string, date strfmt.Date) (*entity.WorkoutLog, error) {
	pk, sk, err := keycodec.EncodeWorkoutKey(owner, typeName, date)
	if err != nil {
		return nil, err
	}
	item, err := s.adapter.GetItem(ctx, pk, sk)
	if err != nil {
		logStorageError(s.logger, "GetWorkout", owner, sk, err)
		return nil, errors.NewStorageUnavailableError("GetWorkout", owner, sk, err)
	}
	if item == nil {
		return nil, nil
	}
	return entity.DecodeWorkoutLog(item)
}

// DeleteWorkoutType removes one workout type entry by exact key.
// Deleting an absent entry succeeds. Log entries referencing the type
// are untouched; the two kinds have independent lifecycles.
func (s *Store) DeleteWorkoutType(ctx context.Context, owner, name string) error {
	pk, sk, err := keycodec.EncodeTypeKey(owner, name)
	if err != nil {
		return err
	}
	if err := s.adapter.DeleteItem(ctx, pk, sk); err != nil {
		logStorageError(s.logger, "DeleteWorkoutType", owner, sk, err)
		return errors.NewStorageUnavailableError("DeleteWorkoutType", owner, sk, err)
	}
	logDelete(s.logger, owner, sk)
	return nil
}

// DeleteWorkout removes one workout log entry by exact key.
func (s *Store) DeleteWorkout(ctx context.Context, owner, typeName string, date strfmt.Date) error {
	pk, sk, err := keycodec.EncodeWorkoutKey(owner, typeName, date)
	if err != nil {
		return err
	}
	if err := s.adapter.DeleteItem(ctx, pk, sk); err != nil {
		logStorageError(s.logger, "DeleteWorkout", owner, sk, err)
		return errors.NewStorageUnavailableError("DeleteWorkout", owner, sk, err)
	}
	logDelete(s.logger, owner, sk)
	return nil
}

// listPrefix fetches one page for a prefix pattern and decodes it.
func listPrefix[T any](ctx context.Context, s *Store, operation, owner string, query storagemodels.PrefixQuery, token string) (*Page[*T], error) {
	cursor, err := decodeToken(token)
	if err != nil {
		return nil, err
	}
	query.Limit = s.pageSize
	query.StartCursor = cursor

	page, err := s.adapter.QueryByPrefix(ctx, &query)
	if err != nil {
		logStorageError(s.logger, operation, owner, query.SortKeyPrefix, err)
		return nil, errors.NewStorageUnavailableError(operation, owner, query.SortKeyPrefix, err)
	}
	return decodePage[T](s, operation, owner, page)
}

// decodePage dispatches raw items through the kind registry. A stored
// item that fails to decode aborts the page: corruption is surfaced,
// never skipped.
func decodePage[T any](s *Store, operation, owner string, page *storagemodels.QueryPage) (*Page[*T], error) {
	result := &Page[*T]{}
	for _, item := range page.Items {
		decoded, err := decodeAs[T](item)
		if err != nil {
			return nil, err
		}
		result.Items = append(result.Items, decoded)
	}
	token, err := encodeToken(page.NextCursor)
	if err != nil {
		return nil, err
	}
	result.NextToken = token
	logPage(s.logger, operation, owner, len(result.Items), token != "")
	return result, nil
}

func decodeAs[T any](item storagemodels.Item) (*T, error) {
	obj, err := registry.Decode(item)
	if err != nil {
		return nil, err
	}
	typed, ok := obj.(*T)
	if !ok {
		var zero T
		return nil, fmt.Errorf("decoded item is %T, want %T", obj, &zero)
	}
	return typed, nil
}

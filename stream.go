/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package workoutstore

import (
	"context"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/workoutstore/entity"
	"github.com/suparena/workoutstore/errors"
	"github.com/suparena/workoutstore/keycodec"
	"github.com/suparena/workoutstore/storagemodels"
)

// StreamWorkoutTypes streams the owner's workout type entries in type
// name order. The channel closes when the sequence is exhausted, a
// storage failure occurs, or ctx is cancelled; cancellation is
// reported as a final error result before close.
func (s *Store) StreamWorkoutTypes(ctx context.Context, owner string, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[*entity.WorkoutType] {
	if err := keycodec.ValidateOwner(owner); err != nil {
		return failedStream[*entity.WorkoutType](err)
	}
	return streamPrefix[entity.WorkoutType](ctx, s, "StreamWorkoutTypes", owner, storagemodels.PrefixQuery{
		Index:         storagemodels.IndexPrimary,
		PartitionKey:  owner,
		SortKeyPrefix: keycodec.TypePrefix(),
	}, opts...)
}

// StreamWorkouts streams all the owner's workout log entries in type
// name then date order.
func (s *Store) StreamWorkouts(ctx context.Context, owner string, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[*entity.WorkoutLog] {
	if err := keycodec.ValidateOwner(owner); err != nil {
		return failedStream[*entity.WorkoutLog](err)
	}
	return streamPrefix[entity.WorkoutLog](ctx, s, "StreamWorkouts", owner, storagemodels.PrefixQuery{
		Index:         storagemodels.IndexPrimary,
		PartitionKey:  owner,
		SortKeyPrefix: keycodec.WorkoutPrefix(),
	}, opts...)
}

// StreamWorkoutsByType streams the owner's log entries for one workout
// type in date order.
func (s *Store) StreamWorkoutsByType(ctx context.Context, owner, typeName string, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[*entity.WorkoutLog] {
	if err := keycodec.ValidateOwner(owner); err != nil {
		return failedStream[*entity.WorkoutLog](err)
	}
	prefix, err := keycodec.WorkoutTypePrefix(typeName)
	if err != nil {
		return failedStream[*entity.WorkoutLog](err)
	}
	return streamPrefix[entity.WorkoutLog](ctx, s, "StreamWorkoutsByType", owner, storagemodels.PrefixQuery{
		Index:         storagemodels.IndexPrimary,
		PartitionKey:  owner,
		SortKeyPrefix: prefix,
	}, opts...)
}

// StreamWorkoutsByDate streams the owner's log entries for one calendar
// date in type name order, served by the byDate index.
func (s *Store) StreamWorkoutsByDate(ctx context.Context, owner string, date strfmt.Date, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[*entity.WorkoutLog] {
	if err := keycodec.ValidateOwner(owner); err != nil {
		return failedStream[*entity.WorkoutLog](err)
	}
	prefix, err := keycodec.WorkoutDatePrefix(date)
	if err != nil {
		return failedStream[*entity.WorkoutLog](err)
	}
	return streamPrefix[entity.WorkoutLog](ctx, s, "StreamWorkoutsByDate", owner, storagemodels.PrefixQuery{
		Index:         storagemodels.IndexByDate,
		PartitionKey:  owner,
		SortKeyPrefix: prefix,
	}, opts...)
}

// streamPrefix walks a prefix pattern page by page on a worker
// goroutine, emitting one result per item. The last result of each
// page carries the resume token for the position after that page, so
// a consumer can stop and pick up later with WithStartToken. Storage
// failures are terminal and never retried here; resuming is the
// caller's decision.
func streamPrefix[T any](ctx context.Context, s *Store, operation, owner string, query storagemodels.PrefixQuery, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[*T] {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}
	ch := make(chan storagemodels.StreamResult[*T], options.BufferSize)

	go func() {
		defer close(ch)

		cursor, err := decodeToken(options.StartToken)
		if err != nil {
			ch <- storagemodels.StreamResult[*T]{Error: err}
			return
		}
		query.Limit = options.PageSize

		for {
			query.StartCursor = cursor
			page, err := s.adapter.QueryByPrefix(ctx, &query)
			if err != nil {
				logStorageError(s.logger, operation, owner, query.SortKeyPrefix, err)
				ch <- storagemodels.StreamResult[*T]{
					Error: errors.NewStorageUnavailableError(operation, owner, query.SortKeyPrefix, err),
				}
				return
			}
			token, err := encodeToken(page.NextCursor)
			if err != nil {
				ch <- storagemodels.StreamResult[*T]{Error: err}
				return
			}

			for i, item := range page.Items {
				result := storagemodels.StreamResult[*T]{}
				result.Item, result.Error = decodeAs[T](item)
				if i == len(page.Items)-1 {
					result.Token = token
				}
				select {
				case <-ctx.Done():
					ch <- storagemodels.StreamResult[*T]{
						Error: errors.NewStorageUnavailableError(operation, owner, query.SortKeyPrefix, ctx.Err()),
					}
					return
				case ch <- result:
				}
			}

			logPage(s.logger, operation, owner, len(page.Items), page.NextCursor != nil)
			if page.NextCursor == nil {
				return
			}
			cursor = page.NextCursor
		}
	}()
	return ch
}

// failedStream reports a pre-flight validation failure through the
// stream contract: one error result, then close.
func failedStream[T any](err error) <-chan storagemodels.StreamResult[T] {
	ch := make(chan storagemodels.StreamResult[T], 1)
	ch <- storagemodels.StreamResult[T]{Error: err}
	close(ch)
	return ch
}

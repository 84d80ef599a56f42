/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"context"
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrInvalidField is returned when an entity field fails validation
	// before any storage call is made.
	ErrInvalidField = errors.New("invalid field")

	// ErrMalformedKey is returned when a stored sort key does not match
	// any recognized key shape. This indicates data corruption and is
	// surfaced, never silently dropped.
	ErrMalformedKey = errors.New("malformed key")

	// ErrStorageUnavailable wraps any failure surfaced by the storage
	// capability, including cancellation.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// InvalidFieldError represents a field validation failure.
// Input is wrong; retrying without correcting it will not help.
type InvalidFieldError struct {
	Field   string
	Message string
}

func (e *InvalidFieldError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid field: %s", e.Message)
}

func (e *InvalidFieldError) Is(target error) bool {
	return target == ErrInvalidField
}

// MalformedKeyError represents a sort key read back from the store that
// does not decode to any known entity kind.
type MalformedKeyError struct {
	Key    string
	Reason string
}

func (e *MalformedKeyError) Error() string {
	return fmt.Sprintf("malformed sort key %q: %s", e.Key, e.Reason)
}

func (e *MalformedKeyError) Is(target error) bool {
	return target == ErrMalformedKey
}

// StorageUnavailableError wraps an underlying storage failure with enough
// context to reconstruct the failing call. The opaque attribute payload is
// never included.
type StorageUnavailableError struct {
	Operation string
	Owner     string
	Key       string
	Err       error
}

func (e *StorageUnavailableError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("storage unavailable during %s (owner %q, key %q): %v", e.Operation, e.Owner, e.Key, e.Err)
	}
	return fmt.Sprintf("storage unavailable during %s (owner %q): %v", e.Operation, e.Owner, e.Err)
}

func (e *StorageUnavailableError) Is(target error) bool {
	return target == ErrStorageUnavailable
}

func (e *StorageUnavailableError) Unwrap() error {
	return e.Err
}

// Cancelled reports whether the wrapped failure was caller cancellation
// rather than a store-side fault.
func (e *StorageUnavailableError) Cancelled() bool {
	return errors.Is(e.Err, context.Canceled) || errors.Is(e.Err, context.DeadlineExceeded)
}

// Helper functions for creating errors

// NewInvalidFieldError creates a new InvalidFieldError
func NewInvalidFieldError(field, message string) error {
	return &InvalidFieldError{Field: field, Message: message}
}

// NewMalformedKeyError creates a new MalformedKeyError
func NewMalformedKeyError(key, reason string) error {
	return &MalformedKeyError{Key: key, Reason: reason}
}

// NewStorageUnavailableError creates a new StorageUnavailableError
func NewStorageUnavailableError(operation, owner, key string, err error) error {
	return &StorageUnavailableError{Operation: operation, Owner: owner, Key: key, Err: err}
}

// IsInvalidField checks if an error is a field validation error
func IsInvalidField(err error) bool {
	return errors.Is(err, ErrInvalidField)
}

// IsMalformedKey checks if an error is a malformed key error
func IsMalformedKey(err error) bool {
	return errors.Is(err, ErrMalformedKey)
}

// IsStorageUnavailable checks if an error is a storage failure
func IsStorageUnavailable(err error) bool {
	return errors.Is(err, ErrStorageUnavailable)
}

// IsCancelled checks if an error is a storage failure caused by caller
// cancellation.
func IsCancelled(err error) bool {
	var su *StorageUnavailableError
	return errors.As(err, &su) && su.Cancelled()
}

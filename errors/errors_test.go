/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestInvalidFieldError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "TypeName",
			message:  "must not contain '#'",
			expected: `invalid field "TypeName": must not contain '#'`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "missing required fields",
			expected: "invalid field: missing required fields",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewInvalidFieldError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !errors.Is(err, ErrInvalidField) {
				t.Error("InvalidFieldError should match ErrInvalidField")
			}

			if !IsInvalidField(err) {
				t.Error("IsInvalidField should return true for InvalidFieldError")
			}
		})
	}
}

func TestMalformedKeyError(t *testing.T) {
	err := NewMalformedKeyError("Bogus#x", "unknown entry kind")

	expected := `malformed sort key "Bogus#x": unknown entry kind`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrMalformedKey) {
		t.Error("MalformedKeyError should match ErrMalformedKey")
	}

	if !IsMalformedKey(err) {
		t.Error("IsMalformedKey should return true for MalformedKeyError")
	}
}

func TestStorageUnavailableError(t *testing.T) {
	cause := errors.New("throughput exceeded")
	err := NewStorageUnavailableError("ListWorkouts", "User1", "Workout#", cause)

	expected := `storage unavailable during ListWorkouts (owner "User1", key "Workout#"): throughput exceeded`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrStorageUnavailable) {
		t.Error("StorageUnavailableError should match ErrStorageUnavailable")
	}

	if !errors.Is(err, cause) {
		t.Error("StorageUnavailableError should unwrap to its cause")
	}

	if IsCancelled(err) {
		t.Error("IsCancelled should be false for a non-cancellation cause")
	}
}

func TestStorageUnavailableErrorCancelled(t *testing.T) {
	err := NewStorageUnavailableError("ListWorkouts", "User1", "Workout#", context.Canceled)

	if !IsCancelled(err) {
		t.Error("IsCancelled should be true when wrapping context.Canceled")
	}

	err = NewStorageUnavailableError("LogWorkout", "User1", "", context.DeadlineExceeded)
	if !IsCancelled(err) {
		t.Error("IsCancelled should be true when wrapping context.DeadlineExceeded")
	}
}

func TestErrorWrapping(t *testing.T) {
	original := NewInvalidFieldError("Date", "not a calendar date")
	wrapped := fmt.Errorf("encode workout key: %w", original)

	if !errors.Is(wrapped, ErrInvalidField) {
		t.Error("Wrapped InvalidFieldError should still match ErrInvalidField")
	}

	if !IsInvalidField(wrapped) {
		t.Error("IsInvalidField should return true for wrapped errors")
	}
}

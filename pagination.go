/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package workoutstore

import (
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"github.com/suparena/workoutstore/errors"
	"github.com/suparena/workoutstore/storagemodels"
)

// Continuation tokens wrap the store's native cursor so callers can
// hold them across requests without seeing its shape. A token is only
// meaningful for the query that produced it; replaying it against a
// different pattern yields whatever the store yields.

func encodeToken(cursor storagemodels.Cursor) (string, error) {
	if len(cursor) == 0 {
		return "", nil
	}
	flat := make(map[string]string, len(cursor))
	if err := attributevalue.UnmarshalMap(cursor, &flat); err != nil {
		return "", errors.NewInvalidFieldError("ContinuationToken", "cursor has unexpected shape")
	}
	raw, err := json.Marshal(flat)
	if err != nil {
		return "", errors.NewInvalidFieldError("ContinuationToken", "cursor has unexpected shape")
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

func decodeToken(token string) (storagemodels.Cursor, error) {
	if token == "" {
		return nil, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, errors.NewInvalidFieldError("ContinuationToken", "not a valid continuation token")
	}
	var flat map[string]string
	if err := json.Unmarshal(raw, &flat); err != nil || len(flat) == 0 {
		return nil, errors.NewInvalidFieldError("ContinuationToken", "not a valid continuation token")
	}
	cursor, err := attributevalue.MarshalMap(flat)
	if err != nil {
		return nil, errors.NewInvalidFieldError("ContinuationToken", "not a valid continuation token")
	}
	return cursor, nil
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/workoutstore/storagemodels"
)

// StorageAdapter is the capability boundary to the ordered key-value
// store: exact-match put/get/delete plus prefix and bounded-range
// queries, each returning ascending sort key order and a native cursor.
// No business logic lives behind it; adapters return their backend's
// errors untranslated and the resolver maps them into the module's
// error taxonomy.
type StorageAdapter interface {
	PutItem(ctx context.Context, item storagemodels.Item) error

	// GetItem returns (nil, nil) when no item exists at the key pair.
	GetItem(ctx context.Context, partitionKey, sortKey string) (storagemodels.Item, error)

	DeleteItem(ctx context.Context, partitionKey, sortKey string) error

	QueryByPrefix(ctx context.Context, query *storagemodels.PrefixQuery) (*storagemodels.QueryPage, error)

	QueryByRange(ctx context.Context, query *storagemodels.RangeQuery) (*storagemodels.QueryPage, error)
}

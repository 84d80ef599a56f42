/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Item is a raw stored item: the composite key attributes plus the
// opaque attribute payload.
type Item = map[string]types.AttributeValue

// Cursor is the store's native pagination cursor. Callers outside the
// module only ever see it wrapped in an opaque continuation token.
type Cursor = map[string]types.AttributeValue

// Key and discriminant attribute names. The byDate attributes exist only
// on workout log items; the store maintains the byDate index from them.
const (
	AttrPartitionKey       = "PK"
	AttrSortKey            = "SK"
	AttrByDatePartitionKey = "PK1"
	AttrByDateSortKey      = "SK1"
	AttrEntityType         = "EntityType"
)

// Index selects which ordering a query runs against.
type Index string

const (
	// IndexPrimary is the main table ordering: Workout#<Type>#<Date>.
	IndexPrimary Index = "primary"

	// IndexByDate is the secondary ordering: Workout#<Date>#<Type>.
	// Derived and eventually consistent; read only.
	IndexByDate Index = "byDate"
)

// SortKeyAttribute returns the attribute the index orders by.
func (i Index) SortKeyAttribute() string {
	if i == IndexByDate {
		return AttrByDateSortKey
	}
	return AttrSortKey
}

// PartitionKeyAttribute returns the attribute the index partitions by.
// Both indexes carry the owner identifier.
func (i Index) PartitionKeyAttribute() string {
	if i == IndexByDate {
		return AttrByDatePartitionKey
	}
	return AttrPartitionKey
}

// PrefixQuery asks for all items in one partition whose sort key starts
// with a prefix, in ascending sort key order.
type PrefixQuery struct {
	Index         Index
	PartitionKey  string
	SortKeyPrefix string
	// Limit bounds a single page; zero means the adapter's default.
	Limit int32
	// StartCursor resumes a prior page; nil starts from the beginning.
	StartCursor Cursor
}

// RangeQuery asks for all items in one partition whose sort key falls
// inside inclusive bounds, in ascending sort key order.
type RangeQuery struct {
	Index        Index
	PartitionKey string
	LowerBound   string
	UpperBound   string
	Limit        int32
	StartCursor  Cursor
}

// QueryPage is one bounded response page. A nil NextCursor means the
// sequence is exhausted; an empty Items slice is a successful result.
type QueryPage struct {
	Items      []Item
	NextCursor Cursor
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package memory provides a deterministic in-memory StorageAdapter for
// tests: per-partition items kept in sort key order for both the
// primary and the byDate ordering, with the same paging contract as the
// real store. Unlike the real byDate index it is strongly consistent.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/workoutstore/datastore"
	"github.com/suparena/workoutstore/storagemodels"
)

const defaultPageLimit = 100

// Adapter is an in-memory implementation of datastore.StorageAdapter.
// Safe for concurrent use.
type Adapter struct {
	mu sync.RWMutex
	// partition key -> sort key -> item
	items map[string]map[string]storagemodels.Item
}

var _ datastore.StorageAdapter = (*Adapter)(nil)

// New creates an empty Adapter.
func New() *Adapter {
	return &Adapter{items: make(map[string]map[string]storagemodels.Item)}
}

// PutItem stores one item, overwriting any existing item at the same
// key pair (last write wins, matching the real store's per-item put).
func (a *Adapter) PutItem(ctx context.Context, item storagemodels.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	pk, ok := stringAttr(item, storagemodels.AttrPartitionKey)
	if !ok || pk == "" {
		return fmt.Errorf("item missing %s attribute", storagemodels.AttrPartitionKey)
	}
	sk, ok := stringAttr(item, storagemodels.AttrSortKey)
	if !ok || sk == "" {
		return fmt.Errorf("item missing %s attribute", storagemodels.AttrSortKey)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	partition, ok := a.items[pk]
	if !ok {
		partition = make(map[string]storagemodels.Item)
		a.items[pk] = partition
	}
	partition[sk] = copyItem(item)
	return nil
}

// GetItem returns (nil, nil) when no item exists at the key pair.
func (a *Adapter) GetItem(ctx context.Context, partitionKey, sortKey string) (storagemodels.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	item, ok := a.items[partitionKey][sortKey]
	if !ok {
		return nil, nil
	}
	return copyItem(item), nil
}

// DeleteItem removes one item; deleting an absent item is not an error.
func (a *Adapter) DeleteItem(ctx context.Context, partitionKey, sortKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.items[partitionKey], sortKey)
	return nil
}

// QueryByPrefix returns one ascending page of items whose index sort
// key starts with the prefix.
func (a *Adapter) QueryByPrefix(ctx context.Context, query *storagemodels.PrefixQuery) (*storagemodels.QueryPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return a.page(query.Index, query.PartitionKey, query.StartCursor, query.Limit, func(sk string) bool {
		return len(sk) >= len(query.SortKeyPrefix) && sk[:len(query.SortKeyPrefix)] == query.SortKeyPrefix
	})
}

// QueryByRange returns one ascending page of items whose index sort key
// falls inside the inclusive bounds.
func (a *Adapter) QueryByRange(ctx context.Context, query *storagemodels.RangeQuery) (*storagemodels.QueryPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return a.page(query.Index, query.PartitionKey, query.StartCursor, query.Limit, func(sk string) bool {
		return sk >= query.LowerBound && sk <= query.UpperBound
	})
}

type sortedItem struct {
	sortKey string
	item    storagemodels.Item
}

func (a *Adapter) page(index storagemodels.Index, partitionKey string, cursor storagemodels.Cursor, limit int32, match func(string) bool) (*storagemodels.QueryPage, error) {
	a.mu.RLock()
	matched := a.collect(index, partitionKey, match)
	a.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool { return matched[i].sortKey < matched[j].sortKey })

	after := ""
	if cursor != nil {
		v, ok := stringAttr(cursor, index.SortKeyAttribute())
		if !ok {
			return nil, fmt.Errorf("cursor missing %s attribute", index.SortKeyAttribute())
		}
		after = v
	}

	if limit <= 0 {
		limit = defaultPageLimit
	}

	page := &storagemodels.QueryPage{}
	for i, si := range matched {
		if after != "" && si.sortKey <= after {
			continue
		}
		page.Items = append(page.Items, copyItem(si.item))
		if int32(len(page.Items)) == limit {
			if i < len(matched)-1 {
				page.NextCursor = storagemodels.Cursor{
					index.PartitionKeyAttribute(): &types.AttributeValueMemberS{Value: partitionKey},
					index.SortKeyAttribute():      &types.AttributeValueMemberS{Value: si.sortKey},
				}
			}
			break
		}
	}
	return page, nil
}

// collect gathers candidate items for one index partition. The byDate
// ordering only contains items carrying the projection attributes.
func (a *Adapter) collect(index storagemodels.Index, partitionKey string, match func(string) bool) []sortedItem {
	var matched []sortedItem
	if index == storagemodels.IndexByDate {
		for _, partition := range a.items {
			for _, item := range partition {
				pk1, ok := stringAttr(item, storagemodels.AttrByDatePartitionKey)
				if !ok || pk1 != partitionKey {
					continue
				}
				sk1, ok := stringAttr(item, storagemodels.AttrByDateSortKey)
				if ok && match(sk1) {
					matched = append(matched, sortedItem{sortKey: sk1, item: item})
				}
			}
		}
		return matched
	}
	for sk, item := range a.items[partitionKey] {
		if match(sk) {
			matched = append(matched, sortedItem{sortKey: sk, item: item})
		}
	}
	return matched
}

// Len reports the total number of stored items.
func (a *Adapter) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	n := 0
	for _, partition := range a.items {
		n += len(partition)
	}
	return n
}

func stringAttr(item storagemodels.Item, name string) (string, bool) {
	attr, ok := item[name].(*types.AttributeValueMemberS)
	if !ok {
		return "", false
	}
	return attr.Value, true
}

func copyItem(item storagemodels.Item) storagemodels.Item {
	dup := make(storagemodels.Item, len(item))
	for k, v := range item {
		dup[k] = v
	}
	return dup
}

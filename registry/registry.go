package registry

import (
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"

	"github.com/suparena/workoutstore/errors"
	"github.com/suparena/workoutstore/storagemodels"
)

// DecodeFunc takes a raw stored item and returns the decoded entity.
type DecodeFunc func(item storagemodels.Item) (interface{}, error)

// kindRegistry maps the EntityType discriminant ("Type", "Workout") to
// its decode function. The set of kinds is closed; registration happens
// in package init, so no locking is needed afterwards.
var kindRegistry = make(map[string]DecodeFunc)

// RegisterKind registers a decode function for an entity kind.
// If the kind is already registered, it panics to prevent accidental overrides.
func RegisterKind(kind string, fn DecodeFunc) {
	if _, exists := kindRegistry[kind]; exists {
		panic(fmt.Sprintf("kind registry: kind %q already registered", kind))
	}
	kindRegistry[kind] = fn
}

// GetDecodeFunc returns the registered decode function for the given kind.
// If no function is registered, it returns an error.
func GetDecodeFunc(kind string) (DecodeFunc, error) {
	fn, ok := kindRegistry[kind]
	if !ok {
		return nil, fmt.Errorf("kind registry: no kind registered for %q", kind)
	}
	return fn, nil
}

// KindOf extracts the EntityType discriminant from a raw item. An item
// without one does not belong to this table's closed kind set and is
// surfaced as corruption.
func KindOf(item storagemodels.Item) (string, error) {
	attr, ok := item[storagemodels.AttrEntityType]
	if !ok {
		return "", errors.NewMalformedKeyError(sortKeyOf(item), "missing EntityType attribute")
	}
	var kind string
	if err := attributevalue.Unmarshal(attr, &kind); err != nil || kind == "" {
		return "", errors.NewMalformedKeyError(sortKeyOf(item), "unreadable EntityType attribute")
	}
	return kind, nil
}

// Decode dispatches a raw item to its kind's decode function.
func Decode(item storagemodels.Item) (interface{}, error) {
	kind, err := KindOf(item)
	if err != nil {
		return nil, err
	}
	fn, err := GetDecodeFunc(kind)
	if err != nil {
		return nil, errors.NewMalformedKeyError(sortKeyOf(item), "unknown entity kind "+kind)
	}
	return fn(item)
}

func sortKeyOf(item storagemodels.Item) string {
	var sk string
	if attr, ok := item[storagemodels.AttrSortKey]; ok {
		_ = attributevalue.Unmarshal(attr, &sk)
	}
	return sk
}

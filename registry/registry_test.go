package registry

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/workoutstore/errors"
	"github.com/suparena/workoutstore/storagemodels"
)

func item(entityType string) storagemodels.Item {
	return storagemodels.Item{
		storagemodels.AttrPartitionKey: &types.AttributeValueMemberS{Value: "User1"},
		storagemodels.AttrSortKey:      &types.AttributeValueMemberS{Value: "Type#Swimming"},
		storagemodels.AttrEntityType:   &types.AttributeValueMemberS{Value: entityType},
	}
}

func TestDecodeDispatchesToRegisteredKind(t *testing.T) {
	RegisterKind("registrytest", func(raw storagemodels.Item) (interface{}, error) {
		return "decoded", nil
	})

	decoded, err := Decode(item("registrytest"))
	require.NoError(t, err)
	assert.Equal(t, "decoded", decoded)
}

func TestDecodeUnknownKindSurfacesMalformedKey(t *testing.T) {
	_, err := Decode(item("Bogus"))
	assert.True(t, errors.IsMalformedKey(err))
}

func TestDecodeMissingEntityTypeSurfacesMalformedKey(t *testing.T) {
	raw := item("Workout")
	delete(raw, storagemodels.AttrEntityType)

	_, err := Decode(raw)
	assert.True(t, errors.IsMalformedKey(err))

	_, err = KindOf(raw)
	assert.True(t, errors.IsMalformedKey(err))
}

func TestDecodeUnreadableEntityTypeSurfacesMalformedKey(t *testing.T) {
	raw := item("Workout")
	raw[storagemodels.AttrEntityType] = &types.AttributeValueMemberN{Value: "7"}

	_, err := Decode(raw)
	assert.True(t, errors.IsMalformedKey(err))

	raw[storagemodels.AttrEntityType] = &types.AttributeValueMemberS{Value: ""}
	_, err = Decode(raw)
	assert.True(t, errors.IsMalformedKey(err))
}

func TestRegisterKindRejectsDuplicates(t *testing.T) {
	RegisterKind("registrytest-dup", func(raw storagemodels.Item) (interface{}, error) {
		return nil, nil
	})
	assert.Panics(t, func() {
		RegisterKind("registrytest-dup", func(raw storagemodels.Item) (interface{}, error) {
			return nil, nil
		})
	})
}

func TestGetDecodeFuncUnknownKind(t *testing.T) {
	_, err := GetDecodeFunc("never-registered")
	assert.Error(t, err)
}

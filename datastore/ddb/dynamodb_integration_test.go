//go:build integration
// +build integration

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suparena/workoutstore/config"
	"github.com/suparena/workoutstore/entity"
	"github.com/suparena/workoutstore/keycodec"
	"github.com/suparena/workoutstore/storagemodels"
)

func integrationAdapter(t *testing.T) *Adapter {
	t.Helper()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, proceeding with environment variables")
	}

	table, err := config.FromEnv()
	if err != nil {
		t.Skip("AWS_DDB_TABLE not set, skipping integration test")
	}

	client, err := NewClient(os.Getenv("AWS_ACCESS_KEY"), os.Getenv("AWS_SECRET_KEY"), table.Region)
	require.NoError(t, err)

	adapter, err := New(client, table)
	require.NoError(t, err)
	return adapter
}

func TestAdapterRoundTrip(t *testing.T) {
	adapter := integrationAdapter(t)
	ctx := context.Background()

	// Unique owner so concurrent test runs stay isolated.
	owner := "it-" + uuid.NewString()
	date := strfmt.Date(time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC))

	wl, err := entity.NewWorkoutLog(owner, "Swimming", date, map[string]string{
		"Duration": "30 minutes",
	})
	require.NoError(t, err)
	item, err := wl.Item()
	require.NoError(t, err)

	require.NoError(t, adapter.PutItem(ctx, item))

	sk, err := wl.SortKey()
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, adapter.DeleteItem(ctx, owner, sk))
	}()

	page, err := adapter.QueryByPrefix(ctx, &storagemodels.PrefixQuery{
		Index:         storagemodels.IndexPrimary,
		PartitionKey:  owner,
		SortKeyPrefix: keycodec.WorkoutPrefix(),
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)

	decoded, err := entity.DecodeWorkoutLog(page.Items[0])
	require.NoError(t, err)
	assert.Equal(t, "Swimming", decoded.WorkoutType)
	assert.Equal(t, "30 minutes", decoded.Attributes["Duration"])
}

func TestAdapterByDateIndex(t *testing.T) {
	adapter := integrationAdapter(t)
	ctx := context.Background()

	owner := "it-" + uuid.NewString()
	date := strfmt.Date(time.Date(2024, 3, 21, 0, 0, 0, 0, time.UTC))

	wl, err := entity.NewWorkoutLog(owner, "Running", date, nil)
	require.NoError(t, err)
	item, err := wl.Item()
	require.NoError(t, err)
	require.NoError(t, adapter.PutItem(ctx, item))

	sk, err := wl.SortKey()
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, adapter.DeleteItem(ctx, owner, sk))
	}()

	prefix, err := keycodec.WorkoutDatePrefix(date)
	require.NoError(t, err)

	// The index is eventually consistent; poll briefly.
	deadline := time.Now().Add(10 * time.Second)
	for {
		page, err := adapter.QueryByPrefix(ctx, &storagemodels.PrefixQuery{
			Index:         storagemodels.IndexByDate,
			PartitionKey:  owner,
			SortKeyPrefix: prefix,
		})
		require.NoError(t, err)
		if len(page.Items) == 1 {
			decoded, err := entity.DecodeWorkoutLog(page.Items[0])
			require.NoError(t, err)
			assert.Equal(t, "Running", decoded.WorkoutType)
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("byDate index never observed the write")
		}
		time.Sleep(500 * time.Millisecond)
	}
}

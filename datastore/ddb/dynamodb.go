/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog"

	"github.com/suparena/workoutstore/config"
	"github.com/suparena/workoutstore/datastore"
	"github.com/suparena/workoutstore/storagemodels"
)

// Client is the slice of the DynamoDB API the adapter uses. Narrow so
// tests can substitute a fake without AWS infrastructure.
type Client interface {
	PutItem(ctx context.Context, params *sdk.PutItemInput, optFns ...func(*sdk.Options)) (*sdk.PutItemOutput, error)
	GetItem(ctx context.Context, params *sdk.GetItemInput, optFns ...func(*sdk.Options)) (*sdk.GetItemOutput, error)
	DeleteItem(ctx context.Context, params *sdk.DeleteItemInput, optFns ...func(*sdk.Options)) (*sdk.DeleteItemOutput, error)
	Query(ctx context.Context, params *sdk.QueryInput, optFns ...func(*sdk.Options)) (*sdk.QueryOutput, error)
}

var _ Client = (*sdk.Client)(nil)

// Adapter implements datastore.StorageAdapter on DynamoDB.
type Adapter struct {
	client Client
	table  config.Table
	logger zerolog.Logger
}

var _ datastore.StorageAdapter = (*Adapter)(nil)

// Option configures an Adapter.
type Option func(*Adapter)

// WithLogger attaches a logger. The zero logger is a no-op.
func WithLogger(logger zerolog.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

// NewClient initializes a DynamoDB client using static AWS credentials.
func NewClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(awsRegion),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return sdk.NewFromConfig(cfg), nil
}

// New constructs an Adapter over a DynamoDB client and table config.
func New(client Client, table config.Table, opts ...Option) (*Adapter, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	a := &Adapter{
		client: client,
		table:  table,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// PutItem writes one item. Writes to an existing key pair overwrite,
// which is the last-write-wins contract the key design calls for.
func (a *Adapter) PutItem(ctx context.Context, item storagemodels.Item) error {
	_, err := a.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: &a.table.TableName,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("PutItem failed: %w", err)
	}
	return nil
}

// GetItem reads one item by exact key pair; (nil, nil) when absent.
func (a *Adapter) GetItem(ctx context.Context, partitionKey, sortKey string) (storagemodels.Item, error) {
	out, err := a.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: &a.table.TableName,
		Key:       keyPair(partitionKey, sortKey),
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem failed: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}
	return out.Item, nil
}

// DeleteItem removes one item by exact key pair. Deleting an absent
// item is not an error.
func (a *Adapter) DeleteItem(ctx context.Context, partitionKey, sortKey string) error {
	_, err := a.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: &a.table.TableName,
		Key:       keyPair(partitionKey, sortKey),
	})
	if err != nil {
		return fmt.Errorf("DeleteItem failed: %w", err)
	}
	return nil
}

func keyPair(partitionKey, sortKey string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		storagemodels.AttrPartitionKey: &types.AttributeValueMemberS{Value: partitionKey},
		storagemodels.AttrSortKey:      &types.AttributeValueMemberS{Value: sortKey},
	}
}

func (a *Adapter) indexName(index storagemodels.Index) *string {
	if index == storagemodels.IndexByDate {
		return aws.String(a.table.ByDateIndexName)
	}
	return nil
}

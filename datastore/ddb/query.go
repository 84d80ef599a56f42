/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/workoutstore/storagemodels"
)

// QueryByPrefix runs a begins_with query against the selected index,
// ascending, returning one page and the native continuation cursor.
func (a *Adapter) QueryByPrefix(ctx context.Context, query *storagemodels.PrefixQuery) (*storagemodels.QueryPage, error) {
	keyCondition := fmt.Sprintf("%s = :pk AND begins_with(%s, :prefix)",
		query.Index.PartitionKeyAttribute(), query.Index.SortKeyAttribute())
	input := &sdk.QueryInput{
		TableName:              &a.table.TableName,
		IndexName:              a.indexName(query.Index),
		KeyConditionExpression: &keyCondition,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":     &types.AttributeValueMemberS{Value: query.PartitionKey},
			":prefix": &types.AttributeValueMemberS{Value: query.SortKeyPrefix},
		},
		ScanIndexForward:  aws.Bool(true),
		ExclusiveStartKey: query.StartCursor,
	}
	if query.Limit > 0 {
		input.Limit = aws.Int32(query.Limit)
	}
	return a.runQuery(ctx, input)
}

// QueryByRange runs an inclusive BETWEEN query against the selected
// index, ascending.
func (a *Adapter) QueryByRange(ctx context.Context, query *storagemodels.RangeQuery) (*storagemodels.QueryPage, error) {
	keyCondition := fmt.Sprintf("%s = :pk AND %s BETWEEN :lo AND :hi",
		query.Index.PartitionKeyAttribute(), query.Index.SortKeyAttribute())
	input := &sdk.QueryInput{
		TableName:              &a.table.TableName,
		IndexName:              a.indexName(query.Index),
		KeyConditionExpression: &keyCondition,
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: query.PartitionKey},
			":lo": &types.AttributeValueMemberS{Value: query.LowerBound},
			":hi": &types.AttributeValueMemberS{Value: query.UpperBound},
		},
		ScanIndexForward:  aws.Bool(true),
		ExclusiveStartKey: query.StartCursor,
	}
	if query.Limit > 0 {
		input.Limit = aws.Int32(query.Limit)
	}
	return a.runQuery(ctx, input)
}

func (a *Adapter) runQuery(ctx context.Context, input *sdk.QueryInput) (*storagemodels.QueryPage, error) {
	out, err := a.client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}

	a.logger.Debug().
		Str("table", a.table.TableName).
		Int("items", len(out.Items)).
		Bool("more", len(out.LastEvaluatedKey) > 0).
		Msg("Query page fetched")

	page := &storagemodels.QueryPage{Items: out.Items}
	if len(out.LastEvaluatedKey) > 0 {
		page.NextCursor = out.LastEvaluatedKey
	}
	return page, nil
}

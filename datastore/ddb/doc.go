/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package ddb implements the storage adapter on AWS DynamoDB.

The table uses PK/SK string keys, plus one global secondary index
(GSI1 by default, configurable) declared over PK1/SK1 for the byDate
ordering of workout log entries. The adapter only issues the three
primitives the resolver needs: exact-match writes, begins_with queries,
and BETWEEN queries, always ascending.

Query results read through the byDate index are an eventually consistent
projection; the adapter treats the index as read only.
*/
package ddb

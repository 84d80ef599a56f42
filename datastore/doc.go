/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package datastore defines the storage capability interface the access
// pattern resolver runs against. The ddb subpackage implements it on
// DynamoDB; the memory subpackage is a deterministic in-memory fake for
// tests.
package datastore

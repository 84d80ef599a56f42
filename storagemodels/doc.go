/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package storagemodels defines the item, query and stream types shared
// between the access pattern resolver and the storage adapters.
package storagemodels

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package registry dispatches raw stored items to their entity kind's
// decode function via the EntityType discriminant, keeping the
// tagged-union decode rule in one place instead of scattered string
// parsing at call sites. The entity package registers both kinds at init.
package registry

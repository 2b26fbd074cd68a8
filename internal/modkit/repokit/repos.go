// Package repokit provides common types and helpers for repository implementations
package repokit

import "scotuspredict/internal/platform/store"

// Queryer is the read and write surface sql repos depend on
type Queryer = store.RowQuerier

type (
	// Rows are the result set of a query
	Rows = store.Rows

	// Row is a single row result
	Row = store.Row

	// CommandTag is the result of a write
	CommandTag = store.CommandTag
)

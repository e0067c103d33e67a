// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package catalog

import "context"

// Loader is the interface for a format-specific catalog reader.
type Loader interface {
	// Load reads the catalog from the given files or directories and
	// returns the records in catalog order. Files are read in the order
	// given; directories are walked in lexical order.
	Load(ctx context.Context, paths ...string) (*Catalog, error)
}

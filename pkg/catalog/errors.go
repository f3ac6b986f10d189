package catalog

import "errors"

// ErrNotFound is returned when a name matches no entry so HTTP handlers can respond with 404.
var ErrNotFound = errors.New("catalog entry not found")

// ErrUnknownSortKey is returned by ParseSortKey for values outside the supported orderings.
var ErrUnknownSortKey = errors.New("unknown sort key")

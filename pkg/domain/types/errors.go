package types

import "github.com/m-mizutani/goerr/v2"

// ErrNotFound is the shared sentinel for missing entities. Repository
// implementations wrap it so callers can match with errors.Is regardless of
// the storage backend.
var ErrNotFound = goerr.New("not found")

package models

import "errors"

// ErrNotFound reports that a keyed lookup, update or delete matched no rows.
// Callers decide whether that is fatal; the station-delete cascade treats it
// as "nothing to delete".
var ErrNotFound = errors.New("not found")

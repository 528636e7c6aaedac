// Package defaults provides centralized configuration constants for crxcheck.
//
// # Usage
//
//	ctx, cancel := context.WithTimeout(ctx, defaults.CheckTimeout)
//	defer cancel()
//
// CheckTimeout bounds a whole check-version run. Checks read two small local
// files, so the limit only matters on stalled filesystems such as a hung
// network mount.
package defaults

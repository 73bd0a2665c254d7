// Package cache stores rendered pages per route and drops them when a
// route is revalidated.
//
// Entries are grouped by route path. Revalidate bumps the path's
// generation, so every entry written under an older generation stops
// being returned. The next visit re-renders and stores fresh output.
//
// A page is stored under the generation its reader observed before
// fetching data. When the path is revalidated while that page is being
// rendered, the write is dropped.
package cache

import "context"

// Lookup is the result of a Get.
type Lookup struct {
	Page []byte
	Hit  bool
	// Generation is the path's generation at the time of the read. Pass it
	// to Set along with the page rendered after the read.
	Generation int64
}

// PageCache is a rendered-page cache keyed by route path and request key.
type PageCache interface {
	// Get returns the page stored for path and key, if it is still fresh.
	Get(ctx context.Context, path, key string) (Lookup, error)
	// Set stores page for path and key under generation. It does nothing
	// if path has been revalidated since generation was observed.
	Set(ctx context.Context, path, key string, generation int64, page []byte) error
	// Revalidate marks every cached page of path stale.
	Revalidate(ctx context.Context, path string) error
}

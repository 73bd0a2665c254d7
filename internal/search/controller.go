package search

import (
	"net/url"
	"time"
)

// DefaultQuietInterval is the debounce delay used when none is configured.
const DefaultQuietInterval = 300 * time.Millisecond

// Navigator performs a client-side navigation to the given URL.
type Navigator func(*url.URL)

// Controller turns search input changes into debounced URL rewrites.
type Controller struct {
	current  func() *url.URL
	navigate Navigator
	debounce *Debouncer
}

// NewController builds a controller reading the URL to rewrite from current
// at fire time. A non-positive quiet interval uses DefaultQuietInterval.
func NewController(current func() *url.URL, navigate Navigator, quiet time.Duration) *Controller {
	if quiet <= 0 {
		quiet = DefaultQuietInterval
	}
	return &Controller{
		current:  current,
		navigate: navigate,
		debounce: NewDebouncer(quiet),
	}
}

// HandleInput records a new search term. Only the last term entered within
// a quiet interval is navigated to.
func (c *Controller) HandleInput(term string) {
	c.debounce.Trigger(func() {
		c.navigate(ApplyTerm(c.current(), term))
	})
}

// Pending reports whether a navigation is scheduled.
func (c *Controller) Pending() bool {
	return c.debounce.Pending()
}

// Stop cancels a scheduled navigation.
func (c *Controller) Stop() {
	c.debounce.Cancel()
}

package covers

import "time"

// SetStaleThreshold changes the staleness window. Only used for testing.
func (c *Cache) SetStaleThreshold(d time.Duration) {
	c.staleAfter = d
}

// SetNotFoundRetryDelay changes the cool-down before re-resolving stale
// not-found entries. Only used for testing.
func (c *Cache) SetNotFoundRetryDelay(d time.Duration) {
	c.retryDelay = d
}

// WaitBackground blocks until all currently running background
// revalidations have finished. Only used for testing.
func (c *Cache) WaitBackground() {
	c.background.Wait()
}

package store

import (
	"context"
	"fmt"

	"pentefino/internal/core"
)

// AddClosing validates and stores a daily closing. Closings are
// append-only here; editing or deleting one is a UI-layer concern the
// aggregation core never exercises.
func (s *Store) AddClosing(ctx context.Context, c core.Closing) (core.Closing, error) {
	if err := c.Validate(); err != nil {
		return core.Closing{}, fmt.Errorf("add closing: %w", err)
	}
	if c.Status == "" {
		c.Status = core.ClosingOpen
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = s.nextID()
	c.Synced = false
	s.closings = append([]core.Closing{c}, s.closings...)
	s.flush(ctx, KeyClosings, s.closings)
	return c, nil
}

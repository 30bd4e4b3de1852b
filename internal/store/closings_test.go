package store

import (
	"context"
	"testing"

	"pentefino/internal/core"
)

func TestAddClosing(t *testing.T) {
	ctx := context.Background()
	persist := newFakePersistence()
	s := New(persist, WithClock(testClock()))

	c, err := s.AddClosing(ctx, core.Closing{Date: "15/06/2024", TotalAmount: 980.5, Notes: "caixa ok"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID == "" || c.Synced {
		t.Fatalf("new closing must get an id and start unsynced: %+v", c)
	}
	if c.Status != core.ClosingOpen {
		t.Fatalf("status must default to open, got %s", c.Status)
	}
	if persist.saves[len(persist.saves)-1] != KeyClosings {
		t.Fatalf("closings must persist under their own key")
	}

	if _, err := s.AddClosing(ctx, core.Closing{Date: "bad", TotalAmount: 1}); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

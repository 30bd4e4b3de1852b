package amqp

import "testing"

func TestSyncMessageJSON(t *testing.T) {
	msg := NewSyncMessage("transactions")
	if msg.ID == "" {
		t.Fatalf("message must carry an id")
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	got, err := SyncMessageFromJSON(body)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.ID != msg.ID || got.Collection != "transactions" {
		t.Fatalf("round trip lost fields: %+v", got)
	}

	if _, err := SyncMessageFromJSON([]byte("{bad")); err == nil {
		t.Fatalf("expected error for malformed payload")
	}
}

package amqp

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// SyncMessage asks the worker to push the unsynced records of one ledger
// collection. It carries no record data: the worker reads the collection
// blob itself, so a re-delivered or duplicated message is harmless.
type SyncMessage struct {
	ID         string    `json:"id"`
	Collection string    `json:"collection"`
	Timestamp  time.Time `json:"timestamp"`
}

// NewSyncMessage creates a sync message for one collection key.
func NewSyncMessage(collection string) *SyncMessage {
	return &SyncMessage{
		ID:         uuid.NewString(),
		Collection: collection,
		Timestamp:  time.Now(),
	}
}

// ToJSON converts the message to JSON bytes.
func (m *SyncMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// SyncMessageFromJSON creates a message from JSON bytes.
func SyncMessageFromJSON(data []byte) (*SyncMessage, error) {
	var msg SyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

// Package events carries full-collection snapshots from writers to the
// clients watching a user's data.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

type Collection string

const (
	Categories    Collection = "categories"
	Flashcards    Collection = "flashcards"
	StudyProgress Collection = "studyProgress"
	Settings      Collection = "settings"
)

var ErrClosed = errors.New("broker closed")

// Snapshot is the complete current content of one of a user's collections.
// Subscribers replace their copy wholesale.
type Snapshot struct {
	UserID     uint            `json:"userId"`
	Collection Collection      `json:"collection"`
	Data       json.RawMessage `json:"data"`
	At         time.Time       `json:"at"`
}

// NewSnapshot marshals data into a snapshot stamped with the current time.
func NewSnapshot(userID uint, c Collection, data interface{}) (Snapshot, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{UserID: userID, Collection: c, Data: raw, At: time.Now().UTC()}, nil
}

// Broker fans snapshots out to the subscribers of a user. Subscriptions end
// when their context is cancelled, at which point the channel is closed.
type Broker interface {
	Publish(ctx context.Context, s Snapshot) error
	Subscribe(ctx context.Context, userID uint) (<-chan Snapshot, error)
	Close() error
}

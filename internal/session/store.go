package session

import (
	"encoding/json"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v3"
)

// Session is the typed on-device state the original app kept as loose
// key-value pairs. It identifies the logged-in user between invocations;
// every store call still receives the user id explicitly.
type Session struct {
	UserID            uint   `json:"user_id"`
	Username          string `json:"username"`
	IsAdmin           bool   `json:"is_admin"`
	HasCompletedSetup bool   `json:"has_completed_setup"`
	SelectedGoal      string `json:"selected_goal,omitempty"`
}

var sessionKey = []byte("session:current")

// Store persists the session in a local badger database under the data
// directory. One device, one session.
type Store struct {
	database *badger.DB
}

func Open(dir string) (*Store, error) {
	options := badger.DefaultOptions(dir).WithLogger(nil)
	database, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	return &Store{database: database}, nil
}

func (store *Store) Close() error {
	return store.database.Close()
}

// Current returns the stored session and whether one exists.
func (store *Store) Current() (Session, bool, error) {
	var session Session
	found := false

	err := store.database.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			if err := json.Unmarshal(value, &session); err != nil {
				return fmt.Errorf("decode session: %w", err)
			}
			found = true
			return nil
		})
	})
	if err != nil {
		return Session{}, false, err
	}
	return session, found, nil
}

func (store *Store) Save(session Session) error {
	encoded, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return store.database.Update(func(txn *badger.Txn) error {
		return txn.Set(sessionKey, encoded)
	})
}

func (store *Store) Clear() error {
	return store.database.Update(func(txn *badger.Txn) error {
		return txn.Delete(sessionKey)
	})
}

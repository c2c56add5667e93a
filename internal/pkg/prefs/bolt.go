package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
)

// UserPreferences is the per-user UI state the frontend used to keep in
// browser storage. Every write replaces the whole record; there is a single
// writer (the preferences handler), readers get a snapshot.
type UserPreferences struct {
	UserID          string `json:"user_id"`
	ViewAsUser      bool   `json:"view_as_user"`
	IsAdmin         bool   `json:"is_admin"`
	ProfileSnapshot string `json:"profile_snapshot,omitempty"`
}

type Store struct {
	db *bolt.DB
}

var prefsBucket = []byte("user_preferences")

func NewStore(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open preferences store: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(prefsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create preferences bucket: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the stored preferences for a user, or zero-value defaults when
// the user has never saved any.
func (s *Store) Get(userID string) (UserPreferences, error) {
	p := UserPreferences{UserID: userID}

	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(prefsBucket).Get([]byte(userID))
		if raw == nil {
			return nil
		}
		return json.Unmarshal(raw, &p)
	})
	if err != nil {
		return UserPreferences{}, fmt.Errorf("failed to read preferences: %w", err)
	}

	return p, nil
}

// Put replaces the stored preferences for a user.
func (s *Store) Put(p UserPreferences) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(prefsBucket).Put([]byte(p.UserID), raw)
	})
	if err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}

	return nil
}

// Delete drops a user's preferences (used on logout so toggles do not leak
// into the next login).
func (s *Store) Delete(userID string) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(prefsBucket).Delete([]byte(userID))
	})
	if err != nil {
		return fmt.Errorf("failed to delete preferences: %w", err)
	}
	return nil
}

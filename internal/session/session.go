// Package session persists the single viewer authentication flag. The
// flag has localStorage semantics: durable across restarts, set on
// login, deleted on logout, no expiry. It gates presentation only and
// is not a security boundary.
package session

import (
	"fmt"

	bolt "go.etcd.io/bbolt"
)

const (
	bucketName = "session"
	flagKey    = "isAuthenticated"
	flagTrue   = "true"
)

type Store struct {
	db *bolt.DB
}

func New(path string) (*Store, error) {
	const op = "session.New"

	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: open %s: %w", op, path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: create bucket: %w", op, err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Authenticated reports the flag. Absence, a read failure or any value
// other than "true" all mean unauthenticated.
func (s *Store) Authenticated() bool {
	var authenticated bool

	_ = s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(flagKey))
		authenticated = string(v) == flagTrue

		return nil
	})

	return authenticated
}

// SetAuthenticated stores the flag; false deletes the key rather than
// writing a falsy value.
func (s *Store) SetAuthenticated(v bool) error {
	const op = "session.SetAuthenticated"

	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if !v {
			return b.Delete([]byte(flagKey))
		}

		return b.Put([]byte(flagKey), []byte(flagTrue))
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

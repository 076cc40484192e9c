// Package drafts persists in-progress report submissions so they survive
// restarts and connectivity loss. Records live in a single-file embedded
// key-value store keyed by an auto-incrementing id; attached files are kept
// as raw byte buffers inside the record. The store tracks no submission
// status: once a draft is submitted successfully the caller deletes it.
package drafts

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/QuaresmaHarygens/Talkam/models"
)

var draftsBucket = []byte("drafts")

// Store is a durable queue of draft reports
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the draft database at path
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open draft store: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(draftsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create drafts bucket: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database file
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveDraft stores the given partial report fields with a capture timestamp
// and a fresh idempotency key, returning the generated local id. Ids come
// from the bucket sequence, so no two drafts ever share one.
func (s *Store) SaveDraft(data models.DraftData) (uint64, error) {
	var id uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(draftsBucket)
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		draft := models.Draft{
			ID:               seq,
			Timestamp:        time.Now().UnixMilli(),
			OfflineReference: uuid.New().String(),
			Data:             data,
		}
		raw, err := json.Marshal(draft)
		if err != nil {
			return err
		}
		if err := bucket.Put(itob(seq), raw); err != nil {
			return err
		}
		id = seq
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to save draft: %w", err)
	}
	return id, nil
}

// GetDrafts returns all persisted drafts ordered by capture timestamp
func (s *Store) GetDrafts() ([]models.Draft, error) {
	var out []models.Draft
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(draftsBucket).ForEach(func(_, v []byte) error {
			var draft models.Draft
			if err := json.Unmarshal(v, &draft); err != nil {
				return err
			}
			out = append(out, draft)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read drafts: %w", err)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp < out[j].Timestamp
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// GetDraft returns one draft by id, or nil when no such draft exists
func (s *Store) GetDraft(id uint64) (*models.Draft, error) {
	var draft *models.Draft
	err := s.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(draftsBucket).Get(itob(id))
		if raw == nil {
			return nil
		}
		draft = &models.Draft{}
		return json.Unmarshal(raw, draft)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read draft %d: %w", id, err)
	}
	return draft, nil
}

// DeleteDraft removes one draft. Deleting an absent id is not an error.
func (s *Store) DeleteDraft(id uint64) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(draftsBucket).Delete(itob(id))
	})
	if err != nil {
		return fmt.Errorf("failed to delete draft %d: %w", id, err)
	}
	return nil
}

// ClearDrafts removes every draft. The id sequence is left alone so ids are
// never reused.
func (s *Store) ClearDrafts() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(draftsBucket)
		cursor := bucket.Cursor()
		for k, _ := cursor.First(); k != nil; k, _ = cursor.Next() {
			if err := bucket.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to clear drafts: %w", err)
	}
	return nil
}

// Count returns the number of queued drafts
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket(draftsBucket).Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count drafts: %w", err)
	}
	return n, nil
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

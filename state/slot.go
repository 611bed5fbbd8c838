package state

import (
	"encoding/json"

	"github.com/grovetools/storefront/errors"
	"github.com/grovetools/storefront/schema"
	"github.com/sirupsen/logrus"
)

// Slot is a typed view of one KV key holding a JSON array of T.
// It never fails outward: unusable data reads as "nothing saved" and write
// failures are logged, so the in-memory state stays authoritative.
type Slot[T any] struct {
	KV     KV
	Key    string
	Logger *logrus.Entry

	// Schema, if set, validates the raw JSON before decoding.
	Schema *schema.Validator
	// Check, if set, validates decoded items.
	Check func([]T) error
}

// Load returns the saved items and true, or nil and false when nothing
// usable is stored under the key.
func (s *Slot[T]) Load() ([]T, bool) {
	raw, ok, err := s.KV.Get(s.Key)
	if err != nil {
		s.logger().WithError(err).Warn("Failed to read saved state, starting empty")
		return nil, false
	}
	if !ok || raw == "" {
		s.logger().Debug("No saved state")
		return nil, false
	}

	items, err := s.decode([]byte(raw))
	if err != nil {
		s.logger().WithError(errors.CorruptState(s.Key, err)).Warn("Saved state is unusable, starting empty")
		return nil, false
	}
	return items, true
}

func (s *Slot[T]) decode(raw []byte) ([]T, error) {
	if s.Schema != nil {
		if err := s.Schema.ValidateJSON(raw); err != nil {
			return nil, err
		}
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}

	if s.Check != nil {
		if err := s.Check(items); err != nil {
			return nil, err
		}
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Save serializes items under the key. Failures are logged and swallowed.
func (s *Slot[T]) Save(items []T) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		s.logger().WithError(err).Error("Failed to serialize state")
		return
	}
	if err := s.KV.Set(s.Key, string(data)); err != nil {
		s.logger().WithError(err).Warn("Failed to persist state")
		return
	}
	s.logger().WithField("items", len(items)).Debug("State persisted")
}

func (s *Slot[T]) logger() *logrus.Entry {
	if s.Logger != nil {
		return s.Logger.WithField("key", s.Key)
	}
	return logrus.NewEntry(logrus.StandardLogger()).WithField("key", s.Key)
}

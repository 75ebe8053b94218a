package store

import (
	"context"
	"errors"

	"github.com/qistanaushaf/Adkeu/pkg/keyval"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Slot is a named typed JSON slot on a keyval backend. Load returns the
// default value when the slot is missing or unparseable; Save marshals and
// fully overwrites. A Slot never partially merges.
type Slot[T any] struct {
	kv      keyval.Store
	key     string
	defFunc func() T
	log     *logrus.Logger
}

func NewSlot[T any](kv keyval.Store, key string, defFunc func() T, log *logrus.Logger) *Slot[T] {
	return &Slot[T]{
		kv:      kv,
		key:     key,
		defFunc: defFunc,
		log:     log,
	}
}

func (s *Slot[T]) Key() string {
	return s.key
}

// Load reads the slot. A missing slot is a normal first-run condition and
// yields the default silently; malformed content also yields the default but
// is logged, since it means stored user data was discarded.
func (s *Slot[T]) Load(ctx context.Context) T {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, keyval.ErrNotFound) {
			s.log.WithFields(logrus.Fields{
				"key":   s.key,
				"error": err.Error(),
			}).Error("Failed to read slot, using default value")
		}
		return s.defFunc()
	}

	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		s.log.WithFields(logrus.Fields{
			"key":   s.key,
			"error": err.Error(),
		}).Warn("Malformed slot content, falling back to default value")
		return s.defFunc()
	}

	return value
}

func (s *Slot[T]) Save(ctx context.Context, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"key":   s.key,
			"error": err.Error(),
		}).Error("Failed to marshal slot value")
		return err
	}

	return s.kv.Set(ctx, s.key, string(raw))
}

// RawSlot is a slot holding a bare string (no JSON framing), for scalar
// values stored verbatim, like the budget ceiling and the theme.
type RawSlot struct {
	kv      keyval.Store
	key     string
	defFunc func() string
	log     *logrus.Logger
}

func NewRawSlot(kv keyval.Store, key string, defFunc func() string, log *logrus.Logger) *RawSlot {
	return &RawSlot{
		kv:      kv,
		key:     key,
		defFunc: defFunc,
		log:     log,
	}
}

func (s *RawSlot) Load(ctx context.Context) string {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, keyval.ErrNotFound) {
			s.log.WithFields(logrus.Fields{
				"key":   s.key,
				"error": err.Error(),
			}).Error("Failed to read slot, using default value")
		}
		return s.defFunc()
	}
	return raw
}

func (s *RawSlot) Save(ctx context.Context, value string) error {
	return s.kv.Set(ctx, s.key, value)
}

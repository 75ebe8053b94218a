package store

import (
	"context"
	"testing"

	"github.com/qistanaushaf/Adkeu/pkg/keyval"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type testValue struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestSlot(kv keyval.Store) *Slot[testValue] {
	return NewSlot(kv, "test_slot", func() testValue {
		return testValue{Name: "default"}
	}, logrus.New())
}

func TestSlot_Load_MissingReturnsDefault(t *testing.T) {
	slot := newTestSlot(keyval.NewMemory())

	value := slot.Load(context.Background())

	assert.Equal(t, "default", value.Name)
	assert.Equal(t, 0, value.Count)
}

func TestSlot_SaveThenLoad(t *testing.T) {
	slot := newTestSlot(keyval.NewMemory())
	ctx := context.Background()

	err := slot.Save(ctx, testValue{Name: "saved", Count: 3})
	assert.NoError(t, err)

	value := slot.Load(ctx)
	assert.Equal(t, "saved", value.Name)
	assert.Equal(t, 3, value.Count)
}

func TestSlot_Load_MalformedReturnsDefault(t *testing.T) {
	kv := keyval.NewMemory()
	ctx := context.Background()

	err := kv.Set(ctx, "test_slot", "{not json")
	assert.NoError(t, err)

	slot := newTestSlot(kv)
	value := slot.Load(ctx)

	assert.Equal(t, "default", value.Name)
}

func TestSlot_SaveOverwritesWhole(t *testing.T) {
	slot := newTestSlot(keyval.NewMemory())
	ctx := context.Background()

	assert.NoError(t, slot.Save(ctx, testValue{Name: "first", Count: 1}))
	assert.NoError(t, slot.Save(ctx, testValue{Name: "second"}))

	value := slot.Load(ctx)
	assert.Equal(t, "second", value.Name)
	assert.Equal(t, 0, value.Count)
}

func TestRawSlot_DefaultAndRoundTrip(t *testing.T) {
	kv := keyval.NewMemory()
	ctx := context.Background()

	slot := NewRawSlot(kv, "raw_slot", func() string { return "0" }, logrus.New())

	assert.Equal(t, "0", slot.Load(ctx))

	assert.NoError(t, slot.Save(ctx, "5000000"))
	assert.Equal(t, "5000000", slot.Load(ctx))
}

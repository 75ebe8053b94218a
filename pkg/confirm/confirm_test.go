package confirm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_StageAndResolve(t *testing.T) {
	registry := NewRegistry()

	token, expiresAt := registry.Stage("hibah:Januari", "tx-1")
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	scope, id, ok := registry.Resolve(token)
	assert.True(t, ok)
	assert.Equal(t, "hibah:Januari", scope)
	assert.Equal(t, "tx-1", id)
}

func TestRegistry_TokenIsSingleUse(t *testing.T) {
	registry := NewRegistry()

	token, _ := registry.Stage("pagu", "entry-1")

	_, _, ok := registry.Resolve(token)
	assert.True(t, ok)

	_, _, ok = registry.Resolve(token)
	assert.False(t, ok)
}

func TestRegistry_UnknownToken(t *testing.T) {
	registry := NewRegistry()

	_, _, ok := registry.Resolve("no-such-token")
	assert.False(t, ok)
}

func TestRegistry_CancelDiscardsStage(t *testing.T) {
	registry := NewRegistry()

	token, _ := registry.Stage("kas:Social Affairs", "member-1")
	registry.Cancel(token)

	_, _, ok := registry.Resolve(token)
	assert.False(t, ok)
}

func TestRegistry_CancelUnknownTokenIsHarmless(t *testing.T) {
	registry := NewRegistry()

	registry.Cancel("no-such-token")
	registry.Cancel("no-such-token")
}

func TestRegistry_ExpiredTokenDoesNotResolve(t *testing.T) {
	registry := NewRegistry()

	base := time.Now()
	registry.now = func() time.Time { return base }

	token, _ := registry.Stage("noncash", "ev-1")

	registry.now = func() time.Time { return base.Add(DefaultTTL + time.Second) }

	_, _, ok := registry.Resolve(token)
	assert.False(t, ok)
}

func TestRegistry_DistinctTokensPerStage(t *testing.T) {
	registry := NewRegistry()

	first, _ := registry.Stage("pagu", "entry-1")
	second, _ := registry.Stage("pagu", "entry-1")

	assert.NotEqual(t, first, second)
}

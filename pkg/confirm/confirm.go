package confirm

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// DefaultTTL bounds how long a staged delete stays confirmable.
const DefaultTTL = 5 * time.Minute

type staged struct {
	scope     string
	id        string
	expiresAt time.Time
}

// Registry stages pending deletions: a delete request stages the target and
// hands back a token; only a follow-up confirm carrying that token removes the
// entry, and a cancel (or the TTL) discards the stage with no effect on data.
type Registry struct {
	pending map[string]staged
	ttl     time.Duration
	mutex   sync.Mutex
	now     func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		pending: make(map[string]staged),
		ttl:     DefaultTTL,
		now:     time.Now,
	}
}

// Stage records a pending deletion of id within scope (a month, a division)
// and returns the confirm token with its expiry.
func (r *Registry) Stage(scope string, id string) (string, time.Time) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	ms := ulid.Timestamp(r.now())
	token := ulid.MustNew(ms, ulid.Monotonic(rand.Reader, 0)).String()

	expiresAt := r.now().Add(r.ttl)
	r.pending[token] = staged{scope: scope, id: id, expiresAt: expiresAt}
	return token, expiresAt
}

// Resolve consumes the token, returning the staged scope and id. A token is
// single-use: resolving it removes the stage whether or not the caller goes
// on to delete anything.
func (r *Registry) Resolve(token string) (scope string, id string, ok bool) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	entry, found := r.pending[token]
	if !found {
		return "", "", false
	}
	delete(r.pending, token)

	if r.now().After(entry.expiresAt) {
		return "", "", false
	}
	return entry.scope, entry.id, true
}

// Cancel discards a staged deletion. Unknown tokens are ignored: cancelling
// twice, or after expiry, is harmless.
func (r *Registry) Cancel(token string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	delete(r.pending, token)
}

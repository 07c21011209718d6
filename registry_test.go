package emit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nopHandler() Handler {
	return HandlerFunc(func(ctx context.Context, ev Event) error { return nil })
}

func testEvent(name Name) Event {
	return newEvent(name, nil, "")
}

func TestRegistry_AddRemove(t *testing.T) {
	r := newRegistry()

	sub := newSubscription("msg", nopHandler())
	r.add(sub)

	assert.Equal(t, 1, r.count("msg"))
	assert.Equal(t, 1, r.total())

	assert.True(t, r.remove(sub.token))
	assert.Equal(t, 0, r.count("msg"))
	assert.Equal(t, 0, r.total())

	// Removing again is a no-op.
	assert.False(t, r.remove(sub.token))
}

func TestRegistry_EmptySequencesAreDropped(t *testing.T) {
	r := newRegistry()

	sub := newSubscription("msg", nopHandler())
	r.add(sub)
	require.Equal(t, []Name{"msg"}, r.names())

	r.remove(sub.token)
	assert.Empty(t, r.names(), "name with no subscribers must not be reported")
}

func TestRegistry_WildcardSequenceIsSeparate(t *testing.T) {
	r := newRegistry()

	r.add(newSubscription("msg", nopHandler()))
	r.add(newSubscription(Wildcard, nopHandler()))

	assert.Equal(t, 1, r.count("msg"), "wildcard must not count against exact names")
	assert.Equal(t, 1, r.count(Wildcard))
	assert.Equal(t, []Name{"msg"}, r.names(), "names must exclude the wildcard")
}

func TestRegistry_SnapshotOrder(t *testing.T) {
	r := newRegistry()

	// Interleave registrations to prove grouping: exact first, then
	// wildcard, each in registration order.
	a := newSubscription("msg", nopHandler())
	w1 := newSubscription(Wildcard, nopHandler())
	b := newSubscription("msg", nopHandler())
	w2 := newSubscription(Wildcard, nopHandler())
	other := newSubscription("other", nopHandler())

	for _, s := range []*subscription{a, w1, b, w2, other} {
		r.add(s)
	}

	snap := r.snapshot(testEvent("msg"))

	require.Len(t, snap, 4)
	assert.Equal(t, a.token, snap[0].token)
	assert.Equal(t, b.token, snap[1].token)
	assert.Equal(t, w1.token, snap[2].token)
	assert.Equal(t, w2.token, snap[3].token)
}

func TestRegistry_SnapshotClaimsOnceEntries(t *testing.T) {
	r := newRegistry()

	once := newSubscription("msg", nopHandler(), WithOnce())
	persistent := newSubscription("msg", nopHandler())
	r.add(once)
	r.add(persistent)

	first := r.snapshot(testEvent("msg"))
	require.Len(t, first, 2)

	// The once entry is already gone from the live registry.
	assert.Equal(t, 1, r.count("msg"))

	second := r.snapshot(testEvent("msg"))
	require.Len(t, second, 1)
	assert.Equal(t, persistent.token, second[0].token)
}

func TestRegistry_SnapshotClaimsOnceWildcard(t *testing.T) {
	r := newRegistry()

	r.add(newSubscription(Wildcard, nopHandler(), WithOnce()))

	require.Len(t, r.snapshot(testEvent("anything")), 1)
	assert.Equal(t, 0, r.count(Wildcard))
	assert.Empty(t, r.snapshot(testEvent("anything")))
}

func TestRegistry_SnapshotSkipsFilteredOnce(t *testing.T) {
	r := newRegistry()

	reject := func(ev Event) bool { return false }
	r.add(newSubscription("msg", nopHandler(), WithOnce(), WithFilter(reject)))

	assert.Empty(t, r.snapshot(testEvent("msg")))
	// Not claimed: it was never in a snapshot.
	assert.Equal(t, 1, r.count("msg"))
}

func TestRegistry_SnapshotSkipsPaused(t *testing.T) {
	r := newRegistry()

	sub := newSubscription("msg", nopHandler())
	r.add(sub)
	sub.pause()

	assert.Empty(t, r.snapshot(testEvent("msg")))
	// Paused subscriptions are still registered.
	assert.Equal(t, 1, r.count("msg"))

	sub.resume()
	assert.Len(t, r.snapshot(testEvent("msg")), 1)
}

func TestRegistry_Clear(t *testing.T) {
	r := newRegistry()

	r.add(newSubscription("a", nopHandler()))
	r.add(newSubscription("a", nopHandler()))
	r.add(newSubscription("b", nopHandler()))
	r.add(newSubscription(Wildcard, nopHandler()))

	r.clear("a")
	assert.Equal(t, 0, r.count("a"))
	assert.Equal(t, 1, r.count("b"))
	assert.Equal(t, 1, r.count(Wildcard))
	assert.Equal(t, 2, r.total())

	r.clear()
	assert.Equal(t, 0, r.total())
	assert.Equal(t, 0, r.count(Wildcard))
	assert.Empty(t, r.names())
}

func TestRegistry_ClearWildcardOnly(t *testing.T) {
	r := newRegistry()

	r.add(newSubscription("a", nopHandler()))
	r.add(newSubscription(Wildcard, nopHandler()))

	r.clear(Wildcard)
	assert.Equal(t, 0, r.count(Wildcard))
	assert.Equal(t, 1, r.count("a"))
	assert.Equal(t, 1, r.total())
}

func TestRegistry_ClearUnknownNameIsNoop(t *testing.T) {
	r := newRegistry()
	r.add(newSubscription("a", nopHandler()))

	r.clear("unknown")
	assert.Equal(t, 1, r.total())
}

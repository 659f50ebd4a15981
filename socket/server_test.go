package socket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCancelMatchKeepsOtherFeeds(t *testing.T) {
	subs := newSubscriptions()
	var aCanceled, bCanceled bool
	subs.add("conn-1", "match-a", func() { aCanceled = true })
	subs.add("conn-1", "match-b", func() { bCanceled = true })

	subs.cancelMatch("conn-1", "match-a")

	assert.True(t, aCanceled)
	assert.False(t, bCanceled, "leaving one match keeps the connection's other feed live")

	// The left match can be rejoined.
	assert.True(t, subs.add("conn-1", "match-a", func() {}))
}

func TestDuplicateJoinRejected(t *testing.T) {
	subs := newSubscriptions()

	assert.True(t, subs.add("conn-1", "match-a", func() {}))
	assert.False(t, subs.add("conn-1", "match-a", func() {}), "one subscription per connection and match")
	assert.True(t, subs.add("conn-2", "match-a", func() {}), "other connections may watch the same match")
}

func TestCancelConnCancelsAllOfThatConnection(t *testing.T) {
	subs := newSubscriptions()
	canceled := make(map[string]bool)
	subs.add("conn-1", "match-a", func() { canceled["a"] = true })
	subs.add("conn-1", "match-b", func() { canceled["b"] = true })
	subs.add("conn-2", "match-a", func() { canceled["other"] = true })

	subs.cancelConn("conn-1")

	assert.True(t, canceled["a"])
	assert.True(t, canceled["b"])
	assert.False(t, canceled["other"], "other connections are untouched")
}

func TestCancelMatchUnknownKeyIsNoop(t *testing.T) {
	subs := newSubscriptions()
	subs.cancelMatch("conn-1", "match-a")
	subs.cancelConn("conn-1")
}

package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHub_FirstAndLastConnection(t *testing.T) {
	h := NewHub()

	tab1 := NewConn("alice", nil)
	tab2 := NewConn("alice", nil)

	assert.True(t, h.Add(tab1), "first connection for the user")
	assert.False(t, h.Add(tab2), "second tab is not the first connection")
	assert.Equal(t, 2, h.CountFor("alice"))

	assert.False(t, h.Remove(tab1), "one tab remains")
	assert.True(t, h.Remove(tab2), "last connection gone")
	assert.Equal(t, 0, h.CountFor("alice"))
}

func TestHub_UsersAreIndependent(t *testing.T) {
	h := NewHub()

	alice := NewConn("alice", nil)
	bob := NewConn("bob", nil)

	assert.True(t, h.Add(alice))
	assert.True(t, h.Add(bob))
	assert.Equal(t, 2, h.Len())

	assert.True(t, h.Remove(alice), "removing alice does not affect bob")
	assert.Equal(t, 1, h.CountFor("bob"))
}

func TestHub_RemoveUnknownConnIsNoOp(t *testing.T) {
	h := NewHub()

	known := NewConn("alice", nil)
	stranger := NewConn("alice", nil)

	h.Add(known)

	assert.False(t, h.Remove(stranger))
	assert.Equal(t, 1, h.CountFor("alice"))

	// Double remove is harmless.
	assert.True(t, h.Remove(known))
	assert.False(t, h.Remove(known))
}

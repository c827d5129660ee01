package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMirrorLoadsBothClasses(t *testing.T) {
	mirror, err := buildMirror([]StateRecord{
		{Scope: uint8(Instance), Key: "vault:admin", Value: []byte("a")},
		{Scope: uint8(Persistent), Key: "vault:project:0", Value: []byte("p")},
	})
	require.NoError(t, err)

	v, ok := mirror.Get(Instance, "vault:admin")
	assert.True(t, ok)
	assert.Equal(t, []byte("a"), v)
	assert.True(t, mirror.Has(Persistent, "vault:project:0"))
	assert.False(t, mirror.Has(Persistent, "vault:admin"))
}

func TestBuildMirrorRejectsUnknownScope(t *testing.T) {
	_, err := buildMirror([]StateRecord{
		{Scope: 7, Key: "vault:admin", Value: []byte("a")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scope")
}

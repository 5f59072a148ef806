package id

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDIsUniqueUUID(t *testing.T) {
	gen := NewUUIDGenerator()
	seen := make(map[string]struct{}, 100)
	for i := 0; i < 100; i++ {
		v := gen.NewID()
		parsed, err := uuid.Parse(v)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(4), parsed.Version())
		seen[v] = struct{}{}
	}
	assert.Len(t, seen, 100)
}

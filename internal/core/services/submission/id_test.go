package submission

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDGeneratorIsMonotonicWhenClockStalls(t *testing.T) {
	fixed := time.UnixMilli(1_700_000_000_000)
	g := &IDGenerator{
		now:    func() time.Time { return fixed },
		random: func() uint64 { return 35 },
	}

	first := g.NewID()
	second := g.NewID()

	assert.Equal(t, strconv.FormatInt(fixed.UnixMilli(), 36)+"z", first)
	assert.Equal(t, strconv.FormatInt(fixed.UnixMilli()+1, 36)+"z", second)
}

func TestIDGeneratorUnique(t *testing.T) {
	g := NewIDGenerator()
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := g.NewID()
		require.Regexp(t, idShape, id)
		_, dup := seen[id]
		require.False(t, dup, id)
		seen[id] = struct{}{}
	}
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "%5B%7B%22a%22%3A%201%7D%5D", encodeURIComponent(`[{"a": 1}]`))
	assert.Equal(t, "A-z_0.9!~*'()", encodeURIComponent("A-z_0.9!~*'()"))
	assert.Equal(t, "%E2%82%B1", encodeURIComponent("₱"))
}

package rotation

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colegottdank/debateai-engagement/internal/db"
)

type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func TestPickWeighted_Walk(t *testing.T) {
	pool := []db.Topic{{ID: 1, Weight: 1}, {ID: 2, Weight: 2}, {ID: 3, Weight: 1}}

	cases := map[float64]uint64{
		0:      1,
		0.25:   1, // r=1.0 lands exactly on the first boundary
		0.26:   2,
		0.75:   2,
		0.76:   3,
		0.9999: 3,
	}
	for r, want := range cases {
		got := PickWeighted(pool, fixedRand(r))
		require.NotNil(t, got)
		assert.Equal(t, want, got.ID, "r=%v", r)
	}

	assert.Nil(t, PickWeighted(nil, fixedRand(0.5)))
}

func TestPickWeighted_ApproximatesRatios(t *testing.T) {
	pool := []db.Topic{{ID: 1, Weight: 1}, {ID: 2, Weight: 3}, {ID: 3, Weight: 6}}
	rng := rand.New(rand.NewPCG(42, 1024))

	const draws = 50000
	counts := map[uint64]int{}
	for i := 0; i < draws; i++ {
		counts[PickWeighted(pool, rng).ID]++
	}

	assert.InDelta(t, 0.1, float64(counts[1])/draws, 0.01)
	assert.InDelta(t, 0.3, float64(counts[2])/draws, 0.01)
	assert.InDelta(t, 0.6, float64(counts[3])/draws, 0.01)
}

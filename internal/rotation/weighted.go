package rotation

import (
	"math/rand/v2"

	"github.com/colegottdank/debateai-engagement/internal/db"
)

// Rand is the random source for weighted picks. Float64 must return a value in [0,1).
type Rand interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// DefaultRand uses the process-wide math/rand/v2 source.
func DefaultRand() Rand { return globalRand{} }

// PickWeighted chooses one candidate with probability weight/total.
//
// Draws r in [0,total), walks candidates subtracting each weight and returns
// the first one where r drops to or below zero. Returns nil for an empty slice.
func PickWeighted(candidates []db.Topic, rng Rand) *db.Topic {
	if len(candidates) == 0 {
		return nil
	}

	var total float64
	for _, c := range candidates {
		total += c.Weight
	}

	r := rng.Float64() * total
	for i := range candidates {
		r -= candidates[i].Weight
		if r <= 0 {
			return &candidates[i]
		}
	}
	// float rounding can leave a sliver past the last weight
	return &candidates[len(candidates)-1]
}

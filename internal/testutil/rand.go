package testutil

import "sync"

// ScriptedRand replays a fixed sequence of values in [0,1), cycling when exhausted.
type ScriptedRand struct {
	mu     sync.Mutex
	values []float64
	next   int
}

func NewScriptedRand(values ...float64) *ScriptedRand {
	if len(values) == 0 {
		values = []float64{0}
	}
	return &ScriptedRand{values: values}
}

func (r *ScriptedRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.values[r.next%len(r.values)]
	r.next++
	return v
}

// Calls reports how many values have been drawn.
func (r *ScriptedRand) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.next
}

package service

import (
	"math/rand"

	"lettrix/internal/ports"
)

// RandomPicker draws from the process-wide generator; every call samples fresh.
type RandomPicker struct{}

// Pick returns a uniformly random index in [0, n).
func (RandomPicker) Pick(n int) int {
	return rand.Intn(n)
}

// PickVariant returns one element of pool, or "" when the pool is empty.
func PickVariant(p ports.Picker, pool []string) string {
	if len(pool) == 0 {
		return ""
	}
	i := p.Pick(len(pool))
	if i < 0 || i >= len(pool) {
		i = 0
	}
	return pool[i]
}

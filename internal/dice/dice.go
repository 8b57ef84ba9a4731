// Package dice isolates every random draw the game makes behind a Roller so
// tests can force deterministic outcomes.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// Roller is the single source of randomness for accuracy checks, item
// placement, and rarity selection.
type Roller interface {
	// IntN returns a uniform integer in [0, n). n must be > 0.
	IntN(n int) int
}

type pcgRoller struct {
	rng *rand.Rand
}

// NewRoller returns a seeded Roller. The same seed always produces the same
// sequence of draws.
func NewRoller(seed uint64) Roller {
	return &pcgRoller{rng: rand.New(rand.NewPCG(seed, seed))}
}

func (r *pcgRoller) IntN(n int) int {
	return r.rng.IntN(n)
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Percentile draws a uniform integer in [1, 100].
func Percentile(r Roller) int {
	return r.IntN(100) + 1
}

// Weighted picks an index from weights proportionally to its weight.
// Returns -1 if no weight is positive.
func Weighted(r Roller, weights []int) int {
	total := 0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return -1
	}

	draw := r.IntN(total)
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if draw < w {
			return i
		}
		draw -= w
	}
	return -1
}

// Pick returns a uniform index into a slice of the given length, or -1 for an
// empty slice.
func Pick(r Roller, length int) int {
	if length == 0 {
		return -1
	}
	return r.IntN(length)
}

package utils

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource feeds every piece of filler content (ratings, template picks,
// review counts, id suffixes). Seed it to get reproducible courses.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
	Read(p []byte) (int, error)
}

type lockedRandom struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSource returns a goroutine-safe source. seed 0 means "seed from the clock".
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRandom{rnd: rand.New(rand.NewSource(seed))}
}

func (r *lockedRandom) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Float64()
}

func (r *lockedRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}

func (r *lockedRandom) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Read(p)
}

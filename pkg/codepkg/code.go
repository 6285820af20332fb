// Package codepkg generates human facing unique codes for ledger entries.
package codepkg

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Prefix is prepended to every generated code.
const Prefix = "TX-"

// Generator produces codes that are distinct within a process and sort by creation time.
type Generator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// New returns a Generator backed by monotonic ULID entropy.
func New() *Generator {
	return &Generator{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

// Generate returns the next unique code.
//
// ULIDs created within the same millisecond increment the random part,
// so codes never collide even under a coarse clock.
func (g *Generator) Generate() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(g.now()), g.entropy)
	if err != nil {
		return "", err
	}

	return Prefix + id.String(), nil
}

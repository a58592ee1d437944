// Package identity provides the boundary implementations of id generation
// and wall-clock time. The core accepts these as interfaces so every
// computation stays deterministic under test.
package identity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Generator assigns UUID-backed ids with a type prefix, e.g. "op-<uuid>"
type Generator struct{}

// NewGenerator creates a UUID-backed id generator
func NewGenerator() *Generator {
	return &Generator{}
}

// NewID returns a fresh prefixed id
func (g *Generator) NewID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}

// SystemClock reads the wall clock
type SystemClock struct{}

// Now returns the current time
func (SystemClock) Now() time.Time {
	return time.Now()
}

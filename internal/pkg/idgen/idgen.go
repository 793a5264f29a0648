// Package idgen names generated levels
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator hands out level IDs
type Generator interface {
	Generate() string
}

// join prefixes id with "prefix_" unless prefix is empty
func join(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}

// SequentialGenerator yields prefix_1, prefix_2, ... and is used in tests
// where IDs must be predictable
type SequentialGenerator struct {
	prefix string
	next   atomic.Uint64
}

// NewSequential creates a sequential generator
func NewSequential(prefix string) *SequentialGenerator {
	return &SequentialGenerator{prefix: prefix}
}

// Generate returns the next ID. Safe for concurrent use.
func (g *SequentialGenerator) Generate() string {
	return join(g.prefix, strconv.FormatUint(g.next.Add(1), 10))
}

// UUIDGenerator yields prefix_<random uuid>. The server uses it so level IDs
// never collide across restarts that share a Redis.
type UUIDGenerator struct {
	prefix string
}

// NewUUID creates a UUID generator
func NewUUID(prefix string) *UUIDGenerator {
	return &UUIDGenerator{prefix: prefix}
}

// Generate returns a new random ID
func (g *UUIDGenerator) Generate() string {
	return join(g.prefix, uuid.NewString())
}

package id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strconv"
	"sync/atomic"
)

// Generator creates opaque IDs. The match service uses them as document
// revisions, so two calls must never return the same value.
type Generator interface {
	NewID() (string, error)
}

type RandomGenerator struct{}

func NewRandomGenerator() *RandomGenerator {
	return &RandomGenerator{}
}

func (g *RandomGenerator) NewID() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// SequenceGenerator hands out prefix-1, prefix-2, ... and is meant for tests
// and the command line tool where reproducible ids are easier to read.
type SequenceGenerator struct {
	prefix string
	next   atomic.Uint64
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) NewID() (string, error) {
	n := g.next.Add(1)
	if g.prefix == "" {
		return strconv.FormatUint(n, 10), nil
	}
	return g.prefix + "-" + strconv.FormatUint(n, 10), nil
}

package service

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces ids for newly added entities.
type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.New().String() }

// SequenceGenerator yields prefix1, prefix2, ... and is safe for concurrent use.
type SequenceGenerator struct {
	prefix string
	n      atomic.Int64
}

func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

func (g *SequenceGenerator) NewID() string {
	return fmt.Sprintf("%s%d", g.prefix, g.n.Add(1))
}

// SkipPast moves the sequence beyond every prefixN among ids, so a document
// written by an earlier process never receives a repeated id.
func (g *SequenceGenerator) SkipPast(ids []string) {
	for _, id := range ids {
		digits, ok := strings.CutPrefix(id, g.prefix)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil || n <= 0 {
			continue
		}
		for {
			cur := g.n.Load()
			if cur >= n || g.n.CompareAndSwap(cur, n) {
				break
			}
		}
	}
}

// idSkipper is implemented by generators whose ids can collide with ids
// already present in a loaded document.
type idSkipper interface {
	SkipPast(ids []string)
}

const (
	IDStrategyUUID     = "uuid"
	IDStrategySequence = "sequence"
)

// NewIDGenerator returns the generator for a configured strategy name.
func NewIDGenerator(strategy string) (IDGenerator, error) {
	switch strategy {
	case "", IDStrategyUUID:
		return UUIDGenerator{}, nil
	case IDStrategySequence:
		return NewSequenceGenerator("id-"), nil
	}
	return nil, fmt.Errorf("unknown id strategy %q (want %s or %s)", strategy, IDStrategyUUID, IDStrategySequence)
}

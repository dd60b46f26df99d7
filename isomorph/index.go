package isomorph

import (
	"fmt"
	"sync"

	"github.com/opencoff/go-chd"
)

// Index assigns each canonical flop a dense slot in [0, 1755) through a
// minimal perfect hash over the flop's card-set bits. Any flop can be looked
// up; it is canonicalized first.
type Index struct {
	table  *chd.Chd
	flops  []Flop  // slot -> canonical flop
	slotOf []int32 // hash value -> slot, -1 when unused
}

// NewIndex builds an index over AllCanonicalFlops. Slots follow the sorted
// canonical order, so slot i is AllCanonicalFlops()[i].
func NewIndex() (*Index, error) {
	flops := AllCanonicalFlops()

	b, err := chd.New()
	if err != nil {
		return nil, fmt.Errorf("canonical index: %w", err)
	}
	for _, f := range flops {
		b.Add(uint64(f.Hand()))
	}
	table, err := b.Freeze(0.9)
	if err != nil {
		return nil, fmt.Errorf("canonical index: freeze: %w", err)
	}

	hashes := make([]uint64, len(flops))
	var maxHash uint64
	for i, f := range flops {
		hashes[i] = table.Find(uint64(f.Hand()))
		maxHash = max(maxHash, hashes[i])
	}
	if maxHash >= uint64(4*len(flops)) {
		return nil, fmt.Errorf("canonical index: hash value %d out of range", maxHash)
	}

	slotOf := make([]int32, maxHash+1)
	for i := range slotOf {
		slotOf[i] = -1
	}
	for i, h := range hashes {
		if slotOf[h] != -1 {
			return nil, fmt.Errorf("canonical index: %s and %s share hash %d", flops[slotOf[h]], flops[i], h)
		}
		slotOf[h] = int32(i)
	}

	return &Index{table: table, flops: flops, slotOf: slotOf}, nil
}

var defaultIndex = sync.OnceValues(NewIndex)

// DefaultIndex returns a process-wide index, built on first use.
func DefaultIndex() (*Index, error) {
	return defaultIndex()
}

// Len returns the number of slots.
func (x *Index) Len() int {
	return len(x.flops)
}

// Lookup canonicalizes f and returns its slot. ok is false only for an
// invalid flop.
func (x *Index) Lookup(f Flop) (slot int, ok bool) {
	if f.Validate() != nil {
		return 0, false
	}
	key := Canonical(f).Hand()
	h := x.table.Find(uint64(key))
	if h >= uint64(len(x.slotOf)) {
		return 0, false
	}
	s := x.slotOf[h]
	if s < 0 || x.flops[s].Hand() != key {
		return 0, false
	}
	return int(s), true
}

// Flop returns the canonical flop stored at slot.
func (x *Index) Flop(slot int) (Flop, bool) {
	if slot < 0 || slot >= len(x.flops) {
		return Flop{}, false
	}
	return x.flops[slot], true
}

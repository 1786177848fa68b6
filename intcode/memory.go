package intcode

import (
	"iter"
	"maps"
	"math"
	"slices"

	"github.com/ezrec/intcode/internal"
)

const (
	DENSE_SLACK = 4096 // Writes within this distance of the dense region extend it.
)

// Memory is a sparse, growable address space of Values.
//
// Addresses near the loaded image live in a slice that is extended on
// demand; far addresses live in a map. Unset addresses read as zero.
type Memory struct {
	dense  []Value
	sparse map[int]*Value
	length int
}

// NewMemory creates memory holding values at addresses 0..len(values)-1.
func NewMemory(values []Value) (mem *Memory) {
	mem = &Memory{
		dense:  slices.Clone(values),
		length: len(values),
	}

	return
}

// Read returns the value at addr, or zero if it was never written.
func (mem *Memory) Read(addr int) (value Value) {
	if addr < len(mem.dense) {
		return mem.dense[addr]
	}

	if slot, ok := mem.sparse[addr]; ok {
		value = *slot
	}

	return
}

// Slot returns a writable reference to addr, creating it if absent.
// The reference is only valid until the next call to Slot.
func (mem *Memory) Slot(addr int) *Value {
	if addr >= mem.length {
		mem.length = addr + 1
		if addr == math.MaxInt {
			mem.length = math.MaxInt
		}
	}

	if addr < len(mem.dense) {
		return &mem.dense[addr]
	}

	if addr < len(mem.dense)+DENSE_SLACK {
		from := len(mem.dense)
		mem.dense = append(mem.dense, make([]Value, addr+1-from)...)
		// Fold sparse entries now covered by the dense region.
		for n := from; n <= addr && len(mem.sparse) > 0; n++ {
			if value, ok := mem.sparse[n]; ok {
				mem.dense[n] = *value
				delete(mem.sparse, n)
			}
		}
		return &mem.dense[addr]
	}

	if mem.sparse == nil {
		mem.sparse = map[int]*Value{}
	}

	slot, ok := mem.sparse[addr]
	if !ok {
		slot = new(Value)
		mem.sparse[addr] = slot
	}

	return slot
}

// Write sets the value at addr.
func (mem *Memory) Write(addr int, value Value) {
	*mem.Slot(addr) = value
}

// Len returns one past the highest address ever written or loaded,
// saturating at math.MaxInt.
func (mem *Memory) Len() int {
	return mem.length
}

// Values returns a copy of the contiguous region starting at address 0.
// Far addresses held sparsely are not included; see Range and All.
func (mem *Memory) Values() []Value {
	return slices.Clone(mem.dense)
}

// Range returns a copy of addresses from..to-1.
func (mem *Memory) Range(from, to int) (values []Value) {
	if to <= from {
		return
	}

	values = make([]Value, to-from)
	for n := range values {
		values[n] = mem.Read(from + n)
	}

	return
}

// All iterates the stored addresses in ascending order.
func (mem *Memory) All() iter.Seq2[int, Value] {
	var sparse iter.Seq2[int, Value] = func(yield func(addr int, value Value) bool) {
		for _, addr := range slices.Sorted(maps.Keys(mem.sparse)) {
			if !yield(addr, *mem.sparse[addr]) {
				return
			}
		}
	}

	return internal.Concat2(slices.All(mem.dense), sparse)
}

// Clone returns a deep copy.
func (mem *Memory) Clone() *Memory {
	var sparse map[int]*Value
	if len(mem.sparse) > 0 {
		sparse = make(map[int]*Value, len(mem.sparse))
		for addr, value := range mem.sparse {
			copied := *value
			sparse[addr] = &copied
		}
	}

	return &Memory{
		dense:  slices.Clone(mem.dense),
		sparse: sparse,
		length: mem.length,
	}
}

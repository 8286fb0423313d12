package sim

import "iter"

const (
	poolBlockSize = 64
)

// pool stores values of type T in fixed-size blocks. Deleting a value only
// marks its slot empty, so the indices of the other values stay stable until
// Compact is called.
type pool[T any] struct {
	blocks    [][poolBlockSize]T
	filled    [][poolBlockSize]bool
	freeSlots []int
	nextIndex int
}

// Append stores item and returns its index. Free slots are reused first.
func (p *pool[T]) Append(item T) int {
	if len(p.freeSlots) > 0 {
		index := p.freeSlots[len(p.freeSlots)-1]
		p.freeSlots = p.freeSlots[:len(p.freeSlots)-1]

		blockIdx := index / poolBlockSize
		slotIdx := index % poolBlockSize

		p.blocks[blockIdx][slotIdx] = item
		p.filled[blockIdx][slotIdx] = true
		return index
	}

	index := p.nextIndex
	p.nextIndex++

	blockIdx := index / poolBlockSize
	slotIdx := index % poolBlockSize

	if blockIdx >= len(p.blocks) {
		p.blocks = append(p.blocks, [poolBlockSize]T{})
		p.filled = append(p.filled, [poolBlockSize]bool{})
	}

	p.blocks[blockIdx][slotIdx] = item
	p.filled[blockIdx][slotIdx] = true
	return index
}

// Get returns a pointer to the value at index, or nil for an empty slot.
func (p *pool[T]) Get(index int) *T {
	if !p.Has(index) {
		return nil
	}
	return &p.blocks[index/poolBlockSize][index%poolBlockSize]
}

// Delete marks the slot at index as empty.
func (p *pool[T]) Delete(index int) bool {
	if !p.Has(index) {
		return false
	}

	blockIdx := index / poolBlockSize
	slotIdx := index % poolBlockSize

	p.filled[blockIdx][slotIdx] = false
	var zero T
	p.blocks[blockIdx][slotIdx] = zero
	p.freeSlots = append(p.freeSlots, index)
	return true
}

// Has reports whether index holds a value.
func (p *pool[T]) Has(index int) bool {
	if index < 0 || index >= p.nextIndex {
		return false
	}
	return p.filled[index/poolBlockSize][index%poolBlockSize]
}

// Len returns the number of stored values.
func (p *pool[T]) Len() int {
	return p.nextIndex - len(p.freeSlots)
}

// Slots returns the number of slots in use or free below the high-water mark.
func (p *pool[T]) Slots() int {
	return p.nextIndex
}

// Free returns the number of empty slots below the high-water mark.
func (p *pool[T]) Free() int {
	return len(p.freeSlots)
}

// Compact moves every value to the front of the pool, preserving order, and
// returns the old-to-new index mapping.
func (p *pool[T]) Compact() map[int]int {
	indexMap := make(map[int]int, p.Len())
	total := p.Len()
	if total == 0 {
		p.blocks = nil
		p.filled = nil
		p.freeSlots = nil
		p.nextIndex = 0
		return indexMap
	}

	numBlocks := (total + poolBlockSize - 1) / poolBlockSize
	newBlocks := make([][poolBlockSize]T, numBlocks)
	newFilled := make([][poolBlockSize]bool, numBlocks)

	writePos := 0
	for readIdx := 0; readIdx < p.nextIndex; readIdx++ {
		readBlock := readIdx / poolBlockSize
		readSlot := readIdx % poolBlockSize
		if !p.filled[readBlock][readSlot] {
			continue
		}

		indexMap[readIdx] = writePos
		newBlocks[writePos/poolBlockSize][writePos%poolBlockSize] = p.blocks[readBlock][readSlot]
		newFilled[writePos/poolBlockSize][writePos%poolBlockSize] = true
		writePos++
	}

	p.blocks = newBlocks
	p.filled = newFilled
	p.freeSlots = nil
	p.nextIndex = writePos
	return indexMap
}

// Iter yields the indices of stored values in ascending order.
func (p *pool[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; i < p.nextIndex; i++ {
			if p.filled[i/poolBlockSize][i%poolBlockSize] {
				if !yield(i) {
					return
				}
			}
		}
	}
}

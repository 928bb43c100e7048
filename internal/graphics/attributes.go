package graphics

import (
	"errors"
	"sort"
)

// ErrAttributesExhausted is returned when every vertex attribute slot is in use.
var ErrAttributesExhausted = errors.New("graphics: vertex attribute slots exhausted")

// AttributePool hands out vertex attribute indices, always the smallest free one.
type AttributePool struct {
	max   uint32
	inUse map[uint32]struct{}
}

// NewAttributePool creates a pool of max slots.
func NewAttributePool(max uint32) *AttributePool {
	return &AttributePool{
		max:   max,
		inUse: make(map[uint32]struct{}),
	}
}

// Acquire reserves the smallest free index.
func (p *AttributePool) Acquire() (uint32, error) {
	for i := uint32(0); i < p.max; i++ {
		if _, taken := p.inUse[i]; !taken {
			p.inUse[i] = struct{}{}
			return i, nil
		}
	}
	return 0, ErrAttributesExhausted
}

// Release frees an index. Releasing a free index is a no-op.
func (p *AttributePool) Release(id uint32) {
	delete(p.inUse, id)
}

// InUse returns the reserved indices in ascending order.
func (p *AttributePool) InUse() []uint32 {
	ids := make([]uint32, 0, len(p.inUse))
	for id := range p.inUse {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

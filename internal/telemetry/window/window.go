// Package window keeps the most recent blocks observed by the node.
package window

import (
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-telemetry/internal/model"
)

// DefaultCapacity is the number of blocks used for hash rate estimation.
const DefaultCapacity = 100

// BlockWindow is a bounded FIFO of blocks in arrival order.
// Writers append under a short lock; readers receive copies.
type BlockWindow struct {
	mu       sync.Mutex
	capacity int
	blocks   []model.Block
}

// New creates a window holding at most capacity blocks.
func New(capacity int) *BlockWindow {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &BlockWindow{
		capacity: capacity,
		blocks:   make([]model.Block, 0, capacity+1),
	}
}

// OnBlockArrived appends the block and evicts the oldest entry on overflow.
func (w *BlockWindow) OnBlockArrived(b model.Block) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.blocks = append(w.blocks, b)
	if len(w.blocks) > w.capacity {
		// shift in place so the backing array never grows past capacity+1
		copy(w.blocks, w.blocks[1:])
		w.blocks = w.blocks[:w.capacity]
	}
}

// Snapshot returns the window contents, oldest first.
func (w *BlockWindow) Snapshot() []model.Block {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]model.Block, len(w.blocks))
	copy(out, w.blocks)
	return out
}

// Len returns the number of blocks currently held.
func (w *BlockWindow) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.blocks)
}

// Capacity returns the maximum number of blocks held.
func (w *BlockWindow) Capacity() int {
	return w.capacity
}

// Package history remembers recently generated records so the seeder can
// resubmit some of them as intentional duplicates.
package history

import (
	"math/rand/v2"

	"dishseed/models"
	"github.com/gammazero/deque"
)

// History is a ring buffer: once capacity records are held, adding a new one evicts the oldest.
type History struct {
	buf      deque.Deque[models.Record]
	capacity int
}

func New(capacity int) *History {
	if capacity <= 0 {
		capacity = 1
	}
	return &History{capacity: capacity}
}

func (h *History) Add(r models.Record) {
	if h.buf.Len() >= h.capacity {
		h.buf.PopFront()
	}
	h.buf.PushBack(r)
}

func (h *History) Len() int {
	return h.buf.Len()
}

func (h *History) Cap() int {
	return h.capacity
}

// Pick returns a uniformly chosen retained record, or false when history is empty.
func (h *History) Pick(rng *rand.Rand) (models.Record, bool) {
	if h.buf.Len() == 0 {
		return models.Record{}, false
	}
	return h.buf.At(rng.IntN(h.buf.Len())), true
}

// Package dump keeps records that failed to submit so they can be replayed later.
package dump

import (
	"errors"
	"sync"

	"dishseed/customerrors"
	"dishseed/models"
	"github.com/gammazero/deque"
	log "github.com/sirupsen/logrus"
)

// Buffer collects failed records and hands them to a Dumper once maxLen is reached.
// A nil *Buffer discards everything.
type Buffer struct {
	mu     sync.Mutex
	buf    deque.Deque[models.Record]
	dumper Dumper
	maxLen int
	logger *log.Logger
}

func NewBuffer(d Dumper, maxLen int, logger *log.Logger) *Buffer {
	if maxLen <= 0 {
		maxLen = 1
	}
	return &Buffer{dumper: d, maxLen: maxLen, logger: logger}
}

func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Len()
}

func (b *Buffer) Append(records ...models.Record) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, r := range records {
		b.buf.PushBack(r)
	}
	if b.buf.Len() >= b.maxLen {
		b.logger.Traceln("dumping buffer because it reached max size")
		b.flush()
	}
}

// Flush writes whatever is buffered. Called once more at the end of a run.
func (b *Buffer) Flush() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.flush()
}

func (b *Buffer) flush() {
	if b.buf.Len() == 0 {
		return
	}
	records := make([]models.Record, 0, b.buf.Len())
	for b.buf.Len() > 0 {
		records = append(records, b.buf.PopFront())
	}
	err := b.dumper.Dump(records)
	if errors.Is(err, ErrDumpTooBig) {
		c := customerrors.NewCriticalError(err).Wrap(map[string]interface{}{
			"File": b.dumper.GetPath(), "MaxSize": b.dumper.GetMaxSize(), "Dropped": len(records),
		})
		b.logger.Errorln(c.Error())
	} else if err != nil {
		b.logger.Errorln(err)
	}
}

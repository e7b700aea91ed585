package engine

import (
	"context"
	"sync/atomic"
	"time"
)

// Clock supplies the per-call timestamp, unix seconds.
type Clock interface {
	Now() int64
}

// Sequencer supplies the per-call sequence number. It must be strictly
// increasing between any two calls so that (timestamp, sequence) never
// repeats; invoice ID uniqueness rests on that.
type Sequencer interface {
	Next(ctx context.Context) (int64, error)
}

type WallClock struct{}

func (WallClock) Now() int64 {
	return time.Now().Unix()
}

// NewAtomicSequencer returns an in-process sequencer. A restarted process
// restarts the counter, but the wall clock component of the ID input has
// moved on by then; deployments needing a stronger guarantee use the
// store-backed counter instead.
func NewAtomicSequencer() *AtomicSequencer {
	return &AtomicSequencer{}
}

type AtomicSequencer struct {
	n atomic.Int64
}

func (s *AtomicSequencer) Next(ctx context.Context) (int64, error) {
	return s.n.Add(1), nil
}

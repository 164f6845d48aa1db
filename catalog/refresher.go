package catalog

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/deepc-skill/deepc/constant"
	"github.com/deepc-skill/deepc/log"
)

// Refresher runs a sync function on a timer whose delay is drawn uniformly
// from [min, max) and redrawn after every run, successful or not.
type Refresher struct {
	minDelay, maxDelay time.Duration
	run                func(context.Context) error

	// Int64N returns a value in [0, n). Replaceable for tests.
	Int64N func(n int64) int64

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewRefresher returns a stopped refresher. A non-positive bound takes its
// default, and maxDelay is raised above minDelay when needed.
func NewRefresher(minDelay, maxDelay time.Duration, run func(context.Context) error) *Refresher {
	if minDelay <= 0 {
		minDelay = constant.RefreshMinDelay
	}
	if maxDelay <= 0 {
		maxDelay = constant.RefreshMaxDelay
	}
	maxDelay = max(maxDelay, minDelay+1)

	return &Refresher{
		minDelay: minDelay,
		maxDelay: maxDelay,
		run:      run,
		Int64N:   rand.Int63n,
	}
}

// Next draws the delay before the following run.
func (r *Refresher) Next() time.Duration {
	return r.minDelay + time.Duration(r.Int64N(int64(r.maxDelay-r.minDelay)))
}

// Start arms the timer. Calling Start on a running refresher is a no-op.
func (r *Refresher) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cancel != nil {
		return
	}

	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	go r.loop(ctx, r.done)
}

// Stop cancels the pending run and waits for an in-flight one to return.
func (r *Refresher) Stop() {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.cancel, r.done = nil, nil
	r.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the timer is armed.
func (r *Refresher) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancel != nil
}

func (r *Refresher) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	for {
		delay := r.Next()
		log.Debugf("next catalog refresh in %s", delay)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}

		if err := r.run(ctx); err != nil {
			log.Warnf("scheduled refresh failed: %s", err)
		}
	}
}

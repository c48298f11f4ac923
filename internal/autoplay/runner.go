package autoplay

import (
	"context"
	"sync"
	"time"

	"github.com/abhisek/thermoviz/internal/logger"
)

// DefaultInterval is the time between ticks.
const DefaultInterval = 100 * time.Millisecond

// Runner drives a Sequence from a single goroutine. It stops on its own
// when the bound is reached, when the context is cancelled, or on Stop.
type Runner struct {
	interval time.Duration
	onTick   func(Sequence)

	mu      sync.Mutex
	seq     Sequence
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	started bool
	log     *logger.Logger
}

// NewRunner creates a runner for seq. onTick is called from the runner's
// goroutine after every step, including the final one. onTick must not
// call Stop: Stop waits for that goroutine and would deadlock.
func NewRunner(seq Sequence, interval time.Duration, onTick func(Sequence)) *Runner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if onTick == nil {
		onTick = func(Sequence) {}
	}
	return &Runner{
		interval: interval,
		onTick:   onTick,
		seq:      seq,
		done:     make(chan struct{}),
		log:      logger.Default().WithPrefix("autoplay"),
	}
}

// Start launches the ticking goroutine. Calling Start twice is a no-op.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.started {
		return
	}
	r.started = true

	ctx, cancel := context.WithCancel(ctx)
	r.ctx, r.cancel = ctx, cancel

	if r.seq.Done() {
		cancel()
		close(r.done)
		return
	}

	r.log.Debug("starting at %.1f°C, speed %.1f, cooling=%v", r.seq.Temp, r.seq.Speed, r.seq.Cooling)
	go r.run(ctx)
}

func (r *Runner) run(ctx context.Context) {
	defer close(r.done)
	// Release the derived context even when the bound ends the run.
	defer r.cancel()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.Debug("stopped at %.1f°C", r.Current().Temp)
			return
		case <-ticker.C:
			r.mu.Lock()
			next, finished := r.seq.Next()
			r.seq = next
			r.mu.Unlock()

			r.onTick(next)
			if finished {
				r.log.Debug("reached %.1f°C", next.Temp)
				return
			}
		}
	}
}

// Stop cancels the runner and waits for its goroutine to exit. It is safe
// to call more than once and before Start.
func (r *Runner) Stop() {
	r.mu.Lock()
	if !r.started {
		r.started = true
		close(r.done)
		r.mu.Unlock()
		return
	}
	cancel := r.cancel
	r.mu.Unlock()

	cancel()
	<-r.done
}

// Done is closed once the runner has finished for any reason.
func (r *Runner) Done() <-chan struct{} { return r.done }

// Current returns the latest state.
func (r *Runner) Current() Sequence {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seq
}

// Package search runs catalog searches behind a debounce so rapid input does
// not flood the API. A newer query cancels the superseded in-flight request,
// so an out-of-order response can never overwrite newer results.
package search

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/favmov/favmov-go/internal/tmdb"
)

// DefaultDelay is the quiet interval before a query fires.
const DefaultDelay = 500 * time.Millisecond

// maxResults caps the dropdown preview.
const maxResults = 5

// SearchFunc performs the actual catalog search.
type SearchFunc func(ctx context.Context, query string) ([]tmdb.Movie, error)

// Runner debounces queries and delivers results through callbacks.
// Callbacks run with the Runner's internal lock held and must not call
// back into Query or Close.
type Runner struct {
	delay     time.Duration
	search    SearchFunc
	onResults func(query string, movies []tmdb.Movie)
	onError   func(query string, err error)

	mu     sync.Mutex
	timer  *time.Timer
	cancel context.CancelFunc
	gen    uint64
	closed bool
}

// NewRunner creates a Runner. onError may be nil.
func NewRunner(delay time.Duration, search SearchFunc, onResults func(string, []tmdb.Movie), onError func(string, error)) *Runner {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Runner{
		delay:     delay,
		search:    search,
		onResults: onResults,
		onError:   onError,
	}
}

// Query schedules a search for q after the debounce interval. A blank query
// cancels anything pending or in flight and clears results immediately.
func (r *Runner) Query(q string) {
	q = strings.TrimSpace(q)

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	if q == "" {
		if r.cancel != nil {
			r.cancel()
			r.cancel = nil
		}
		r.gen++
		r.onResults(q, nil)
		r.mu.Unlock()
		return
	}
	r.timer = time.AfterFunc(r.delay, func() { r.run(q) })
	r.mu.Unlock()
}

func (r *Runner) run(q string) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	if r.cancel != nil {
		r.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.gen++
	gen := r.gen
	r.mu.Unlock()

	movies, err := r.search(ctx, q)

	// Re-check supersession under the lock and deliver while still holding
	// it, so a search that lost the race to a newer query can never reach
	// the callbacks, even when it ignored its context.
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || gen != r.gen {
		return
	}
	if err != nil {
		if r.onError != nil {
			r.onError(q, err)
		}
		return
	}

	if len(movies) > maxResults {
		movies = movies[:maxResults]
	}
	r.onResults(q, movies)
}

// Close stops any pending timer and cancels the in-flight request.
func (r *Runner) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

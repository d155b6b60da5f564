package appearance

import (
	"sync"
	"time"
)

// DefaultWatchInterval is how often the system preference is re-read.
// Terminals have no push channel for OS appearance changes, so we poll.
const DefaultWatchInterval = 2 * time.Second

// watcher observes the OS dark-mode preference and re-applies the current
// settings when it flips while the persisted theme is "system". Explicit
// light/dark themes ignore flips entirely.
type watcher struct {
	ctrl     *Controller
	onChange func(Settings)

	mu   sync.Mutex
	last bool
	has  bool
}

// WatchSystem starts a polling watcher for the OS preference. onChange (may
// be nil) runs after each re-apply caused by a flip. The returned cancel is
// deterministic and idempotent: after it returns, the watcher goroutine no
// longer holds the preference source.
func (c *Controller) WatchSystem(interval time.Duration, onChange func(Settings)) (cancel func()) {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	w := &watcher{ctrl: c, onChange: onChange}
	// Seed the baseline now, not at the first tick: a flip landing inside
	// the first interval must register as a change, not become the baseline.
	w.last = c.prefersDark()
	w.has = true

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-t.C:
				w.poll()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(stop)
			<-done
		})
	}
}

// poll re-reads the preference and, on a flip with theme==system, re-runs
// Apply with the stored settings (unchanged fields; the derived dark/light
// resolution is what moves).
func (w *watcher) poll() {
	dark := w.ctrl.prefersDark()

	w.mu.Lock()
	flipped := w.has && dark != w.last
	w.last = dark
	w.has = true
	w.mu.Unlock()

	if !flipped {
		return
	}
	s := w.ctrl.Current()
	if s.Theme != ThemeSystem {
		return
	}
	applied := w.ctrl.Apply(s)
	if w.onChange != nil {
		w.onChange(applied)
	}
}

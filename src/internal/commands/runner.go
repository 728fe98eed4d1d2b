package commands

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/maksimkurb/keen-console/src/internal/log"
)

// RestartableRunner runs a background task of the server, restarting it with
// exponential backoff when it fails or panics.
type RestartableRunner struct {
	cfg  RunnerConfig
	task func(ctx context.Context) error

	mu           sync.RWMutex
	cancel       context.CancelFunc
	done         chan struct{}
	lastError    error
	restartCount int
}

// RunnerConfig contains configuration for RestartableRunner.
type RunnerConfig struct {
	Name           string
	MaxRestarts    int           // 0 = unlimited restarts
	RestartBackoff time.Duration // default: 1s
	MaxBackoff     time.Duration // default: 30s
	StopTimeout    time.Duration // default: 30s
}

// NewRestartableRunner creates a runner for task.
func NewRestartableRunner(cfg RunnerConfig, task func(ctx context.Context) error) *RestartableRunner {
	if cfg.RestartBackoff <= 0 {
		cfg.RestartBackoff = time.Second
	}
	if cfg.MaxBackoff <= 0 {
		cfg.MaxBackoff = 30 * time.Second
	}
	if cfg.StopTimeout <= 0 {
		cfg.StopTimeout = 30 * time.Second
	}
	return &RestartableRunner{cfg: cfg, task: task}
}

// Start runs the task in a goroutine until ctx is done or Stop is called.
func (r *RestartableRunner) Start(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done != nil {
		return fmt.Errorf("%s is already running", r.cfg.Name)
	}

	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})
	r.restartCount = 0
	r.lastError = nil

	go r.loop(ctx, r.done)
	return nil
}

// Stop cancels the task and waits for it to return.
func (r *RestartableRunner) Stop() error {
	r.mu.Lock()
	cancel, done := r.cancel, r.done
	r.mu.Unlock()

	if done == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
	case <-time.After(r.cfg.StopTimeout):
		return fmt.Errorf("%s: timeout waiting for stop", r.cfg.Name)
	}

	r.mu.Lock()
	r.cancel, r.done = nil, nil
	r.mu.Unlock()
	return nil
}

// IsRunning reports whether the task loop has been started and not stopped.
func (r *RestartableRunner) IsRunning() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.done == nil {
		return false
	}
	select {
	case <-r.done:
		return false
	default:
		return true
	}
}

// LastError returns the error of the last task run.
func (r *RestartableRunner) LastError() error {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastError
}

// RestartCount returns the number of restarts since Start.
func (r *RestartableRunner) RestartCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.restartCount
}

func (r *RestartableRunner) loop(ctx context.Context, done chan struct{}) {
	defer close(done)

	backoff := r.cfg.RestartBackoff
	for {
		err := r.runOnce(ctx)

		r.mu.Lock()
		r.lastError = err
		r.mu.Unlock()

		if ctx.Err() != nil {
			log.Debugf("%s: stopped", r.cfg.Name)
			return
		}
		if err == nil {
			log.Infof("%s: exited cleanly", r.cfg.Name)
			return
		}

		r.mu.Lock()
		r.restartCount++
		restarts := r.restartCount
		r.mu.Unlock()

		if r.cfg.MaxRestarts > 0 && restarts >= r.cfg.MaxRestarts {
			log.Errorf("%s: max restarts (%d) reached, giving up. Last error: %v", r.cfg.Name, r.cfg.MaxRestarts, err)
			return
		}

		log.Errorf("%s: failed: %v. Restarting in %v (restart #%d)", r.cfg.Name, err, backoff, restarts)

		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff):
		}

		backoff = min(backoff*2, r.cfg.MaxBackoff)
	}
}

func (r *RestartableRunner) runOnce(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("panic: %v", recovered)
		}
	}()
	return r.task(ctx)
}

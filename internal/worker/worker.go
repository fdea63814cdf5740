package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Task is one tick of a background worker.
type Task func(ctx context.Context) error

// Ticker runs a Task on a fixed interval until stopped. Ticks never overlap.
type Ticker struct {
	name     string
	interval time.Duration
	task     Task
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewTicker(name string, interval time.Duration, task Task, logger *slog.Logger) *Ticker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ticker{name: name, interval: interval, task: task, logger: logger}
}

func (t *Ticker) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		t.Run(ctx)
	}()
}

// Stop cancels the loop and waits for an in-flight tick, bounded by ctx.
func (t *Ticker) Stop(ctx context.Context) error {
	if t.cancel == nil {
		return nil
	}
	t.cancel()

	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *Ticker) Run(ctx context.Context) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	t.logger.Info("worker started", "worker", t.name, "interval", t.interval)
	for {
		select {
		case <-ctx.Done():
			t.logger.Info("worker stopped", "worker", t.name)
			return
		case <-ticker.C:
			t.tick(ctx)
		}
	}
}

func (t *Ticker) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error("worker tick panicked", "worker", t.name, "panic", r)
		}
	}()
	if err := t.task(ctx); err != nil && ctx.Err() == nil {
		t.logger.Error("worker tick failed", "worker", t.name, "error", err.Error())
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"sync"
)

// Looper runs posted tasks one at a time, in order, on the goroutine that
// calls Run. The queue is unbounded so Post never blocks the poster.
type Looper struct {
	mu      sync.Mutex
	tasks   []func()
	quit    bool
	wake    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

// NewLooper builds an idle looper. Tasks posted before Run are kept.
func NewLooper() *Looper {
	return &Looper{
		wake:    make(chan struct{}, 1),
		stopped: make(chan struct{}),
	}
}

// Post implements Poster.
func (l *Looper) Post(task func()) bool {
	l.mu.Lock()
	if l.quit {
		l.mu.Unlock()
		return false
	}
	l.tasks = append(l.tasks, task)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

// Quit stops the looper after the task it is running. Pending tasks are
// discarded and later posts are dropped.
func (l *Looper) Quit() {
	l.once.Do(func() {
		l.mu.Lock()
		l.quit = true
		l.tasks = nil
		l.mu.Unlock()
		close(l.stopped)
	})
}

// Run drains the queue until Quit is called or ctx ends. It implements
// workers.Worker.
func (l *Looper) Run(ctx context.Context) error {
	defer l.Quit()

	for {
		for {
			task, ok := l.next()
			if !ok {
				break
			}
			task()
		}

		select {
		case <-l.wake:
		case <-l.stopped:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (l *Looper) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.quit || len(l.tasks) == 0 {
		return nil, false
	}
	task := l.tasks[0]
	l.tasks[0] = nil
	l.tasks = l.tasks[1:]
	return task, true
}

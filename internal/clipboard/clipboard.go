// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clipboard copies secrets to the system clipboard and wipes them
// again after a delay.
package clipboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"
)

// Clipboard is the system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

// System returns the clipboard of the current desktop session.
func System() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// Clearer copies text to a clipboard and schedules its removal. Only one
// clear is pending at a time: a new Copy replaces the previous schedule.
type Clearer struct {
	board Clipboard

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	copied string
}

func NewClearer(board Clipboard) *Clearer {
	return &Clearer{board: board}
}

// Copy writes text to the clipboard and clears it after delay unless ctx is
// canceled first, in which case it is cleared right away. A delay <= 0 keeps
// the text until Clear or Stop is called.
func (c *Clearer) Copy(ctx context.Context, text string, delay time.Duration) error {
	c.Stop()

	if err := c.board.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.copied = text
	if delay <= 0 {
		return nil
	}

	jobCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done

	go func() {
		defer close(done)
		t := time.NewTimer(delay)
		defer t.Stop()

		select {
		case <-t.C:
		case <-jobCtx.Done():
			// Stop cancels without clearing; only the parent ctx wipes early
			if ctx.Err() == nil {
				return
			}
		}
		_ = c.Clear()
	}()

	return nil
}

// Clear empties the clipboard if it still holds the copied text. Anything the
// user copied in the meantime is left alone.
func (c *Clearer) Clear() error {
	c.mu.Lock()
	copied := c.copied
	c.copied = ""
	c.mu.Unlock()

	if copied == "" {
		return nil
	}

	current, err := c.board.ReadAll()
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}
	if current != copied {
		return nil
	}
	if err = c.board.WriteAll(""); err != nil {
		return fmt.Errorf("clear clipboard: %w", err)
	}
	return nil
}

// Wait blocks until the pending clear has run or was canceled.
func (c *Clearer) Wait() {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Stop cancels the pending clear without touching the clipboard. Safe to call
// when nothing is scheduled.
func (c *Clearer) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	done := c.done
	c.cancel = nil
	c.done = nil
	c.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}

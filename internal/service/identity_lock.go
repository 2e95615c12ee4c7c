package service

import (
	"context"
	"sync"
)

// identityLocks hands out one mutex per identity key. Entries are reference
// counted and dropped once nobody holds or waits for them.
type identityLocks struct {
	mu    sync.Mutex
	locks map[string]*identityLock
}

type identityLock struct {
	ch   chan struct{}
	refs int
}

func newIdentityLocks() *identityLocks {
	return &identityLocks{locks: make(map[string]*identityLock)}
}

// lock blocks until key is free or ctx is done. On success the returned func
// releases the lock.
func (l *identityLocks) lock(ctx context.Context, key string) (func(), error) {
	l.mu.Lock()
	il, ok := l.locks[key]
	if !ok {
		il = &identityLock{ch: make(chan struct{}, 1)}
		l.locks[key] = il
	}
	il.refs++
	l.mu.Unlock()

	select {
	case il.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(key, il)
		return nil, ctx.Err()
	}

	return func() {
		<-il.ch
		l.release(key, il)
	}, nil
}

func (l *identityLocks) release(key string, il *identityLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	il.refs--
	if il.refs == 0 {
		delete(l.locks, key)
	}
}

func (l *identityLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}

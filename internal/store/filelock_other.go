//go:build !unix

package store

import "sync"

var (
	pathLocksMu sync.Mutex
	pathLocks   = make(map[string]*sync.Mutex)
)

// lockFile only serializes writers inside this process on platforms without
// flock.
func lockFile(path string) (func(), error) {
	pathLocksMu.Lock()
	mu, ok := pathLocks[path]
	if !ok {
		mu = &sync.Mutex{}
		pathLocks[path] = mu
	}
	pathLocksMu.Unlock()

	mu.Lock()
	return mu.Unlock, nil
}

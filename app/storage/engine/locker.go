package engine

import "sync"

// RWLocker guards repository access. Sqlite allows a single writer, each sqlite repository
// holds a real mutex, postgres repositories get a lock which never blocks.
type RWLocker interface {
	sync.Locker
	RLock()
	RUnlock()
}

// MakeLock creates a lock for a repository on top of this engine
func (e *SQL) MakeLock() RWLocker {
	if e.dbType == Sqlite {
		return new(sync.RWMutex)
	}
	return freeLock{}
}

// freeLock is used for postgres, the server handles concurrent access itself
type freeLock struct{}

func (freeLock) Lock()    {}
func (freeLock) Unlock()  {}
func (freeLock) RLock()   {}
func (freeLock) RUnlock() {}

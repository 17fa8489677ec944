package service

import "sync"

// LockRegistry serializes mutations per hackathon aggregate. Every operation
// that touches a hackathon's teams, members or lifecycle takes the
// hackathon's lock first, so concurrent joins, evaluations and status
// changes never interleave within one hackathon. One registry is shared by
// all services.
type LockRegistry struct {
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

func NewLockRegistry() *LockRegistry {
	return &LockRegistry{
		locks: make(map[uint]*sync.Mutex),
	}
}

func (l *LockRegistry) get(hackathonID uint) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	m, ok := l.locks[hackathonID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[hackathonID] = m
	}

	return m
}

// Lock acquires the lock for one hackathon and returns the unlock func.
func (l *LockRegistry) Lock(hackathonID uint) func() {
	m := l.get(hackathonID)
	m.Lock()

	return m.Unlock
}

// LockBoth acquires the locks of two hackathons in ascending ID order, so
// two cross-hackathon moves can never deadlock each other. Either ID may be
// zero, and the two may be equal; in both cases a single lock is taken.
func (l *LockRegistry) LockBoth(a, b uint) func() {
	if a == b || b == 0 {
		return l.Lock(a)
	}
	if a == 0 {
		return l.Lock(b)
	}

	first, second := a, b
	if second < first {
		first, second = second, first
	}

	unlockFirst := l.Lock(first)
	unlockSecond := l.Lock(second)

	return func() {
		unlockSecond()
		unlockFirst()
	}
}

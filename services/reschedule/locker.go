package reschedule

import (
	"sync"
	"time"

	"github.com/glowbook/salon-booking/redis"
)

// Locker serializes calendar mutations per provider. The lock is held for
// the full duration of one ResolveOverrunConflicts call.
type Locker interface {
	Lock(providerID uint) (unlock func(), err error)
}

// LocalLocker is an in-process mutex table. Sufficient when a single
// instance serves a provider's traffic, and what the tests use.
type LocalLocker struct {
	mu sync.Map // providerID -> *sync.Mutex
}

func (l *LocalLocker) Lock(providerID uint) (func(), error) {
	v, _ := l.mu.LoadOrStore(providerID, &sync.Mutex{})
	m := v.(*sync.Mutex)
	m.Lock()
	return m.Unlock, nil
}

// RedisLocker leases a per-provider lock in Redis so resolutions stay
// serialized across application instances.
type RedisLocker struct {
	// Wait is the acquisition budget; zero means 10 seconds.
	Wait time.Duration
}

func (l *RedisLocker) Lock(providerID uint) (func(), error) {
	wait := l.Wait
	if wait == 0 {
		wait = 10 * time.Second
	}
	lease, err := redis.AcquireProviderLock(providerID, wait)
	if err != nil {
		return nil, err
	}
	return func() { lease.Release(providerID) }, nil
}

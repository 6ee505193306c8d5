package redis

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Lease duration for provider calendar locks. Conflict resolution runs
// within one request, so a short lease with retries is enough; the expiry
// guards against a crashed holder wedging the provider's calendar.
const lockTTL = 30 * time.Second

// ProviderLock serializes calendar mutations per provider across all
// application instances using a Redis SET NX lease. Two overrun
// resolutions for the same provider must never interleave, or both could
// claim the same free slot.
type ProviderLock struct {
	token string
}

// AcquireProviderLock blocks until the provider's calendar lock is held or
// the wait budget runs out.
func AcquireProviderLock(providerID uint, wait time.Duration) (*ProviderLock, error) {
	key := providerLockKey(providerID)
	token := uuid.NewString()
	deadline := time.Now().Add(wait)

	for {
		ok, err := Client.SetNX(Ctx, key, token, lockTTL).Result()
		if err != nil {
			return nil, fmt.Errorf("acquire provider lock: %w", err)
		}
		if ok {
			return &ProviderLock{token: token}, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("provider %d calendar is locked", providerID)
		}
		time.Sleep(50 * time.Millisecond)
	}
}

// Release drops the lease if this holder still owns it.
func (l *ProviderLock) Release(providerID uint) {
	key := providerLockKey(providerID)
	// Only delete our own lease; an expired lease may have been re-acquired.
	const script = `
		if redis.call("GET", KEYS[1]) == ARGV[1] then
			return redis.call("DEL", KEYS[1])
		end
		return 0
	`
	Client.Eval(Ctx, script, []string{key}, l.token)
}

func providerLockKey(providerID uint) string {
	return fmt.Sprintf("lock:provider:%d", providerID)
}

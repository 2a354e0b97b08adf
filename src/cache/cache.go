package cache

import (
	"fmt"
	"sync"

	"github.com/dgraph-io/ristretto"
	log "github.com/sirupsen/logrus"

	"spendwise-server/src/models"
)

// User rows are immutable after registration, so cached entries never go
// stale. Keys are still tracked so the whole user cache can be dropped at
// once. Dashboard snapshots and expense lists are deliberately not cached;
// those reads must always reflect the store.
var (
	Cache        *ristretto.Cache
	UserCacheKeys = struct {
		sync.RWMutex
		m map[string]struct{}
	}{m: make(map[string]struct{})}
)

// Init creates the process-wide cache. Callers that skip Init (tests) get
// no-op cache operations.
func Init() {
	var err error
	Cache, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}
}

func userKey(username string) string {
	return fmt.Sprintf("user:%s", username)
}

func GetUser(username string) (*models.User, bool) {
	if Cache == nil {
		return nil, false
	}
	value, ok := Cache.Get(userKey(username))
	if !ok {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func SetUser(user *models.User) {
	if Cache == nil {
		return
	}
	key := userKey(user.Username)
	UserCacheKeys.Lock()
	UserCacheKeys.m[key] = struct{}{}
	UserCacheKeys.Unlock()
	Cache.Set(key, user, 1)
}

func ClearUsers() {
	if Cache == nil {
		return
	}
	UserCacheKeys.Lock()
	for key := range UserCacheKeys.m {
		Cache.Del(key)
	}
	UserCacheKeys.m = make(map[string]struct{})
	UserCacheKeys.Unlock()
}

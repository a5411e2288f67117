package auth

import (
	"time"

	"github.com/patrickmn/go-cache"

	"ultraai/internal/db/models"
)

const (
	DefaultCacheExpiry  = 24 * time.Hour
	DefaultCacheCleanup = 1 * time.Hour
)

// CacheManager guarda usuários resolvidos por API Key para evitar uma
// consulta ao banco em cada request autenticado.
type CacheManager struct {
	cache *cache.Cache
}

func NewCacheManager() *CacheManager {
	return &CacheManager{
		cache: cache.New(DefaultCacheExpiry, DefaultCacheCleanup),
	}
}

func (cm *CacheManager) SetUser(apiKey string, user *models.User) {
	cm.cache.Set(apiKey, user, cache.DefaultExpiration)
}

func (cm *CacheManager) GetUser(apiKey string) (*models.User, bool) {
	if item, found := cm.cache.Get(apiKey); found {
		if user, ok := item.(*models.User); ok {
			return user, true
		}
	}
	return nil, false
}

func (cm *CacheManager) DeleteUser(apiKey string) {
	cm.cache.Delete(apiKey)
}

func (cm *CacheManager) Flush() {
	cm.cache.Flush()
}

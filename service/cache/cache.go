// Package cache stores json encoded values under a key prefix on top of a
// raw provider. It backs the metadata document, ens and http response caches.
package cache

import (
	"errors"
	"time"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/service/cache/provider"
)

// DefaultTtl applies when ServiceConfig.Ttl is not positive, a zero ttl would never expire
const DefaultTtl = time.Minute

var (
	ErrNotFound = errors.New("cache entry not found")
)

// OneTimeGetter loads a value on cache miss, it must return a pointer
type OneTimeGetter func() (interface{}, error)

type Service interface {
	// GetByFunc fills container from the cache, or from getter on a miss and caches the result
	GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
}

type ServiceConfig struct {
	Ttl   time.Duration
	Pfx   string
	Cache provider.Provider
}

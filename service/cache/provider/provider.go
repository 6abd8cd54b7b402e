package provider

import (
	"errors"
	"time"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
)

var (
	ErrNotFound = errors.New("provider: key not found")
)

// Provider is a raw byte store with per entry expiry.
// Get returns the remaining ttl next to the value.
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
}

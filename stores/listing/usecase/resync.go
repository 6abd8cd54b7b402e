package usecase

import (
	"time"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/goroutine"
	"github.com/Beat1ngHeart/Custom-NFT/domain/listing"
)

const DefaultResyncInterval = 2 * time.Second

// StartResync re-reads the listing set every interval until c is done. It
// catches up on change notifications lost by the subscription.
func StartResync(c ctx.Ctx, store listing.Store, interval time.Duration) chan struct{} {
	if interval <= 0 {
		interval = DefaultResyncInterval
	}
	return goroutine.RecoverableTicker(c, interval, func(c ctx.Ctx) {
		if err := store.Resync(c); err != nil {
			c.WithField("err", err).Warn("listing resync failed")
		}
	})
}

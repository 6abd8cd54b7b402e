package healthcheck

import (
	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
)

const (
	CheckStore = "store"
	CheckChain = "chain"
)

// Report maps each checked backend to "ok" or the reason it failed
type Report map[string]string

// Healthy reports whether every check passed
func (r Report) Healthy() bool {
	for _, v := range r {
		if v != "ok" {
			return false
		}
	}
	return true
}

type HealthCheckUsecase interface {
	Check(c ctx.Ctx) Report
}

// HealthCheckRepo pings the databases the listing store and mint records live in
type HealthCheckRepo interface {
	PingDB(c ctx.Ctx) error
}

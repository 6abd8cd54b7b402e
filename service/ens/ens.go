package ens

import (
	"strings"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
)

type ENS interface {
	// Resolve returns the address a name points to, EmptyAddress when the name is unregistered
	Resolve(ctx ctx.Ctx, name string) (domain.Address, error)
}

// IsName reports whether input looks like a dotted ens name such as vitalik.eth.
// It does not check that the name is registered.
func IsName(input string) bool {
	labels := strings.Split(input, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" || strings.ContainsAny(l, " /\\") {
			return false
		}
	}
	return true
}

package repository

import (
	"sync"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
	"github.com/Beat1ngHeart/Custom-NFT/domain/contract"
)

type memoryRepo struct {
	mu   sync.RWMutex
	addr domain.Address
}

// NewMemoryRepo forgets the deployed address on restart, the configured one still applies
func NewMemoryRepo() contract.Repository {
	return &memoryRepo{}
}

func (r *memoryRepo) Get(c ctx.Ctx) (domain.Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.addr.IsEmpty() {
		return "", domain.ErrNotFound
	}
	return r.addr, nil
}

func (r *memoryRepo) Set(c ctx.Ctx, addr domain.Address) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.addr = addr.ToLower()
	return nil
}

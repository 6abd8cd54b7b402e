package repository

import (
	"sync"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
	"github.com/Beat1ngHeart/Custom-NFT/domain/listing"
	"github.com/Beat1ngHeart/Custom-NFT/domain/mint"
)

type memoryRepo struct {
	mu      sync.RWMutex
	records map[listing.Id]mint.Record
}

// NewMemoryRepo keeps mint records for the lifetime of the process
func NewMemoryRepo() mint.Repository {
	return &memoryRepo{
		records: map[listing.Id]mint.Record{},
	}
}

func (r *memoryRepo) Upsert(c ctx.Ctx, rec *mint.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.ListingId] = *rec
	return nil
}

func (r *memoryRepo) FindOne(c ctx.Ctx, id listing.Id) (*mint.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &rec, nil
}

func (r *memoryRepo) FindByTxHash(c ctx.Ctx, hash domain.TxHash) (*mint.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.TxHash == hash {
			res := rec
			return &res, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) FindInProgress(c ctx.Ctx) ([]*mint.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := []*mint.Record{}
	for _, rec := range r.records {
		if rec.Status.InProgress() {
			cur := rec
			res = append(res, &cur)
		}
	}
	return res, nil
}

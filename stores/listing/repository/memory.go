package repository

import (
	"sync"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/goroutine"
	"github.com/Beat1ngHeart/Custom-NFT/domain/listing"
)

// memoryRepo keeps the encoded set so readers never share pointers with writers
type memoryRepo struct {
	mu     sync.Mutex
	data   []byte
	subs   map[int]func()
	nextId int
}

// NewMemoryRepo is an in-process listing set. Every store bound to the same
// instance is notified of the writes of the others.
func NewMemoryRepo() listing.Repository {
	return &memoryRepo{
		subs: map[int]func(){},
	}
}

func (r *memoryRepo) Read(c ctx.Ctx) ([]*listing.Listing, error) {
	r.mu.Lock()
	data := r.data
	r.mu.Unlock()
	return decode(data)
}

func (r *memoryRepo) WriteAll(c ctx.Ctx, listings []*listing.Listing) error {
	data, err := encode(listings)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.data = data
	r.mu.Unlock()

	r.publish()
	return nil
}

func (r *memoryRepo) Update(c ctx.Ctx, m listing.Mutation) ([]*listing.Listing, error) {
	if err := c.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	current, err := decode(r.data)
	if err != nil {
		r.mu.Unlock()
		return nil, err
	}
	next, changed, err := m(current)
	if err != nil {
		r.mu.Unlock()
		return nil, err
	}
	if !changed {
		r.mu.Unlock()
		return current, nil
	}
	data, err := encode(next)
	if err != nil {
		r.mu.Unlock()
		return nil, err
	}
	r.data = data
	r.mu.Unlock()

	r.publish()
	return next, nil
}

// publish calls the handlers synchronously, outside of the lock so they can read back
func (r *memoryRepo) publish() {
	r.mu.Lock()
	handlers := make([]func(), 0, len(r.subs))
	for _, h := range r.subs {
		handlers = append(handlers, h)
	}
	r.mu.Unlock()

	for _, h := range handlers {
		h()
	}
}

func (r *memoryRepo) Subscribe(c ctx.Ctx, handler func()) (func(), error) {
	r.mu.Lock()
	id := r.nextId
	r.nextId++
	r.subs[id] = handler
	r.mu.Unlock()

	var once sync.Once
	stopped := make(chan struct{})
	unsubscribe := func() {
		once.Do(func() {
			close(stopped)
			r.mu.Lock()
			delete(r.subs, id)
			r.mu.Unlock()
		})
	}

	goroutine.RecoverableGo(func() {
		select {
		case <-c.Done():
			unsubscribe()
		case <-stopped:
		}
	})
	return unsubscribe, nil
}

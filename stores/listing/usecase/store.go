package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
	"github.com/Beat1ngHeart/Custom-NFT/domain/listing"
)

type store struct {
	repo listing.Repository

	// held across the read and the delivery of a snapshot
	dispatchMu sync.Mutex

	mu          sync.Mutex
	callbacks   map[int]listing.ChangeCallback
	nextCbId    int
	fingerprint string
}

// NewStore binds a store to repo. Writes of other stores on the same repository
// reach the callbacks through the repository subscription until c is done.
func NewStore(c ctx.Ctx, repo listing.Repository) (listing.Store, error) {
	s := &store{
		repo:      repo,
		callbacks: map[int]listing.ChangeCallback{},
	}

	current, err := repo.Read(c)
	if err != nil {
		c.WithField("err", err).Error("repo.Read failed")
		return nil, err
	}
	s.fingerprint = fingerprint(current)

	bg := ctx.Detach(c)
	if _, err := repo.Subscribe(c, func() {
		if err := s.Resync(bg); err != nil {
			bg.WithField("err", err).Warn("resync on change notification failed")
		}
	}); err != nil {
		c.WithField("err", err).Error("repo.Subscribe failed")
		return nil, err
	}
	return s, nil
}

func (s *store) List(c ctx.Ctx) ([]*listing.Listing, error) {
	return s.repo.Read(c)
}

func (s *store) Get(c ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	listings, err := s.repo.Read(c)
	if err != nil {
		return nil, err
	}
	for _, l := range listings {
		if l.Id == id {
			return l, nil
		}
	}
	return nil, domain.ErrNotFound
}

func validate(l *listing.Listing) error {
	switch {
	case l == nil:
		return domain.NewValidationError("listing is required")
	case len(l.Id) == 0:
		return domain.NewValidationError("listing id is required")
	case !l.Price.IsPositive():
		return domain.NewValidationError("price must be greater than zero")
	case l.Asset.IsEmpty():
		return domain.NewValidationError("asset is required")
	}
	return nil
}

func (s *store) Create(c ctx.Ctx, l *listing.Listing) error {
	if err := validate(l); err != nil {
		return err
	}

	_, err := s.repo.Update(c, func(current []*listing.Listing) ([]*listing.Listing, bool, error) {
		for _, cur := range current {
			if cur.Id == l.Id {
				return nil, false, domain.NewValidationError("duplicated listing id " + string(l.Id))
			}
		}
		return append(current, l), true, nil
	})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "listingId": l.Id}).Error("repo.Update failed")
		return err
	}

	s.notify(c)
	return nil
}

func (s *store) Remove(c ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	var removed *listing.Listing
	_, err := s.repo.Update(c, func(current []*listing.Listing) ([]*listing.Listing, bool, error) {
		removed = nil
		res := make([]*listing.Listing, 0, len(current))
		for _, l := range current {
			if l.Id == id {
				removed = l
				continue
			}
			res = append(res, l)
		}
		return res, removed != nil, nil
	})
	if err != nil {
		c.WithFields(log.Fields{"err": err, "listingId": id}).Error("repo.Update failed")
		return nil, err
	}

	if removed != nil {
		s.notify(c)
	}
	return removed, nil
}

func (s *store) OnChange(cb listing.ChangeCallback) func() {
	s.mu.Lock()
	id := s.nextCbId
	s.nextCbId++
	s.callbacks[id] = cb
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.callbacks, id)
			s.mu.Unlock()
		})
	}
}

func (s *store) Resync(c ctx.Ctx) error {
	s.dispatchMu.Lock()
	defer s.dispatchMu.Unlock()

	listings, err := s.repo.Read(c)
	if err != nil {
		return err
	}
	s.dispatch(c, listings)
	return nil
}

// notify follows a successful write. The write already happened, so a failed
// read is left to the next resync.
func (s *store) notify(c ctx.Ctx) {
	if err := s.Resync(c); err != nil {
		c.WithField("err", err).Warn("resync after write failed")
	}
}

// dispatch notifies the callbacks unless listings was the last snapshot they saw.
// Callers hold dispatchMu.
func (s *store) dispatch(c ctx.Ctx, listings []*listing.Listing) {
	fp := fingerprint(listings)

	s.mu.Lock()
	if fp == s.fingerprint {
		s.mu.Unlock()
		return
	}
	s.fingerprint = fp
	cbs := make([]listing.ChangeCallback, 0, len(s.callbacks))
	for _, cb := range s.callbacks {
		cbs = append(cbs, cb)
	}
	s.mu.Unlock()

	c.WithFields(log.Fields{"count": len(listings), "callbacks": len(cbs)}).Debug("listings changed")
	for _, cb := range cbs {
		cb(listings)
	}
}

func fingerprint(listings []*listing.Listing) string {
	if listings == nil {
		listings = []*listing.Listing{}
	}
	data, err := json.Marshal(listings)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

package listing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
)

type Id string

// AssetRef holds the listed image either inline as a data uri or pinned, never both
type AssetRef struct {
	Inline string             `json:"inline,omitempty"`
	Pinned *domain.ContentRef `json:"pinned,omitempty"`
}

func NewInlineAsset(dataUri string) AssetRef {
	return AssetRef{Inline: dataUri}
}

func NewPinnedAsset(ref domain.ContentRef) AssetRef {
	return AssetRef{Pinned: &ref}
}

func (a AssetRef) IsPinned() bool {
	return a.Pinned != nil && len(a.Pinned.Cid) > 0
}

func (a AssetRef) IsEmpty() bool {
	return len(a.Inline) == 0 && !a.IsPinned()
}

// Url returns where the image can be displayed from
func (a AssetRef) Url() string {
	if a.IsPinned() {
		return a.Pinned.Url
	}
	return a.Inline
}

type Listing struct {
	Id        Id                 `json:"id"`
	Name      string             `json:"name,omitempty"`
	Asset     AssetRef           `json:"asset"`
	Metadata  *domain.ContentRef `json:"metadata,omitempty"`
	Price     decimal.Decimal    `json:"price"`
	CreatedAt time.Time          `json:"createdAt"`
}

// Mintable reports whether the listing has a pinned metadata document
func (l *Listing) Mintable() bool {
	return l.Metadata != nil && len(l.Metadata.Cid) > 0
}

// Mutation receives the latest persisted set and returns the set to write.
// Returning changed=false skips the write.
type Mutation func(current []*Listing) (next []*Listing, changed bool, err error)

// Repository is the shared listing set. Every write replaces the whole set.
type Repository interface {
	Read(c ctx.Ctx) ([]*Listing, error)
	WriteAll(c ctx.Ctx, listings []*Listing) error
	// Update reads the latest set, applies m and writes the result
	Update(c ctx.Ctx, m Mutation) ([]*Listing, error)
	// Subscribe calls handler after any writer, in any process, changed the set
	Subscribe(c ctx.Ctx, handler func()) (unsubscribe func(), err error)
}

// ChangeCallback receives the full set after it changed. Snapshots arrive one
// at a time in the order they were read, so a callback must not write back to
// the store that called it.
type ChangeCallback func(listings []*Listing)

type Store interface {
	List(c ctx.Ctx) ([]*Listing, error)
	Get(c ctx.Ctx, id Id) (*Listing, error)
	Create(c ctx.Ctx, l *Listing) error
	Remove(c ctx.Ctx, id Id) (removed *Listing, err error)
	OnChange(cb ChangeCallback) (unsubscribe func())
	// Resync re-reads the set and notifies if it changed since the last notification
	Resync(c ctx.Ctx) error
}

type CreateParams struct {
	Asset       []byte
	Price       decimal.Decimal
	Name        string
	Description string
	Attributes  []domain.Attribute
	// Pin asks for pinning the asset and its metadata when a pinning client is configured
	Pin bool
}

type UseCase interface {
	CreateListing(c ctx.Ctx, params CreateParams) (*Listing, error)
	RemoveListing(c ctx.Ctx, id Id) error
	GetListing(c ctx.Ctx, id Id) (*Listing, error)
	List(c ctx.Ctx) ([]*Listing, error)
}

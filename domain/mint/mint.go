package mint

import (
	"time"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
	"github.com/Beat1ngHeart/Custom-NFT/domain/listing"
)

type Status string

const (
	StatusSubmitted  Status = "submitted"
	StatusConfirming Status = "confirming"
	StatusConfirmed  Status = "confirmed"
	StatusFailed     Status = "failed"
)

// InProgress reports whether a mint attempt in this status is still waiting for the chain
func (s Status) InProgress() bool {
	return s == StatusSubmitted || s == StatusConfirming
}

type Record struct {
	ListingId listing.Id      `json:"listingId" bson:"listingId"`
	Contract  domain.Address  `json:"contract" bson:"contract"`
	TokenUri  string          `json:"tokenUri" bson:"tokenUri"`
	TxHash    domain.TxHash   `json:"txHash" bson:"txHash"`
	// TokenId stays nil when the confirmed receipt carries no transfer event
	TokenId   *domain.TokenId `json:"tokenId" bson:"tokenId"`
	Status    Status          `json:"status" bson:"status"`
	Error     string          `json:"error,omitempty" bson:"error,omitempty"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updatedAt"`
}

// Degraded reports a mint confirmed on chain whose token id could not be recovered
func (r *Record) Degraded() bool {
	return r.Status == StatusConfirmed && r.TokenId == nil
}

type Repository interface {
	Upsert(c ctx.Ctx, r *Record) error
	FindOne(c ctx.Ctx, id listing.Id) (*Record, error)
	FindByTxHash(c ctx.Ctx, hash domain.TxHash) (*Record, error)
	FindInProgress(c ctx.Ctx) ([]*Record, error)
}

type UseCase interface {
	// Mint submits and waits for confirmation
	Mint(c ctx.Ctx, id listing.Id) (*Record, error)
	Submit(c ctx.Ctx, id listing.Id) (*Record, error)
	Confirm(c ctx.Ctx, id listing.Id) (*Record, error)
	// MintAsync submits and confirms in background
	MintAsync(c ctx.Ctx, id listing.Id) (*Record, error)
	Status(c ctx.Ctx, id listing.Id) (*Record, error)
	// Resume continues confirmations of persisted in-flight records
	Resume(c ctx.Ctx) error
	AddToWallet(c ctx.Ctx, id listing.Id) error
}

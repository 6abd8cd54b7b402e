package ownership

import (
	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
)

// OwnedNft is rebuilt from chain state on every scan
type OwnedNft struct {
	TokenId  domain.TokenId           `json:"tokenId"`
	TokenUri string                   `json:"tokenUri"`
	Metadata *domain.MetadataDocument `json:"metadata"`
	ImageUrl string                   `json:"imageUrl"`
}

type Download struct {
	Filename    string
	ContentType string
	Data        []byte
	// ArchiveUrl is set when a copy was written to the archive bucket
	ArchiveUrl string
}

type UseCase interface {
	ScanOwned(c ctx.Ctx, wallet domain.Address) ([]*OwnedNft, error)
	// ResolveWallet accepts a hex address or an ens name
	ResolveWallet(c ctx.Ctx, input string) (domain.Address, error)
	Download(c ctx.Ctx, wallet domain.Address, tokenId domain.TokenId) (*Download, error)
}

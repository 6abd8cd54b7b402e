package usecase

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gabriel-vasile/mimetype"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/ipfsuri"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
	"github.com/Beat1ngHeart/Custom-NFT/base/metrics"
	"github.com/Beat1ngHeart/Custom-NFT/base/nftmetadata"
	"github.com/Beat1ngHeart/Custom-NFT/base/validator"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
	"github.com/Beat1ngHeart/Custom-NFT/domain/contract"
	"github.com/Beat1ngHeart/Custom-NFT/domain/ownership"
	"github.com/Beat1ngHeart/Custom-NFT/service/cache"
	chaincontract "github.com/Beat1ngHeart/Custom-NFT/service/chain/contract"
	"github.com/Beat1ngHeart/Custom-NFT/service/ens"
)

const defaultExt = ".png"

var unsafeFilenameChars = regexp.MustCompile(`[/\\:*?"<>|\x00-\x1f]+`)

type OwnershipUseCaseCfg struct {
	Chain       domain.ChainClient
	Contract    contract.AddressProvider
	WebResource domain.WebResourceUseCase
	// Ens is optional, without it only hex wallets resolve
	Ens ens.ENS
	// Cache is optional and keeps metadata documents by gateway url
	Cache   cache.Service
	Gateway string
	// Archive writes a copy of each download through the web resource archive
	Archive bool
}

type impl struct {
	erc721      *chaincontract.Erc721
	contract    contract.AddressProvider
	webResource domain.WebResourceUseCase
	ens         ens.ENS
	cache       cache.Service
	gateway     string
	archive     bool
	met         metrics.Service
}

func New(cfg *OwnershipUseCaseCfg) ownership.UseCase {
	return &impl{
		erc721:      chaincontract.NewErc721(cfg.Chain),
		contract:    cfg.Contract,
		webResource: cfg.WebResource,
		ens:         cfg.Ens,
		cache:       cfg.Cache,
		gateway:     cfg.Gateway,
		archive:     cfg.Archive,
		met:         metrics.New("ownership"),
	}
}

func (im *impl) contractAddress(c ctx.Ctx) (common.Address, error) {
	addr, err := im.contract.ContractAddress(c)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return common.Address{}, domain.NewPipelineError(domain.ErrPrecondition, "resolve contract address", err)
	}
	if !validator.IsValidAddress(string(addr)) {
		return common.Address{}, domain.NewPreconditionError("contract address is not configured")
	}
	return addr.ToCommon(), nil
}

func (im *impl) ScanOwned(c ctx.Ctx, wallet domain.Address) ([]*ownership.OwnedNft, error) {
	if !validator.IsValidAddress(string(wallet)) {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid wallet address %q", wallet))
	}
	c = ctx.WithValue(c, "wallet", wallet.ToLower())

	addr, err := im.contractAddress(c)
	if err != nil {
		return nil, err
	}

	defer im.met.BumpTime("scan.time").End()

	supply, err := im.erc721.TotalSupply(c, addr)
	if err != nil {
		c.WithField("err", err).Error("erc721.TotalSupply failed")
		return nil, err
	}

	res := []*ownership.OwnedNft{}
	for i := int64(0); i < supply.Int64(); i++ {
		id := big.NewInt(i)
		owner, err := im.erc721.OwnerOf(c, addr, id)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "tokenId": id}).Warn("erc721.OwnerOf failed, skipped")
			im.met.BumpSum("token.err", 1)
			continue
		}
		if !owner.Equals(wallet) {
			continue
		}

		nft, err := im.resolve(c, addr, id)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "tokenId": id}).Warn("resolve token failed, skipped")
			im.met.BumpSum("token.err", 1)
			continue
		}
		res = append(res, nft)
	}

	im.met.BumpHistogram("scan.owned", float64(len(res)))
	return res, nil
}

// resolve reads the token uri and follows it to the metadata document
func (im *impl) resolve(c ctx.Ctx, addr common.Address, id *big.Int) (*ownership.OwnedNft, error) {
	uri, err := im.erc721.TokenURI(c, addr, id)
	if err != nil {
		return nil, err
	}

	doc, err := im.metadata(c, ipfsuri.GatewayUrl(im.gateway, uri))
	if err != nil {
		return nil, err
	}

	nft := &ownership.OwnedNft{
		TokenId:  domain.TokenId(id.String()),
		TokenUri: uri,
		Metadata: doc,
	}
	if len(doc.Image) > 0 {
		nft.ImageUrl = ipfsuri.GatewayUrl(im.gateway, doc.Image)
	}
	return nft, nil
}

func (im *impl) metadata(c ctx.Ctx, url string) (*domain.MetadataDocument, error) {
	fetch := func() (interface{}, error) {
		data, err := im.webResource.GetJson(c, url)
		if err != nil {
			return nil, err
		}
		doc, err := nftmetadata.Parse(data)
		if err != nil {
			return nil, domain.NewPipelineError(domain.ErrParse, "parse metadata of "+url, err)
		}
		return doc, nil
	}

	if im.cache == nil {
		val, err := fetch()
		if err != nil {
			return nil, err
		}
		return val.(*domain.MetadataDocument), nil
	}

	doc := &domain.MetadataDocument{}
	if err := im.cache.GetByFunc(c, url, doc, fetch); err != nil {
		return nil, err
	}
	return doc, nil
}

func (im *impl) ResolveWallet(c ctx.Ctx, input string) (domain.Address, error) {
	input = strings.TrimSpace(input)
	if validator.IsValidAddress(input) {
		return domain.Address(input).ToLower(), nil
	}
	if im.ens == nil || !ens.IsName(input) {
		return "", domain.NewValidationError(fmt.Sprintf("%q is neither an address nor an ens name", input))
	}

	addr, err := im.ens.Resolve(c, input)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "name": input}).Error("ens.Resolve failed")
		return "", err
	}
	if addr == domain.EmptyAddress {
		return "", domain.NewValidationError(fmt.Sprintf("ens name %s is not registered", input))
	}
	return addr, nil
}

func (im *impl) Download(c ctx.Ctx, wallet domain.Address, tokenId domain.TokenId) (*ownership.Download, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"wallet":  wallet.ToLower(),
		"tokenId": tokenId,
	})

	id, err := tokenId.ToBigInt()
	if err != nil {
		return nil, domain.NewValidationError(err.Error())
	}
	addr, err := im.contractAddress(c)
	if err != nil {
		return nil, err
	}

	owner, err := im.erc721.OwnerOf(c, addr, id)
	if err != nil {
		c.WithField("err", err).Error("erc721.OwnerOf failed")
		return nil, err
	}
	if !owner.Equals(wallet) {
		return nil, domain.NewPreconditionError(fmt.Sprintf("token %s is not owned by %s", tokenId, wallet))
	}

	nft, err := im.resolve(c, addr, id)
	if err != nil {
		return nil, err
	}
	if len(nft.ImageUrl) == 0 {
		return nil, domain.NewPreconditionError("token metadata has no image")
	}

	data, err := im.webResource.Get(c, nft.ImageUrl)
	if err != nil {
		c.WithField("err", err).Error("webResource.Get failed")
		return nil, err
	}

	mtype := mimetype.Detect(data)
	ext := mtype.Extension()
	if len(ext) == 0 || mtype.Is("application/octet-stream") {
		ext = defaultExt
	}

	dl := &ownership.Download{
		Filename:    Filename(tokenId, nft.Metadata.Name, ext),
		ContentType: mtype.String(),
		Data:        data,
	}

	if im.archive {
		url, err := im.webResource.Archive(c, "downloads/"+dl.Filename, data, dl.ContentType)
		if err != nil {
			c.WithField("err", err).Warn("archive download failed")
		} else {
			dl.ArchiveUrl = url
		}
	}

	im.met.BumpSum("download", 1)
	return dl, nil
}

// Filename names a downloaded image NFT-{id}-{name}{ext}
func Filename(tokenId domain.TokenId, name, ext string) string {
	name = strings.TrimSpace(unsafeFilenameChars.ReplaceAllString(name, "_"))
	if len(name) == 0 {
		name = "image"
	}
	return fmt.Sprintf("NFT-%s-%s%s", tokenId, name, ext)
}

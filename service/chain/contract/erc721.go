package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/Beat1ngHeart/Custom-NFT/base/abi"
	bCtx "github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
)

// Erc721 is the subset of the nft contract the pipeline talks to
type Erc721 struct {
	client            domain.ChainClient
	abi               *ethabi.ABI
	erc721InterfaceId [4]byte
}

func NewErc721(client domain.ChainClient) *Erc721 {
	var interfaceId [4]byte
	copy(interfaceId[:], common.Hex2Bytes("80ac58cd"))
	return &Erc721{
		client:            client,
		abi:               &baseabi.ERC721TokenABI,
		erc721InterfaceId: interfaceId,
	}
}

// Mint submits mint(tokenUri) from the wallet account
func (e *Erc721) Mint(ctx bCtx.Ctx, addr common.Address, tokenUri string) (common.Hash, error) {
	data, err := e.abi.Pack("mint", tokenUri)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"tokenUri": tokenUri,
		}).Error("abi.Pack failed")
		return common.Hash{}, err
	}
	return e.client.SendTransaction(ctx, &addr, data)
}

func (e *Erc721) Supports721Interface(ctx bCtx.Ctx, addr common.Address) (bool, error) {
	unpacked, err := e.client.Call(ctx, addr, e.abi, "supportsInterface", e.erc721InterfaceId)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (e *Erc721) TotalSupply(ctx bCtx.Ctx, addr common.Address) (*big.Int, error) {
	unpacked, err := e.client.Call(ctx, addr, e.abi, "totalSupply")
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc721) OwnerOf(ctx bCtx.Ctx, addr common.Address, tokenId *big.Int) (domain.Address, error) {
	unpacked, err := e.client.Call(ctx, addr, e.abi, "ownerOf", tokenId)
	if err != nil {
		return "", err
	}
	return domain.ToDomainAddress(unpacked[0].(common.Address)), nil
}

func (e *Erc721) TokenURI(ctx bCtx.Ctx, addr common.Address, tokenId *big.Int) (string, error) {
	unpacked, err := e.client.Call(ctx, addr, e.abi, "tokenURI", tokenId)
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}

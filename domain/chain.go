package domain

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
)

// ChainClient is the wallet and RPC capability the pipeline drives. Signing happens behind it.
type ChainClient interface {
	// SendTransaction submits a tx from the wallet account, a nil to creates a contract
	SendTransaction(c ctx.Ctx, to *common.Address, data []byte) (common.Hash, error)
	// WaitForReceipt blocks until the tx is mined or c is done
	WaitForReceipt(c ctx.Ctx, hash common.Hash) (*types.Receipt, error)
	Call(c ctx.Ctx, contract common.Address, abi *abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	CodeAt(c ctx.Ctx, addr common.Address) ([]byte, error)
	ChainId(c ctx.Ctx) (ChainId, error)
	SwitchNetwork(c ctx.Ctx, params NetworkParams) error
	WatchAsset(c ctx.Ctx, params WatchAssetParams) (bool, error)
}

type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int    `json:"decimals"`
}

// NetworkParams describes the chain the wallet should be on, it's also what wallet_addEthereumChain needs
type NetworkParams struct {
	ChainId           ChainId
	ChainName         string
	RpcUrls           []string
	NativeCurrency    NativeCurrency
	BlockExplorerUrls []string
}

// WatchAssetParams is an EIP-747 request for an ERC721 token
type WatchAssetParams struct {
	Address  Address
	TokenId  TokenId
	TokenUri string
	Image    string
}

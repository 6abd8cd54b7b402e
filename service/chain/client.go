package chain

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rpc"
	"golang.org/x/xerrors"

	"github.com/Beat1ngHeart/Custom-NFT/base/backoff"
	bCtx "github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
)

var (
	ErrNoAccount = errors.New("wallet exposes no account")
)

const (
	// returned by wallet_switchEthereumChain when the wallet doesn't know the chain
	unrecognizedChainCode = 4902

	defaultReceiptPollStart = 500 * time.Millisecond
	defaultReceiptPollLimit = 10 * time.Second

	// consecutive receipt lookup errors tolerated before WaitForReceipt fails
	maxReceiptErrors = 5
)

// Reader is the node side, *ethereum.ThrottledClient satisfies it
type Reader interface {
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// Wallet is the signing side, *rpc.Client satisfies it
type Wallet interface {
	CallContext(ctx context.Context, result interface{}, method string, args ...interface{}) error
}

type ClientCfg struct {
	ReceiptPollStart time.Duration
	ReceiptPollLimit time.Duration
}

type clientImpl struct {
	reader    Reader
	wallet    Wallet
	pollStart time.Duration
	pollLimit time.Duration
}

func NewClient(reader Reader, wallet Wallet, cfg ClientCfg) domain.ChainClient {
	if cfg.ReceiptPollStart <= 0 {
		cfg.ReceiptPollStart = defaultReceiptPollStart
	}
	if cfg.ReceiptPollLimit <= 0 {
		cfg.ReceiptPollLimit = defaultReceiptPollLimit
	}
	return &clientImpl{
		reader:    reader,
		wallet:    wallet,
		pollStart: cfg.ReceiptPollStart,
		pollLimit: cfg.ReceiptPollLimit,
	}
}

type sendTxArgs struct {
	From common.Address  `json:"from"`
	To   *common.Address `json:"to,omitempty"`
	Data hexutil.Bytes   `json:"data"`
}

func (c *clientImpl) SendTransaction(ctx bCtx.Ctx, to *common.Address, data []byte) (common.Hash, error) {
	var accounts []common.Address
	if err := c.wallet.CallContext(ctx, &accounts, "eth_accounts"); err != nil {
		ctx.WithField("err", err).Error("eth_accounts failed")
		return common.Hash{}, err
	}
	if len(accounts) == 0 {
		return common.Hash{}, ErrNoAccount
	}

	var hash common.Hash
	args := sendTxArgs{From: accounts[0], To: to, Data: data}
	if err := c.wallet.CallContext(ctx, &hash, "eth_sendTransaction", args); err != nil {
		ctx.WithFields(log.Fields{
			"err":  err,
			"from": accounts[0].Hex(),
		}).Error("eth_sendTransaction failed")
		return common.Hash{}, err
	}
	return hash, nil
}

func (c *clientImpl) WaitForReceipt(ctx bCtx.Ctx, hash common.Hash) (*types.Receipt, error) {
	var receipt *types.Receipt
	failures := 0
	b := backoff.NewExponential(c.pollStart, c.pollLimit)
	err := b.Poll(ctx, func() (bool, error) {
		r, err := c.reader.TransactionReceipt(ctx, hash)
		switch {
		case err == nil:
			receipt = r
			return true, nil
		case errors.Is(err, ethereum.NotFound):
			failures = 0
			return false, nil
		case ctx.Err() != nil:
			return false, err
		}

		// tolerated until maxReceiptErrors in a row
		failures++
		if failures >= maxReceiptErrors {
			return false, err
		}
		ctx.WithFields(log.Fields{
			"err":      err,
			"txHash":   hash.Hex(),
			"failures": failures,
		}).Warn("TransactionReceipt failed, retrying")
		return false, nil
	})
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":      err,
			"txHash":   hash.Hex(),
			"attempts": b.Attempts(),
		}).Error("wait for receipt failed")
		return nil, err
	}
	return receipt, nil
}

func (c *clientImpl) Call(ctx bCtx.Ctx, contract common.Address, _abi *abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &contract,
		Data: data,
	}
	res, err := c.reader.CallContract(ctx, msg, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
		}).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
		}).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) CodeAt(ctx bCtx.Ctx, addr common.Address) ([]byte, error) {
	return c.reader.CodeAt(ctx, addr, nil)
}

// ChainId is the network the wallet is currently on
func (c *clientImpl) ChainId(ctx bCtx.Ctx) (domain.ChainId, error) {
	var id hexutil.Big
	if err := c.wallet.CallContext(ctx, &id, "eth_chainId"); err != nil {
		ctx.WithField("err", err).Error("eth_chainId failed")
		return 0, err
	}
	return domain.ChainId(id.ToInt().Int64()), nil
}

type switchChainArgs struct {
	ChainId hexutil.Uint64 `json:"chainId"`
}

type addChainArgs struct {
	ChainId           hexutil.Uint64        `json:"chainId"`
	ChainName         string                `json:"chainName"`
	NativeCurrency    domain.NativeCurrency `json:"nativeCurrency"`
	RpcUrls           []string              `json:"rpcUrls"`
	BlockExplorerUrls []string              `json:"blockExplorerUrls,omitempty"`
}

func (c *clientImpl) SwitchNetwork(ctx bCtx.Ctx, params domain.NetworkParams) error {
	chainId := hexutil.Uint64(params.ChainId)
	err := c.wallet.CallContext(ctx, nil, "wallet_switchEthereumChain", switchChainArgs{ChainId: chainId})
	if err == nil {
		return nil
	}

	var rpcErr rpc.Error
	if !errors.As(err, &rpcErr) || rpcErr.ErrorCode() != unrecognizedChainCode {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": params.ChainId,
		}).Error("wallet_switchEthereumChain failed")
		return err
	}

	ctx.WithField("chainId", params.ChainId).Info("chain unknown to wallet, adding it")
	args := addChainArgs{
		ChainId:           chainId,
		ChainName:         params.ChainName,
		NativeCurrency:    params.NativeCurrency,
		RpcUrls:           params.RpcUrls,
		BlockExplorerUrls: params.BlockExplorerUrls,
	}
	if err := c.wallet.CallContext(ctx, nil, "wallet_addEthereumChain", args); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": params.ChainId,
		}).Error("wallet_addEthereumChain failed")
		return xerrors.Errorf("add chain %d: %w", params.ChainId, err)
	}
	return nil
}

type watchAssetOptions struct {
	Address  string `json:"address"`
	TokenId  string `json:"tokenId"`
	TokenUri string `json:"tokenURI,omitempty"`
	Image    string `json:"image,omitempty"`
}

type watchAssetArgs struct {
	Type    string            `json:"type"`
	Options watchAssetOptions `json:"options"`
}

func (c *clientImpl) WatchAsset(ctx bCtx.Ctx, params domain.WatchAssetParams) (bool, error) {
	var added bool
	args := watchAssetArgs{
		Type: "ERC721",
		Options: watchAssetOptions{
			Address:  string(params.Address),
			TokenId:  params.TokenId.String(),
			TokenUri: params.TokenUri,
			Image:    params.Image,
		},
	}
	if err := c.wallet.CallContext(ctx, &added, "wallet_watchAsset", args); err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"tokenId": params.TokenId,
		}).Error("wallet_watchAsset failed")
		return false, err
	}
	return added, nil
}

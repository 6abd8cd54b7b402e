package usecase

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
	"github.com/Beat1ngHeart/Custom-NFT/base/metrics"
	"github.com/Beat1ngHeart/Custom-NFT/base/validator"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
	"github.com/Beat1ngHeart/Custom-NFT/domain/contract"
	chaincontract "github.com/Beat1ngHeart/Custom-NFT/service/chain/contract"
)

// EnvKey is the variable the deployed address is handed over in
const EnvKey = "NFT_CONTRACT_ADDRESS"

type ContractUseCaseCfg struct {
	Chain domain.ChainClient
	Repo  contract.Repository
	// Address is the configured contract, it takes precedence over the deployed one
	Address domain.Address
}

type impl struct {
	chain   domain.ChainClient
	erc721  *chaincontract.Erc721
	repo    contract.Repository
	address domain.Address
	met     metrics.Service
}

func New(cfg *ContractUseCaseCfg) contract.UseCase {
	return &impl{
		chain:   cfg.Chain,
		erc721:  chaincontract.NewErc721(cfg.Chain),
		repo:    cfg.Repo,
		address: cfg.Address,
		met:     metrics.New("contract"),
	}
}

func (im *impl) ContractAddress(c ctx.Ctx) (domain.Address, error) {
	if !im.address.IsEmpty() {
		return im.address.ToLower(), nil
	}
	return im.repo.Get(c)
}

func (im *impl) Deploy(c ctx.Ctx, bytecode string) (*contract.Deployment, error) {
	if !validator.IsValidBytecode(bytecode) {
		return nil, domain.NewValidationError("bytecode must be non-empty 0x prefixed hex")
	}

	defer im.met.BumpTime("deploy.time").End()

	hash, err := im.chain.SendTransaction(c, nil, common.FromHex(bytecode))
	if err != nil {
		im.met.BumpSum("deploy.err", 1, "stage:submit")
		c.WithField("err", err).Error("chain.SendTransaction failed")
		return nil, domain.NewPipelineError(domain.ErrChainSubmission, "send deploy transaction", err)
	}
	c = ctx.WithValue(c, "txHash", hash.Hex())

	receipt, err := im.chain.WaitForReceipt(c, hash)
	if err != nil {
		im.met.BumpSum("deploy.err", 1, "stage:confirm")
		c.WithField("err", err).Error("chain.WaitForReceipt failed")
		return nil, domain.NewPipelineError(domain.ErrChainConfirmation, "wait for deploy receipt", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		im.met.BumpSum("deploy.err", 1, "stage:confirm")
		return nil, domain.NewPipelineError(domain.ErrChainConfirmation, "deploy transaction reverted", nil)
	}

	addr := receipt.ContractAddress
	code, err := im.chain.CodeAt(c, addr)
	if err != nil {
		c.WithField("err", err).Error("chain.CodeAt failed")
		return nil, domain.NewPipelineError(domain.ErrChainConfirmation, "read deployed code", err)
	}
	if len(code) == 0 {
		return nil, domain.NewPipelineError(domain.ErrChainConfirmation, fmt.Sprintf("no code at %s", addr.Hex()), nil)
	}

	if ok, err := im.erc721.Supports721Interface(c, addr); err != nil || !ok {
		c.WithFields(log.Fields{"err": err, "address": addr.Hex()}).Warn("deployed contract doesn't report erc721 support")
	}

	dep := &contract.Deployment{
		Address:    domain.ToDomainAddress(addr),
		TxHash:     domain.TxHash(hash.Hex()),
		EnvContent: fmt.Sprintf("%s=%s", EnvKey, addr.Hex()),
	}

	// the contract exists either way, EnvContent still lets it be configured
	if err := im.repo.Set(c, dep.Address); err != nil {
		c.WithField("err", err).Error("repo.Set failed")
	}

	c.WithField("address", dep.Address).Info("contract deployed")
	im.met.BumpSum("deploy", 1)
	return dep, nil
}

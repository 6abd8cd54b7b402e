package usecase

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/Beat1ngHeart/Custom-NFT/base/abi"
	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/goroutine"
	"github.com/Beat1ngHeart/Custom-NFT/base/ipfsuri"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
	"github.com/Beat1ngHeart/Custom-NFT/base/metrics"
	"github.com/Beat1ngHeart/Custom-NFT/base/validator"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
	"github.com/Beat1ngHeart/Custom-NFT/domain/contract"
	"github.com/Beat1ngHeart/Custom-NFT/domain/listing"
	"github.com/Beat1ngHeart/Custom-NFT/domain/mint"
	chaincontract "github.com/Beat1ngHeart/Custom-NFT/service/chain/contract"
)

var timeNow = time.Now

type MintUseCaseCfg struct {
	Listings listing.Store
	Repo     mint.Repository
	Chain    domain.ChainClient
	Contract contract.AddressProvider
	// Network is the chain the wallet must be on, a zero ChainId skips the check
	Network  domain.NetworkParams
	Notifier domain.Notifier
}

type impl struct {
	listings listing.Store
	repo     mint.Repository
	chain    domain.ChainClient
	erc721   *chaincontract.Erc721
	contract contract.AddressProvider
	network  domain.NetworkParams
	notifier domain.Notifier
	met      metrics.Service

	// mu guards records and inflight. A listing stays in inflight from the
	// moment its submission starts until its confirmation ends.
	mu       sync.Mutex
	records  map[listing.Id]*mint.Record
	inflight map[listing.Id]bool
}

func New(cfg *MintUseCaseCfg) mint.UseCase {
	return &impl{
		listings: cfg.Listings,
		repo:     cfg.Repo,
		chain:    cfg.Chain,
		erc721:   chaincontract.NewErc721(cfg.Chain),
		contract: cfg.Contract,
		network:  cfg.Network,
		notifier: cfg.Notifier,
		met:      metrics.New("mint"),
		records:  map[listing.Id]*mint.Record{},
		inflight: map[listing.Id]bool{},
	}
}

func (im *impl) Mint(c ctx.Ctx, id listing.Id) (*mint.Record, error) {
	if _, err := im.Submit(c, id); err != nil {
		return nil, err
	}
	// a submitted tx can't be taken back, so the caller leaving doesn't stop the wait
	return im.Confirm(ctx.Detach(c), id)
}

func (im *impl) MintAsync(c ctx.Ctx, id listing.Id) (*mint.Record, error) {
	rec, err := im.Submit(c, id)
	if err != nil {
		return nil, err
	}
	im.confirmInBackground(ctx.Detach(c), id)
	return rec, nil
}

func (im *impl) confirmInBackground(c ctx.Ctx, id listing.Id) {
	goroutine.RecoverableGo(func() {
		if _, err := im.Confirm(c, id); err != nil {
			c.WithField("err", err).Warn("mint confirmation failed")
		}
	}, goroutine.WithAfterRecovered(func(p interface{}, _ []byte) {
		im.release(c, id, mint.StatusFailed, fmt.Sprintf("confirmation panicked: %v", p))
	}))
}

// preconditions checks everything a mint needs before the chain is asked to do anything
func (im *impl) preconditions(c ctx.Ctx, id listing.Id) (*listing.Listing, domain.Address, error) {
	l, err := im.listings.Get(c, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, "", domain.NewPreconditionError(fmt.Sprintf("listing %s not found", id))
	} else if err != nil {
		return nil, "", err
	}
	if !l.Mintable() {
		return nil, "", domain.NewPreconditionError("listing has no pinned metadata")
	}

	addr, err := im.contract.ContractAddress(c)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, "", domain.NewPipelineError(domain.ErrPrecondition, "resolve contract address", err)
	}
	if !validator.IsValidAddress(string(addr)) {
		return nil, "", domain.NewPreconditionError("contract address is not configured")
	}

	if im.network.ChainId != 0 {
		active, err := im.chain.ChainId(c)
		if err != nil {
			return nil, "", domain.NewPipelineError(domain.ErrPrecondition, "read active network", err)
		}
		if active != im.network.ChainId {
			return nil, "", domain.NewPreconditionError(fmt.Sprintf("wallet is on chain %d, expected %d", active, im.network.ChainId))
		}
	}
	return l, addr.ToLower(), nil
}

func (im *impl) Submit(c ctx.Ctx, id listing.Id) (*mint.Record, error) {
	c = ctx.WithValue(c, "listingId", id)

	l, addr, err := im.preconditions(c, id)
	if err != nil {
		im.met.BumpSum("precondition.err", 1)
		return nil, err
	}

	im.mu.Lock()
	if im.inflight[id] {
		im.mu.Unlock()
		return nil, domain.NewPipelineError(domain.ErrAlreadyInProgress, fmt.Sprintf("listing %s is being minted", id), nil)
	}
	im.inflight[id] = true
	im.mu.Unlock()

	rec := &mint.Record{
		ListingId: id,
		Contract:  addr,
		TokenUri:  ipfsuri.Normalize(string(l.Metadata.Cid)),
	}

	hash, err := im.erc721.Mint(c, addr.ToCommon(), rec.TokenUri)
	if err != nil {
		im.met.BumpSum("submit.err", 1)
		pErr := domain.NewPipelineError(domain.ErrChainSubmission, "send mint transaction", err)
		c.WithField("err", err).Error("erc721.Mint failed")
		rec.Status = mint.StatusFailed
		rec.Error = pErr.Error()
		im.finish(c, rec)
		return nil, pErr
	}

	rec.TxHash = domain.TxHash(hash.Hex())
	rec.Status = mint.StatusSubmitted
	c.WithFields(log.Fields{"txHash": rec.TxHash, "tokenUri": rec.TokenUri}).Info("mint submitted")
	im.met.BumpSum("submit", 1)
	return im.store(c, rec), nil
}

func (im *impl) Confirm(c ctx.Ctx, id listing.Id) (*mint.Record, error) {
	c = ctx.WithValue(c, "listingId", id)

	rec, err := im.startConfirming(c, id)
	if err != nil {
		return nil, err
	}
	c = ctx.WithValue(c, "txHash", rec.TxHash)

	receipt, err := im.chain.WaitForReceipt(c, common.HexToHash(string(rec.TxHash)))
	if err != nil {
		pErr := domain.NewPipelineError(domain.ErrChainConfirmation, "wait for receipt", err)
		if c.Err() != nil {
			// the tx may still be mined, keep tracking it
			rec.Status = mint.StatusSubmitted
			im.store(c, rec)
			return nil, pErr
		}
		im.met.BumpSum("confirm.err", 1)
		rec.Status = mint.StatusFailed
		rec.Error = pErr.Error()
		im.finish(c, rec)
		return nil, pErr
	}

	if receipt.Status == types.ReceiptStatusFailed {
		im.met.BumpSum("confirm.reverted", 1)
		pErr := domain.NewPipelineError(domain.ErrChainConfirmation, "transaction reverted", nil)
		rec.Status = mint.StatusFailed
		rec.Error = pErr.Error()
		im.finish(c, rec)
		return nil, pErr
	}

	rec.Status = mint.StatusConfirmed
	if tokenId, ok := abi.DecodeTransferTokenId(receipt.Logs); ok {
		t := domain.TokenId(tokenId)
		rec.TokenId = &t
	} else {
		im.met.BumpSum("confirm.degraded", 1)
		pErr := domain.NewPipelineError(domain.ErrParse, "no transfer event in receipt", nil)
		c.WithFields(log.Fields{"err": pErr, "logs": len(receipt.Logs)}).Warn("token id unknown")
	}
	res := im.finish(c, rec)
	im.announce(c, res)
	return res, nil
}

// startConfirming moves a submitted record to confirming
func (im *impl) startConfirming(c ctx.Ctx, id listing.Id) (*mint.Record, error) {
	im.mu.Lock()
	rec, ok := im.records[id]
	im.mu.Unlock()
	if !ok {
		if im.repo == nil {
			return nil, domain.ErrNotFound
		}
		persisted, err := im.repo.FindOne(c, id)
		if err != nil {
			return nil, err
		}
		rec = persisted
	}

	im.mu.Lock()
	defer im.mu.Unlock()
	if cur, ok := im.records[id]; ok {
		rec = cur
	}
	switch rec.Status {
	case mint.StatusSubmitted:
	case mint.StatusConfirming:
		return nil, domain.NewPipelineError(domain.ErrAlreadyInProgress, fmt.Sprintf("listing %s is being confirmed", id), nil)
	default:
		return nil, domain.NewPreconditionError(fmt.Sprintf("listing %s has no submitted mint", id))
	}

	next := *rec
	next.Status = mint.StatusConfirming
	next.UpdatedAt = timeNow().UTC()
	im.records[id] = &next
	im.inflight[id] = true
	im.persist(c, &next)

	res := next
	return &res, nil
}

// store records rec as the latest state of its listing
func (im *impl) store(c ctx.Ctx, rec *mint.Record) *mint.Record {
	rec.UpdatedAt = timeNow().UTC()
	saved := *rec

	im.mu.Lock()
	im.records[rec.ListingId] = &saved
	im.mu.Unlock()

	im.persist(c, &saved)
	res := saved
	return &res
}

// finish stores the final state of an attempt and frees the listing for the next one
func (im *impl) finish(c ctx.Ctx, rec *mint.Record) *mint.Record {
	res := im.store(c, rec)
	im.mu.Lock()
	delete(im.inflight, rec.ListingId)
	im.mu.Unlock()
	return res
}

func (im *impl) release(c ctx.Ctx, id listing.Id, status mint.Status, msg string) {
	im.mu.Lock()
	rec, ok := im.records[id]
	im.mu.Unlock()
	if !ok {
		im.mu.Lock()
		delete(im.inflight, id)
		im.mu.Unlock()
		return
	}
	next := *rec
	next.Status = status
	next.Error = msg
	im.finish(c, &next)
}

// persist never fails the pipeline, records only help to resume after a restart
func (im *impl) persist(c ctx.Ctx, rec *mint.Record) {
	if im.repo == nil {
		return
	}
	if err := im.repo.Upsert(c, rec); err != nil {
		im.met.BumpSum("persist.err", 1)
		c.WithFields(log.Fields{"err": err, "status": rec.Status}).Warn("repo.Upsert failed")
	}
}

func (im *impl) announce(c ctx.Ctx, rec *mint.Record) {
	if im.notifier == nil {
		return
	}
	title := "New token minted"
	if rec.TokenId != nil {
		title = "Token #" + rec.TokenId.String() + " minted"
	}
	a := &domain.Announcement{
		Title:       title,
		Description: "Listing " + string(rec.ListingId) + " is now on chain",
		Fields: []domain.AnnouncementField{
			{Name: "Contract", Value: string(rec.Contract)},
			{Name: "Tx", Value: string(rec.TxHash)},
		},
	}
	if l, err := im.listings.Get(c, rec.ListingId); err == nil && l.Asset.IsPinned() {
		a.ImageUrl = l.Asset.Url()
	}
	im.notifier.Announce(c, a)
}

func (im *impl) Status(c ctx.Ctx, id listing.Id) (*mint.Record, error) {
	im.mu.Lock()
	rec, ok := im.records[id]
	im.mu.Unlock()
	if ok {
		res := *rec
		return &res, nil
	}
	if im.repo == nil {
		return nil, domain.ErrNotFound
	}
	return im.repo.FindOne(c, id)
}

func (im *impl) Resume(c ctx.Ctx) error {
	if im.repo == nil {
		return nil
	}
	recs, err := im.repo.FindInProgress(c)
	if err != nil {
		c.WithField("err", err).Error("repo.FindInProgress failed")
		return err
	}

	for _, rec := range recs {
		if len(rec.TxHash) == 0 {
			continue
		}
		im.mu.Lock()
		if im.inflight[rec.ListingId] {
			im.mu.Unlock()
			continue
		}
		next := *rec
		next.Status = mint.StatusSubmitted
		im.records[rec.ListingId] = &next
		im.inflight[rec.ListingId] = true
		im.mu.Unlock()

		c.WithFields(log.Fields{"listingId": rec.ListingId, "txHash": rec.TxHash}).Info("resume mint confirmation")
		im.confirmInBackground(ctx.Detach(c), rec.ListingId)
	}
	return nil
}

func (im *impl) AddToWallet(c ctx.Ctx, id listing.Id) error {
	rec, err := im.Status(c, id)
	if err != nil {
		return err
	}
	if rec.Status != mint.StatusConfirmed {
		return domain.NewPreconditionError(fmt.Sprintf("mint of listing %s is %s", id, rec.Status))
	}
	if rec.TokenId == nil {
		return domain.NewPreconditionError("token id of the mint is unknown")
	}

	if im.network.ChainId != 0 {
		active, err := im.chain.ChainId(c)
		if err != nil {
			c.WithField("err", err).Error("chain.ChainId failed")
			return err
		}
		if active != im.network.ChainId {
			c.WithFields(log.Fields{"active": active, "expected": im.network.ChainId}).Info("switch wallet network")
			if err := im.chain.SwitchNetwork(c, im.network); err != nil {
				c.WithField("err", err).Error("chain.SwitchNetwork failed")
				return err
			}
		}
	}

	params := domain.WatchAssetParams{
		Address:  rec.Contract,
		TokenId:  *rec.TokenId,
		TokenUri: rec.TokenUri,
	}
	if l, err := im.listings.Get(c, id); err == nil && l.Asset.IsPinned() {
		params.Image = l.Asset.Url()
	}
	added, err := im.chain.WatchAsset(c, params)
	if err != nil {
		c.WithField("err", err).Error("chain.WatchAsset failed")
		return err
	}
	if !added {
		c.WithField("tokenId", params.TokenId).Info("wallet declined the token")
	}
	return nil
}

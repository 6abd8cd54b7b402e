package usecase

import (
	"context"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	baseabi "github.com/Beat1ngHeart/Custom-NFT/base/abi"
	bCtx "github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
	"github.com/Beat1ngHeart/Custom-NFT/domain/listing"
	"github.com/Beat1ngHeart/Custom-NFT/domain/mint"
	"github.com/Beat1ngHeart/Custom-NFT/domain/mocks"
	listingrepo "github.com/Beat1ngHeart/Custom-NFT/stores/listing/repository"
	listingusecase "github.com/Beat1ngHeart/Custom-NFT/stores/listing/usecase"
	mintrepo "github.com/Beat1ngHeart/Custom-NFT/stores/mint/repository"
)

const expectedChainId = domain.ChainId(623352640)

var (
	contractAddr = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
	txHash       = common.HexToHash("0xabcdef")
	minter       = common.HexToAddress("0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872")
	pngAsset     = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)
)

// stubPinning answers every upload with the same cid and keeps the last json document
type stubPinning struct {
	cid domain.Cid

	mu  sync.Mutex
	doc interface{}
}

func (p *stubPinning) UploadBytes(c bCtx.Ctx, payload []byte, ext string) (*domain.ContentRef, error) {
	return &domain.ContentRef{Cid: p.cid, Url: "https://gateway.pinata.cloud/ipfs/" + string(p.cid)}, nil
}

func (p *stubPinning) UploadJson(c bCtx.Ctx, name string, doc interface{}) (*domain.ContentRef, error) {
	p.mu.Lock()
	p.doc = doc
	p.mu.Unlock()
	return &domain.ContentRef{Cid: p.cid, Url: "https://gateway.pinata.cloud/ipfs/" + string(p.cid)}, nil
}

func transferReceipt(tokenId int64) *types.Receipt {
	return &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{
			{
				Address: contractAddr,
				Topics: []common.Hash{
					baseabi.TransferEventTopic,
					common.Hash{},
					minter.Hash(),
					common.BigToHash(big.NewInt(tokenId)),
				},
			},
		},
	}
}

type mintSuite struct {
	suite.Suite

	ctx      bCtx.Ctx
	cancel   func()
	pinning  *stubPinning
	store    listing.Store
	listings listing.UseCase
	repo     mint.Repository
	chain    *mocks.ChainClient
	provider *mocks.ContractAddressProvider
	notifier *mocks.Notifier
	im       mint.UseCase
	mintData []byte
}

func TestMintSuite(t *testing.T) {
	suite.Run(t, new(mintSuite))
}

func (s *mintSuite) SetupTest() {
	s.ctx, s.cancel = bCtx.WithCancel(bCtx.Background())
	store, err := listingusecase.NewStore(s.ctx, listingrepo.NewMemoryRepo())
	s.Require().NoError(err)
	s.store = store
	s.pinning = &stubPinning{cid: "abc123"}
	s.listings = listingusecase.NewLifecycle(&listingusecase.LifecycleCfg{Store: store, Pinning: s.pinning})
	s.repo = mintrepo.NewMemoryRepo()
	s.chain = mocks.NewChainClient(s.T())
	s.provider = mocks.NewContractAddressProvider(s.T())
	s.notifier = mocks.NewNotifier(s.T())
	s.im = New(&MintUseCaseCfg{
		Listings: store,
		Repo:     s.repo,
		Chain:    s.chain,
		Contract: s.provider,
		Network:  domain.NetworkParams{ChainId: expectedChainId, ChainName: "SKALE"},
		Notifier: s.notifier,
	})

	s.mintData, err = baseabi.ERC721TokenABI.Pack("mint", "abc123")
	s.Require().NoError(err)
}

func (s *mintSuite) TearDownTest() {
	s.cancel()
}

func (s *mintSuite) createListing(pin bool) *listing.Listing {
	l, err := s.listings.CreateListing(s.ctx, listing.CreateParams{
		Asset: pngAsset,
		Price: decimal.RequireFromString("0.001"),
		Pin:   pin,
	})
	s.Require().NoError(err)
	return l
}

// expectReadyToSubmit lets the next submissions pass their preconditions
func (s *mintSuite) expectReadyToSubmit(times int) {
	s.provider.On("ContractAddress", mock.Anything).Return(domain.Address(contractAddr.Hex()), nil)
	s.chain.On("ChainId", mock.Anything).Return(expectedChainId, nil).Times(times)
}

func (s *mintSuite) TestEndToEnd() {
	l := s.createListing(true)
	s.Equal(&domain.MetadataDocument{
		Name:        "Untitled",
		Description: "This is an NFT listing",
		Image:       "ipfs://abc123",
		Attributes:  []domain.Attribute{},
	}, s.pinning.doc)

	s.expectReadyToSubmit(1)
	s.chain.On("SendTransaction", mock.Anything, &contractAddr, s.mintData).Return(txHash, nil).Once()
	s.chain.On("WaitForReceipt", mock.Anything, txHash).Return(transferReceipt(7), nil).Once()
	s.notifier.On("Announce", mock.Anything, mock.MatchedBy(func(a *domain.Announcement) bool {
		return a.Title == "Token #7 minted" && a.ImageUrl == "https://gateway.pinata.cloud/ipfs/abc123"
	})).Once()

	rec, err := s.im.Mint(s.ctx, l.Id)
	s.Require().NoError(err)
	s.Equal(mint.StatusConfirmed, rec.Status)
	s.Equal("abc123", rec.TokenUri)
	s.Equal(domain.TxHash(txHash.Hex()), rec.TxHash)
	s.Require().NotNil(rec.TokenId)
	s.Equal(domain.TokenId("7"), *rec.TokenId)
	s.False(rec.Degraded())

	persisted, err := s.repo.FindOne(s.ctx, l.Id)
	s.Require().NoError(err)
	s.Equal(mint.StatusConfirmed, persisted.Status)

	status, err := s.im.Status(s.ctx, l.Id)
	s.Require().NoError(err)
	s.Equal(rec, status)
}

func (s *mintSuite) TestMintWithoutMetadata() {
	l := s.createListing(false)

	_, err := s.im.Mint(s.ctx, l.Id)
	s.ErrorIs(err, domain.ErrPrecondition)
	s.Len(s.chain.Calls, 0)
	s.Len(s.provider.Calls, 0)

	_, err = s.im.Status(s.ctx, l.Id)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *mintSuite) TestMintUnknownListing() {
	_, err := s.im.Submit(s.ctx, "nope")
	s.ErrorIs(err, domain.ErrPrecondition)
	s.Len(s.chain.Calls, 0)
}

func (s *mintSuite) TestMintWithoutContractAddress() {
	l := s.createListing(true)

	for _, addr := range []domain.Address{"", "0x1234", "5FbDB2315678afecb367f032d93F642f64180aa3"} {
		s.provider.On("ContractAddress", mock.Anything).Return(addr, nil).Once()
		_, err := s.im.Submit(s.ctx, l.Id)
		s.ErrorIs(err, domain.ErrPrecondition, addr)
	}
	s.provider.On("ContractAddress", mock.Anything).Return(domain.Address(""), domain.ErrNotFound).Once()
	_, err := s.im.Submit(s.ctx, l.Id)
	s.ErrorIs(err, domain.ErrPrecondition)

	s.Len(s.chain.Calls, 0)
}

func (s *mintSuite) TestMintOnWrongNetwork() {
	l := s.createListing(true)
	s.provider.On("ContractAddress", mock.Anything).Return(domain.Address(contractAddr.Hex()), nil)
	s.chain.On("ChainId", mock.Anything).Return(domain.ChainId(1), nil).Once()

	_, err := s.im.Submit(s.ctx, l.Id)
	s.ErrorIs(err, domain.ErrPrecondition)
	s.Contains(err.Error(), "expected 623352640")
	s.chain.AssertNotCalled(s.T(), "SendTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func (s *mintSuite) TestSubmissionFailure() {
	l := s.createListing(true)
	s.expectReadyToSubmit(1)
	s.chain.On("SendTransaction", mock.Anything, &contractAddr, s.mintData).Return(common.Hash{}, errors.New("User denied transaction signature")).Once()

	_, err := s.im.Mint(s.ctx, l.Id)
	s.ErrorIs(err, domain.ErrChainSubmission)
	s.Contains(err.Error(), "User denied transaction signature")

	rec, err := s.im.Status(s.ctx, l.Id)
	s.Require().NoError(err)
	s.Equal(mint.StatusFailed, rec.Status)
	s.Contains(rec.Error, "User denied transaction signature")
	s.Empty(rec.TxHash)
}

func (s *mintSuite) TestConfirmationFailures() {
	l := s.createListing(true)
	s.expectReadyToSubmit(2)
	s.chain.On("SendTransaction", mock.Anything, &contractAddr, s.mintData).Return(txHash, nil).Twice()
	s.chain.On("WaitForReceipt", mock.Anything, txHash).Return(nil, errors.New("rpc unavailable")).Once()
	s.chain.On("WaitForReceipt", mock.Anything, txHash).Return(&types.Receipt{Status: types.ReceiptStatusFailed}, nil).Once()

	_, err := s.im.Mint(s.ctx, l.Id)
	s.ErrorIs(err, domain.ErrChainConfirmation)
	s.Contains(err.Error(), "rpc unavailable")
	rec, err := s.im.Status(s.ctx, l.Id)
	s.Require().NoError(err)
	s.Equal(mint.StatusFailed, rec.Status)

	// a failed attempt can be retried
	_, err = s.im.Mint(s.ctx, l.Id)
	s.ErrorIs(err, domain.ErrChainConfirmation)
	s.Contains(err.Error(), "reverted")
	rec, err = s.im.Status(s.ctx, l.Id)
	s.Require().NoError(err)
	s.Equal(mint.StatusFailed, rec.Status)
}

func (s *mintSuite) TestDegradedConfirmation() {
	l := s.createListing(true)
	s.expectReadyToSubmit(1)
	s.chain.On("SendTransaction", mock.Anything, &contractAddr, s.mintData).Return(txHash, nil).Once()
	s.chain.On("WaitForReceipt", mock.Anything, txHash).Return(&types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs:   []*types.Log{{Topics: []common.Hash{baseabi.TransferEventTopic}}},
	}, nil).Once()
	s.notifier.On("Announce", mock.Anything, mock.Anything).Once()

	rec, err := s.im.Mint(s.ctx, l.Id)
	s.Require().NoError(err)
	s.Equal(mint.StatusConfirmed, rec.Status)
	s.Nil(rec.TokenId)
	s.True(rec.Degraded())
}

func (s *mintSuite) TestAlreadyInProgress() {
	l := s.createListing(true)
	s.expectReadyToSubmit(4)
	s.chain.On("SendTransaction", mock.Anything, &contractAddr, s.mintData).Return(txHash, nil).Twice()

	rec, err := s.im.Submit(s.ctx, l.Id)
	s.Require().NoError(err)
	s.Equal(mint.StatusSubmitted, rec.Status)

	_, err = s.im.Submit(s.ctx, l.Id)
	s.ErrorIs(err, domain.ErrAlreadyInProgress)
	_, err = s.im.Mint(s.ctx, l.Id)
	s.ErrorIs(err, domain.ErrAlreadyInProgress)

	s.chain.On("WaitForReceipt", mock.Anything, txHash).Return(transferReceipt(1), nil).Once()
	s.notifier.On("Announce", mock.Anything, mock.Anything).Once()
	rec, err = s.im.Confirm(s.ctx, l.Id)
	s.Require().NoError(err)
	s.Equal(mint.StatusConfirmed, rec.Status)

	// confirmed, so a new attempt may start
	rec, err = s.im.Submit(s.ctx, l.Id)
	s.Require().NoError(err)
	s.Equal(mint.StatusSubmitted, rec.Status)
	s.Nil(rec.TokenId)
}

func (s *mintSuite) TestMintAsyncNeverRunsTwoAttempts() {
	l := s.createListing(true)
	s.expectReadyToSubmit(9)
	s.chain.On("SendTransaction", mock.Anything, &contractAddr, s.mintData).Return(txHash, nil).Once()

	mined := make(chan time.Time)
	s.chain.On("WaitForReceipt", mock.Anything, txHash).
		WaitUntil(mined).
		Return(transferReceipt(3), nil).Once()
	announced := make(chan struct{})
	s.notifier.On("Announce", mock.Anything, mock.Anything).Run(func(mock.Arguments) { close(announced) }).Once()

	rec, err := s.im.MintAsync(s.ctx, l.Id)
	s.Require().NoError(err)
	s.Equal(mint.StatusSubmitted, rec.Status)

	wg := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.im.MintAsync(s.ctx, l.Id)
			s.ErrorIs(err, domain.ErrAlreadyInProgress)
		}()
	}
	wg.Wait()

	close(mined)
	s.Eventually(func() bool {
		rec, err := s.im.Status(s.ctx, l.Id)
		return err == nil && rec.Status == mint.StatusConfirmed
	}, time.Second, 10*time.Millisecond)
	waitClosed(s.T(), announced)
}

func (s *mintSuite) TestConfirmWithoutSubmission() {
	_, err := s.im.Confirm(s.ctx, "nope")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *mintSuite) TestConfirmWithoutRepository() {
	im := New(&MintUseCaseCfg{
		Listings: s.store,
		Chain:    s.chain,
		Contract: s.provider,
		Network:  domain.NetworkParams{ChainId: expectedChainId, ChainName: "SKALE"},
	})
	s.NotPanics(func() {
		_, err := im.Confirm(s.ctx, "nope")
		s.ErrorIs(err, domain.ErrNotFound)
	})
}

func (s *mintSuite) TestConfirmAbandonedKeepsTracking() {
	l := s.createListing(true)
	s.expectReadyToSubmit(2)
	s.chain.On("SendTransaction", mock.Anything, &contractAddr, s.mintData).Return(txHash, nil).Once()
	_, err := s.im.Submit(s.ctx, l.Id)
	s.Require().NoError(err)

	c, cancel := bCtx.WithCancel(s.ctx)
	cancel()
	s.chain.On("WaitForReceipt", mock.Anything, txHash).Return(nil, context.Canceled).Once()
	_, err = s.im.Confirm(c, l.Id)
	s.ErrorIs(err, domain.ErrChainConfirmation)

	rec, err := s.im.Status(s.ctx, l.Id)
	s.Require().NoError(err)
	s.Equal(mint.StatusSubmitted, rec.Status)
	_, err = s.im.Submit(s.ctx, l.Id)
	s.ErrorIs(err, domain.ErrAlreadyInProgress)
}

func (s *mintSuite) TestResume() {
	s.Require().NoError(s.repo.Upsert(s.ctx, &mint.Record{
		ListingId: "sold-before-restart",
		Contract:  domain.ToDomainAddress(contractAddr),
		TokenUri:  "abc123",
		TxHash:    domain.TxHash(txHash.Hex()),
		Status:    mint.StatusConfirming,
	}))
	s.chain.On("WaitForReceipt", mock.Anything, txHash).Return(transferReceipt(9), nil).Once()
	announced := make(chan struct{})
	s.notifier.On("Announce", mock.Anything, mock.Anything).Run(func(mock.Arguments) { close(announced) }).Once()

	s.Require().NoError(s.im.Resume(s.ctx))
	s.Eventually(func() bool {
		rec, err := s.repo.FindOne(s.ctx, "sold-before-restart")
		return err == nil && rec.Status == mint.StatusConfirmed && rec.TokenId != nil && *rec.TokenId == "9"
	}, time.Second, 10*time.Millisecond)
	waitClosed(s.T(), announced)
}

func (s *mintSuite) confirmedMint() *listing.Listing {
	l := s.createListing(true)
	s.expectReadyToSubmit(1)
	s.chain.On("SendTransaction", mock.Anything, &contractAddr, s.mintData).Return(txHash, nil).Once()
	s.chain.On("WaitForReceipt", mock.Anything, txHash).Return(transferReceipt(7), nil).Once()
	s.notifier.On("Announce", mock.Anything, mock.Anything).Once()
	_, err := s.im.Mint(s.ctx, l.Id)
	s.Require().NoError(err)
	return l
}

func (s *mintSuite) TestAddToWalletSwitchesNetwork() {
	l := s.confirmedMint()

	// the wallet moved to another network after minting
	s.chain.On("ChainId", mock.Anything).Return(domain.ChainId(1), nil).Once()
	s.chain.On("SwitchNetwork", mock.Anything, mock.MatchedBy(func(p domain.NetworkParams) bool {
		return p.ChainId == expectedChainId
	})).Return(nil).Once()
	s.chain.On("WatchAsset", mock.Anything, domain.WatchAssetParams{
		Address:  domain.ToDomainAddress(contractAddr),
		TokenId:  "7",
		TokenUri: "abc123",
		Image:    "https://gateway.pinata.cloud/ipfs/abc123",
	}).Return(true, nil).Once()

	s.Require().NoError(s.im.AddToWallet(s.ctx, l.Id))
}

func (s *mintSuite) TestAddToWalletRequiresConfirmedToken() {
	s.ErrorIs(s.im.AddToWallet(s.ctx, "nope"), domain.ErrNotFound)

	l := s.createListing(true)
	s.expectReadyToSubmit(1)
	s.chain.On("SendTransaction", mock.Anything, &contractAddr, s.mintData).Return(txHash, nil).Once()
	_, err := s.im.Submit(s.ctx, l.Id)
	s.Require().NoError(err)
	s.ErrorIs(s.im.AddToWallet(s.ctx, l.Id), domain.ErrPrecondition)
}

func waitClosed(t *testing.T, ch chan struct{}) {
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatal("timeout")
	}
}

package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
	"github.com/Beat1ngHeart/Custom-NFT/domain/mocks"
	"github.com/Beat1ngHeart/Custom-NFT/service/cache"
	"github.com/Beat1ngHeart/Custom-NFT/service/cache/provider/primitive"
)

const gateway = "https://gateway.pinata.cloud/ipfs/"

var (
	mockCtx      = ctx.Background()
	contractAddr = domain.Address("0x5fbdb2315678afecb367f032d93f642f64180aa3")
	wallet       = domain.Address("0x020ca66c30bec2c4fe3861a94e4db4a498a35872")
	stranger     = common.HexToAddress("0x8ba1f109551bD432803012645Ac136ddd64DBA72")
	pngData      = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
)

type fakeEns map[string]domain.Address

func (f fakeEns) Resolve(_ ctx.Ctx, name string) (domain.Address, error) {
	if addr, ok := f[name]; ok {
		return addr, nil
	}
	return domain.EmptyAddress, nil
}

func tokenIs(id int64) interface{} {
	return mock.MatchedBy(func(i *big.Int) bool { return i.Int64() == id })
}

type ownershipSuite struct {
	suite.Suite

	chain       *mocks.ChainClient
	provider    *mocks.ContractAddressProvider
	webResource *mocks.WebResourceUseCase
	cfg         *OwnershipUseCaseCfg
}

func (s *ownershipSuite) SetupTest() {
	s.chain = mocks.NewChainClient(s.T())
	s.provider = mocks.NewContractAddressProvider(s.T())
	s.webResource = mocks.NewWebResourceUseCase(s.T())
	s.cfg = &OwnershipUseCaseCfg{
		Chain:       s.chain,
		Contract:    s.provider,
		WebResource: s.webResource,
		Ens:         fakeEns{"machibigbrother.eth": wallet},
		Gateway:     gateway,
	}
}

func TestOwnershipSuite(t *testing.T) {
	suite.Run(t, new(ownershipSuite))
}

func (s *ownershipSuite) onCall(method string, args ...interface{}) *mock.Call {
	return s.chain.On("Call", append([]interface{}{mock.Anything, contractAddr.ToCommon(), mock.Anything, method}, args...)...)
}

func (s *ownershipSuite) TestScanSkipsBrokenTokens() {
	s.provider.On("ContractAddress", mock.Anything).Return(contractAddr, nil).Once()
	s.onCall("totalSupply").Return([]interface{}{big.NewInt(4)}, nil).Once()
	s.onCall("ownerOf", tokenIs(0)).Return([]interface{}{wallet.ToCommon()}, nil).Once()
	s.onCall("ownerOf", tokenIs(1)).Return([]interface{}{wallet.ToCommon()}, nil).Once()
	s.onCall("ownerOf", tokenIs(2)).Return([]interface{}{wallet.ToCommon()}, nil).Once()
	s.onCall("ownerOf", tokenIs(3)).Return([]interface{}{stranger}, nil).Once()
	s.onCall("tokenURI", tokenIs(0)).Return([]interface{}{"ipfs://meta0"}, nil).Once()
	s.onCall("tokenURI", tokenIs(1)).Return([]interface{}{"meta1"}, nil).Once()
	s.onCall("tokenURI", tokenIs(2)).Return([]interface{}{"https://example.com/2.json"}, nil).Once()
	s.webResource.On("GetJson", mock.Anything, gateway+"meta0").Return([]byte(`{"name":"Zero","image":"ipfs://img0"}`), nil).Once()
	s.webResource.On("GetJson", mock.Anything, gateway+"meta1").Return(nil, errors.New("gateway timeout")).Once()
	s.webResource.On("GetJson", mock.Anything, "https://example.com/2.json").Return([]byte(`{"name":"Two","image":"https://example.com/2.png","attributes":[]}`), nil).Once()

	res, err := New(s.cfg).ScanOwned(mockCtx, wallet)
	s.Require().NoError(err)
	s.Require().Len(res, 2)
	s.Equal(domain.TokenId("0"), res[0].TokenId)
	s.Equal("ipfs://meta0", res[0].TokenUri)
	s.Equal("Zero", res[0].Metadata.Name)
	s.Equal(gateway+"img0", res[0].ImageUrl)
	s.Equal(domain.TokenId("2"), res[1].TokenId)
	s.Equal("https://example.com/2.png", res[1].ImageUrl)
}

func (s *ownershipSuite) TestScanComparesOwnerIgnoringCase() {
	s.provider.On("ContractAddress", mock.Anything).Return(contractAddr, nil).Once()
	s.onCall("totalSupply").Return([]interface{}{big.NewInt(1)}, nil).Once()
	s.onCall("ownerOf", tokenIs(0)).Return([]interface{}{wallet.ToCommon()}, nil).Once()
	s.onCall("tokenURI", tokenIs(0)).Return([]interface{}{"meta0"}, nil).Once()
	s.webResource.On("GetJson", mock.Anything, gateway+"meta0").Return([]byte(`{"name":"Zero"}`), nil).Once()

	res, err := New(s.cfg).ScanOwned(mockCtx, "0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872")
	s.Require().NoError(err)
	s.Require().Len(res, 1)
	s.Empty(res[0].ImageUrl)
	s.Equal("", res[0].Metadata.Image)
}

func (s *ownershipSuite) TestScanEmptyWallet() {
	s.provider.On("ContractAddress", mock.Anything).Return(contractAddr, nil).Once()
	s.onCall("totalSupply").Return([]interface{}{big.NewInt(0)}, nil).Once()

	res, err := New(s.cfg).ScanOwned(mockCtx, wallet)
	s.Require().NoError(err)
	s.NotNil(res)
	s.Empty(res)
}

func (s *ownershipSuite) TestScanPreconditions() {
	_, err := New(s.cfg).ScanOwned(mockCtx, "not-a-wallet")
	s.ErrorIs(err, domain.ErrValidation)

	s.provider.On("ContractAddress", mock.Anything).Return(domain.Address(""), domain.ErrNotFound).Once()
	_, err = New(s.cfg).ScanOwned(mockCtx, wallet)
	s.ErrorIs(err, domain.ErrPrecondition)

	s.provider.On("ContractAddress", mock.Anything).Return(domain.Address("0x1234"), nil).Once()
	_, err = New(s.cfg).ScanOwned(mockCtx, wallet)
	s.ErrorIs(err, domain.ErrPrecondition)
}

func (s *ownershipSuite) TestScanSupplyFailure() {
	rpcErr := errors.New("connection refused")
	s.provider.On("ContractAddress", mock.Anything).Return(contractAddr, nil).Once()
	s.onCall("totalSupply").Return(nil, rpcErr).Once()

	_, err := New(s.cfg).ScanOwned(mockCtx, wallet)
	s.ErrorIs(err, rpcErr)
}

func (s *ownershipSuite) TestScanCachesMetadata() {
	s.cfg.Cache = cache.New(cache.ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   "metadata",
		Cache: primitive.NewPrimitive("ownership-test", 1),
	})
	s.provider.On("ContractAddress", mock.Anything).Return(contractAddr, nil).Twice()
	s.onCall("totalSupply").Return([]interface{}{big.NewInt(1)}, nil).Twice()
	s.onCall("ownerOf", tokenIs(0)).Return([]interface{}{wallet.ToCommon()}, nil).Twice()
	s.onCall("tokenURI", tokenIs(0)).Return([]interface{}{"ipfs://meta0"}, nil).Twice()
	s.webResource.On("GetJson", mock.Anything, gateway+"meta0").Return([]byte(`{"name":"Zero","image":"img0"}`), nil).Once()

	im := New(s.cfg)
	for i := 0; i < 2; i++ {
		res, err := im.ScanOwned(mockCtx, wallet)
		s.Require().NoError(err)
		s.Require().Len(res, 1)
		s.Equal("Zero", res[0].Metadata.Name)
		s.Equal(gateway+"img0", res[0].ImageUrl)
	}
}

func (s *ownershipSuite) TestResolveWallet() {
	im := New(s.cfg)

	res, err := im.ResolveWallet(mockCtx, " 0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872 ")
	s.Require().NoError(err)
	s.Equal(wallet, res)

	res, err = im.ResolveWallet(mockCtx, "machibigbrother.eth")
	s.Require().NoError(err)
	s.Equal(wallet, res)

	_, err = im.ResolveWallet(mockCtx, "nobody.eth")
	s.ErrorIs(err, domain.ErrValidation)

	_, err = im.ResolveWallet(mockCtx, "whatever")
	s.ErrorIs(err, domain.ErrValidation)

	s.cfg.Ens = nil
	_, err = New(s.cfg).ResolveWallet(mockCtx, "machibigbrother.eth")
	s.ErrorIs(err, domain.ErrValidation)
}

func (s *ownershipSuite) expectOwnedToken(id int64, doc string) {
	s.provider.On("ContractAddress", mock.Anything).Return(contractAddr, nil).Once()
	s.onCall("ownerOf", tokenIs(id)).Return([]interface{}{wallet.ToCommon()}, nil).Once()
	s.onCall("tokenURI", tokenIs(id)).Return([]interface{}{"ipfs://meta"}, nil).Once()
	s.webResource.On("GetJson", mock.Anything, gateway+"meta").Return([]byte(doc), nil).Once()
}

func (s *ownershipSuite) TestDownload() {
	s.expectOwnedToken(5, `{"name":"Sunset","image":"ipfs://img"}`)
	s.webResource.On("Get", mock.Anything, gateway+"img").Return(pngData, nil).Once()

	res, err := New(s.cfg).Download(mockCtx, wallet, "5")
	s.Require().NoError(err)
	s.Equal("NFT-5-Sunset.png", res.Filename)
	s.Equal("image/png", res.ContentType)
	s.Equal(pngData, res.Data)
	s.Empty(res.ArchiveUrl)
}

func (s *ownershipSuite) TestDownloadDefaults() {
	s.expectOwnedToken(6, `{"image":"ipfs://img"}`)
	s.webResource.On("Get", mock.Anything, gateway+"img").Return([]byte{0x00, 0x01, 0x02}, nil).Once()

	res, err := New(s.cfg).Download(mockCtx, wallet, "6")
	s.Require().NoError(err)
	s.Equal("NFT-6-image.png", res.Filename)
}

func (s *ownershipSuite) TestDownloadArchives() {
	s.cfg.Archive = true
	s.expectOwnedToken(5, `{"name":"Sunset","image":"ipfs://img"}`)
	s.webResource.On("Get", mock.Anything, gateway+"img").Return(pngData, nil).Once()
	s.webResource.On("Archive", mock.Anything, "downloads/NFT-5-Sunset.png", pngData, "image/png").Return("https://storage.googleapis.com/b/downloads/NFT-5-Sunset.png", nil).Once()

	res, err := New(s.cfg).Download(mockCtx, wallet, "5")
	s.Require().NoError(err)
	s.Equal("https://storage.googleapis.com/b/downloads/NFT-5-Sunset.png", res.ArchiveUrl)
}

func (s *ownershipSuite) TestDownloadNotOwned() {
	s.provider.On("ContractAddress", mock.Anything).Return(contractAddr, nil).Once()
	s.onCall("ownerOf", tokenIs(5)).Return([]interface{}{stranger}, nil).Once()

	_, err := New(s.cfg).Download(mockCtx, wallet, "5")
	s.ErrorIs(err, domain.ErrPrecondition)

	_, err = New(s.cfg).Download(mockCtx, wallet, "five")
	s.ErrorIs(err, domain.ErrValidation)
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Sunset", "NFT-1-Sunset.gif"},
		{"", "NFT-1-image.gif"},
		{"  ", "NFT-1-image.gif"},
		{"a/b:c", "NFT-1-a_b_c.gif"},
	}
	for _, tt := range tests {
		if got := Filename("1", tt.name, ".gif"); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

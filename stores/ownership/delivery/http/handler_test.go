package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
	"github.com/Beat1ngHeart/Custom-NFT/domain/mocks"
	"github.com/Beat1ngHeart/Custom-NFT/domain/ownership"
)

var wallet = domain.Address("0x020ca66c30bec2c4fe3861a94e4db4a498a35872")

type handlerSuite struct {
	suite.Suite

	e  *echo.Echo
	uc *mocks.OwnershipUseCase
}

func (s *handlerSuite) SetupTest() {
	s.e = echo.New()
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	s.uc = mocks.NewOwnershipUseCase(s.T())
	New(s.e, s.uc)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (s *handlerSuite) TestListOwned() {
	s.uc.On("ResolveWallet", mock.Anything, "machibigbrother.eth").Return(wallet, nil).Once()
	s.uc.On("ScanOwned", mock.Anything, wallet).Return([]*ownership.OwnedNft{
		{TokenId: "0", TokenUri: "ipfs://meta0", Metadata: &domain.MetadataDocument{Name: "Zero"}},
	}, nil).Once()

	rec := s.get("/owners/machibigbrother.eth/nfts")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"tokenId":"0"`)
	s.Contains(rec.Body.String(), `"name":"Zero"`)
}

func (s *handlerSuite) TestListOwnedErrors() {
	s.uc.On("ResolveWallet", mock.Anything, "nobody").Return(domain.Address(""), domain.NewValidationError("unknown")).Once()
	s.Equal(http.StatusBadRequest, s.get("/owners/nobody/nfts").Code)

	s.uc.On("ResolveWallet", mock.Anything, string(wallet)).Return(wallet, nil).Once()
	s.uc.On("ScanOwned", mock.Anything, wallet).Return(nil, domain.NewPreconditionError("contract address is not configured")).Once()
	s.Equal(http.StatusPreconditionFailed, s.get("/owners/"+string(wallet)+"/nfts").Code)
}

func (s *handlerSuite) TestDownload() {
	data := []byte("\x89PNG\r\n\x1a\n")
	s.uc.On("ResolveWallet", mock.Anything, string(wallet)).Return(wallet, nil).Once()
	s.uc.On("Download", mock.Anything, wallet, domain.TokenId("5")).Return(&ownership.Download{
		Filename:    "NFT-5-Sunset.png",
		ContentType: "image/png",
		Data:        data,
	}, nil).Once()

	rec := s.get("/owners/" + string(wallet) + "/nfts/5/image")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("image/png", rec.Header().Get(echo.HeaderContentType))
	s.Equal(`attachment; filename="NFT-5-Sunset.png"`, rec.Header().Get(echo.HeaderContentDisposition))
	s.Equal(data, rec.Body.Bytes())
}

func (s *handlerSuite) TestDownloadFailure() {
	s.uc.On("ResolveWallet", mock.Anything, string(wallet)).Return(wallet, nil).Once()
	s.uc.On("Download", mock.Anything, wallet, domain.TokenId("5")).Return(nil, errors.New("gateway timeout")).Once()

	rec := s.get("/owners/" + string(wallet) + "/nfts/5/image")
	s.Equal(http.StatusInternalServerError, rec.Code)
}

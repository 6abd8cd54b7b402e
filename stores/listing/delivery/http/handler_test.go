package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/validator"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
	"github.com/Beat1ngHeart/Custom-NFT/domain/listing"
	"github.com/Beat1ngHeart/Custom-NFT/domain/mocks"
)

// 1x1 png
const pngDataUri = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg=="

type handlerSuite struct {
	suite.Suite

	e  *echo.Echo
	uc *mocks.ListingUseCase
}

func (s *handlerSuite) SetupTest() {
	s.e = echo.New()
	s.e.Validator = validator.NewCustomValidator(govalidator.New())
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	s.uc = mocks.NewListingUseCase(s.T())
	New(s.e, s.uc)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *handlerSuite) TestList() {
	s.uc.On("List", mock.Anything).Return([]*listing.Listing{{Id: "a", Price: decimal.NewFromInt(1)}}, nil).Once()

	rec := s.do(http.MethodGet, "/listings", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"id":"a"`)
	s.Contains(rec.Body.String(), `"status":"success"`)
}

func (s *handlerSuite) TestGetNotFound() {
	s.uc.On("GetListing", mock.Anything, listing.Id("nope")).Return(nil, domain.ErrNotFound).Once()

	rec := s.do(http.MethodGet, "/listings/nope", "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *handlerSuite) TestCreate() {
	s.uc.On("CreateListing", mock.Anything, mock.MatchedBy(func(p listing.CreateParams) bool {
		return p.Price.Equal(decimal.RequireFromString("0.001")) &&
			p.Pin &&
			p.Name == "Cat" &&
			len(p.Asset) > 0 &&
			len(p.Attributes) == 1 && p.Attributes[0].TraitType == "Color"
	})).Return(&listing.Listing{Id: "new"}, nil).Once()

	rec := s.do(http.MethodPost, "/listings", `{"image":"`+pngDataUri+`","price":"0.001","name":"Cat","attributes":[{"trait_type":"Color","value":"Red"}]}`)
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), `"id":"new"`)
}

func (s *handlerSuite) TestCreatePinOptOut() {
	s.uc.On("CreateListing", mock.Anything, mock.MatchedBy(func(p listing.CreateParams) bool {
		return !p.Pin
	})).Return(&listing.Listing{Id: "new"}, nil).Once()

	rec := s.do(http.MethodPost, "/listings", `{"image":"`+pngDataUri+`","price":"1","pin":false}`)
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *handlerSuite) TestCreateBadRequest() {
	for _, body := range []string{
		`{"image":"` + pngDataUri + `","price":"0"}`,
		`{"image":"` + pngDataUri + `","price":"-1"}`,
		`{"image":"` + pngDataUri + `"}`,
		`{"image":"not a data uri","price":"1"}`,
		`{"price":"1"}`,
		`{`,
	} {
		rec := s.do(http.MethodPost, "/listings", body)
		s.Equal(http.StatusBadRequest, rec.Code, body)
	}
}

func (s *handlerSuite) TestCreateValidationFromUseCase() {
	s.uc.On("CreateListing", mock.Anything, mock.Anything).Return(nil, domain.NewValidationError("unsupported asset type text/plain")).Once()

	rec := s.do(http.MethodPost, "/listings", `{"image":"data:,hello","price":"1"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "unsupported asset type")
}

func (s *handlerSuite) TestPurchase() {
	s.uc.On("RemoveListing", mock.Anything, listing.Id("a")).Return(nil).Once()
	s.uc.On("RemoveListing", mock.Anything, listing.Id("b")).Return(errors.New("redis down")).Once()

	s.Equal(http.StatusOK, s.do(http.MethodPost, "/listings/a/purchase", "").Code)
	s.Equal(http.StatusInternalServerError, s.do(http.MethodPost, "/listings/b/purchase", "").Code)
}

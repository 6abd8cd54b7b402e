package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/datauri"
	"github.com/Beat1ngHeart/Custom-NFT/base/delivery"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
	"github.com/Beat1ngHeart/Custom-NFT/domain/listing"
)

type handler struct {
	listingUseCase listing.UseCase
}

func New(e *echo.Echo, listingUseCase listing.UseCase) {
	h := &handler{listingUseCase}

	gs := e.Group("/listings")
	gs.GET("", h.list)
	gs.POST("", h.create)

	g := e.Group("/listings/:id")
	g.GET("", h.get)
	g.POST("/purchase", h.purchase)
}

// list
//
//	@Summary		List listings
//	@Description	All listings currently for sale, in creation order
//	@Tags			listings
//	@Produce		json
//	@Success		200	{object}	object{status=string,data=[]listing.Listing}
//	@Failure		500
//	@Router			/listings [get]
func (h *handler) list(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.listingUseCase.List(ctx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// get
//
//	@Summary		Get listing
//	@Tags			listings
//	@Produce		json
//	@Param			id	path		string	true	"listing id"
//	@Success		200	{object}	object{status=string,data=listing.Listing}
//	@Failure		404
//	@Failure		500
//	@Router			/listings/{id} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.listingUseCase.GetListing(ctx, listing.Id(c.Param("id")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// create
//
//	@Summary		Create listing
//	@Description	Stores the image, pins it and its metadata document unless pin is false
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.create.params	true	"listing"
//	@Success		201		{object}	object{status=string,data=listing.Listing}
//	@Failure		400
//	@Failure		500
//	@Router			/listings [post]
func (h *handler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		// image as a data uri, e.g. data:image/png;base64,...
		Image       string             `json:"image" validate:"required"`
		Price       string             `json:"price" validate:"required,positive_decimal"`
		Name        string             `json:"name"`
		Description string             `json:"description"`
		Attributes  []domain.Attribute `json:"attributes"`
		// Pin defaults to true
		Pin         *bool              `json:"pin"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	asset, _, err := datauri.Decode(p.Image)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewValidationError(err.Error()))
	}
	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewValidationError(err.Error()))
	}

	pin := true
	if p.Pin != nil {
		pin = *p.Pin
	}

	res, err := h.listingUseCase.CreateListing(ctx, listing.CreateParams{
		Asset:       asset,
		Price:       price,
		Name:        p.Name,
		Description: p.Description,
		Attributes:  p.Attributes,
		Pin:         pin,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// purchase
//
//	@Summary		Purchase listing
//	@Description	Marks the listing sold and removes it, unknown ids are a no-op
//	@Tags			listings
//	@Produce		json
//	@Param			id	path	string	true	"listing id"
//	@Success		200
//	@Failure		500
//	@Router			/listings/{id}/purchase [post]
func (h *handler) purchase(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.listingUseCase.RemoveListing(ctx, listing.Id(c.Param("id"))); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/delivery"
	"github.com/Beat1ngHeart/Custom-NFT/domain/listing"
	"github.com/Beat1ngHeart/Custom-NFT/domain/mint"
)

type handler struct {
	mintUseCase mint.UseCase
}

type recordResp struct {
	*mint.Record
	Degraded bool `json:"degraded"`
}

func toResp(r *mint.Record) *recordResp {
	return &recordResp{r, r.Degraded()}
}

func New(e *echo.Echo, mintUseCase mint.UseCase) {
	h := &handler{mintUseCase}

	g := e.Group("/listings/:id")
	g.POST("/mint", h.mint)
	g.GET("/mint", h.status)
	g.POST("/wallet", h.addToWallet)
}

// mint
//
//	@Summary		Mint listing
//	@Description	Submits the mint transaction and returns once it is sent, poll GET /listings/{id}/mint for the outcome
//	@Tags			mint
//	@Produce		json
//	@Param			id	path		string	true	"listing id"
//	@Success		202	{object}	object{status=string,data=http.recordResp}
//	@Failure		409
//	@Failure		412
//	@Failure		502
//	@Router			/listings/{id}/mint [post]
func (h *handler) mint(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.mintUseCase.MintAsync(ctx, listing.Id(c.Param("id")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusAccepted, toResp(res))
}

// status
//
//	@Summary	Get mint status
//	@Tags		mint
//	@Produce	json
//	@Param		id	path		string	true	"listing id"
//	@Success	200	{object}	object{status=string,data=http.recordResp}
//	@Failure	404
//	@Router		/listings/{id}/mint [get]
func (h *handler) status(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.mintUseCase.Status(ctx, listing.Id(c.Param("id")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, toResp(res))
}

// addToWallet
//
//	@Summary		Add minted token to wallet
//	@Description	Switches the wallet to the configured network if needed and asks it to watch the token
//	@Tags			mint
//	@Produce		json
//	@Param			id	path	string	true	"listing id"
//	@Success		200
//	@Failure		412
//	@Failure		502
//	@Router			/listings/{id}/wallet [post]
func (h *handler) addToWallet(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.mintUseCase.AddToWallet(ctx, listing.Id(c.Param("id"))); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

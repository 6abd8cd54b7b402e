package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/delivery"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
	"github.com/Beat1ngHeart/Custom-NFT/domain/ownership"
)

type handler struct {
	ownershipUseCase ownership.UseCase
}

// New registers the routes, scanMiddlewares only wrap the owned nft listing
func New(e *echo.Echo, ownershipUseCase ownership.UseCase, scanMiddlewares ...echo.MiddlewareFunc) {
	h := &handler{ownershipUseCase}

	g := e.Group("/owners/:owner")
	g.GET("/nfts", h.listOwned, scanMiddlewares...)
	g.GET("/nfts/:tokenId/image", h.download)
}

// listOwned
//
//	@Summary		List owned NFTs
//	@Description	Scans every minted token and returns those held by owner, unreadable tokens are skipped
//	@Tags			owners
//	@Produce		json
//	@Param			owner	path		string	true	"wallet address or ens name"	example(0x020ca66c30bec2c4fe3861a94e4db4a498a35872)
//	@Success		200		{object}	object{status=string,data=[]ownership.OwnedNft}
//	@Failure		400
//	@Failure		412
//	@Failure		500
//	@Router			/owners/{owner}/nfts [get]
func (h *handler) listOwned(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	wallet, err := h.ownershipUseCase.ResolveWallet(ctx, c.Param("owner"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res, err := h.ownershipUseCase.ScanOwned(ctx, wallet)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// download
//
//	@Summary	Download NFT image
//	@Tags		owners
//	@Produce	octet-stream
//	@Param		owner	path		string	true	"wallet address or ens name"
//	@Param		tokenId	path		string	true	"token id"	example(7)
//	@Success	200		{file}	binary
//	@Failure	400
//	@Failure	412
//	@Router		/owners/{owner}/nfts/{tokenId}/image [get]
func (h *handler) download(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	wallet, err := h.ownershipUseCase.ResolveWallet(ctx, c.Param("owner"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	res, err := h.ownershipUseCase.Download(ctx, wallet, domain.TokenId(c.Param("tokenId")))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", res.Filename))
	return c.Blob(http.StatusOK, res.ContentType, res.Data)
}

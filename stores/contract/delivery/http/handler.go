package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/delivery"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
	"github.com/Beat1ngHeart/Custom-NFT/domain/contract"
)

type handler struct {
	contractUseCase contract.UseCase
}

func New(e *echo.Echo, contractUseCase contract.UseCase) {
	h := &handler{contractUseCase}

	g := e.Group("/contract")
	g.GET("", h.get)
	g.POST("/deploy", h.deploy)
}

// get
//
//	@Summary	Get contract address
//	@Tags		contract
//	@Produce	json
//	@Success	200	{object}	object{status=string,data=object{address=string}}
//	@Failure	412
//	@Router		/contract [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	addr, err := h.contractUseCase.ContractAddress(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, domain.NewPreconditionError("no contract deployed or configured"))
	} else if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]domain.Address{"address": addr})
}

// deploy
//
//	@Summary		Deploy contract
//	@Description	Sends the creation transaction, waits for the receipt and stores the new address
//	@Tags			contract
//	@Accept			json
//	@Produce		json
//	@Param			params	body		http.deploy.params	true	"creation bytecode"
//	@Success		201		{object}	object{status=string,data=contract.Deployment}
//	@Failure		400
//	@Failure		502
//	@Router			/contract/deploy [post]
func (h *handler) deploy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Bytecode string `json:"bytecode" validate:"required,bytecode"`
	}

	p := params{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.contractUseCase.Deploy(ctx, p.Bytecode)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

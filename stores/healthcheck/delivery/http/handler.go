package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	hcdomain "github.com/Beat1ngHeart/Custom-NFT/domain/healthcheck"
)

type healthResp struct {
	Healthy string          `json:"healthy"`
	Checks  hcdomain.Report `json:"checks"`
}

type healthCheckHandler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	handler := &healthCheckHandler{
		healthCheck: us,
	}
	e.GET("/health", handler.check)
}

// check
//
//	@Summary	Health check
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	http.healthResp
//	@Failure	503	{object}	http.healthResp
//	@Router		/health [get]
func (h *healthCheckHandler) check(c echo.Context) error {
	context := c.Get("ctx").(ctx.Ctx)
	report := h.healthCheck.Check(context)
	if !report.Healthy() {
		return c.JSON(http.StatusServiceUnavailable, healthResp{"fail", report})
	}
	return c.JSON(http.StatusOK, healthResp{"ok", report})
}

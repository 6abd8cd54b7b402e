package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Beat1ngHeart/Custom-NFT/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

var kindStatus = map[error]int{
	domain.ErrValidation:        http.StatusBadRequest,
	domain.ErrPrecondition:      http.StatusPreconditionFailed,
	domain.ErrAlreadyInProgress: http.StatusConflict,
	domain.ErrParse:             http.StatusUnprocessableEntity,
	domain.ErrPinning:           http.StatusBadGateway,
	domain.ErrChainSubmission:   http.StatusBadGateway,
	domain.ErrChainConfirmation: http.StatusBadGateway,
}

// StatusOf maps an error to the http status it's reported with, status is used when nothing matches.
// The pipeline kind wins over whatever its cause wraps.
func StatusOf(err error, status int) int {
	if s, ok := kindStatus[domain.KindOf(err)]; ok {
		return s
	}
	if errors.Is(err, domain.ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, domain.ErrBadParamInput) {
		return http.StatusBadRequest
	}
	return status
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = StatusOf(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
	"github.com/Beat1ngHeart/Custom-NFT/base/metrics"
)

// GoMiddleware represent the data-struct for middleware
type GoMiddleware struct{}

// InitMiddleware initialize the middleware
func InitMiddleware() *GoMiddleware {
	return &GoMiddleware{}
}

// CORS lets the storefront call the api from any origin
func (m *GoMiddleware) CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderAccessControlAllowOrigin, "*")
		if c.Request().Method == http.MethodOptions {
			c.Response().Header().Set(echo.HeaderAccessControlAllowMethods, "GET, POST, OPTIONS")
			c.Response().Header().Set(echo.HeaderAccessControlAllowHeaders, echo.HeaderContentType)
			return c.NoContent(http.StatusNoContent)
		}
		return next(c)
	}
}

// AddContext puts a ctx.Ctx carrying the request id under "ctx"
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			cont := ctx.WithValue(ctx.Background(), "requestID", c.Response().Header().Get(echo.HeaderXRequestID))
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// ResponseLogger writes one line per request, failed requests carry the handler error
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	met := metrics.New("http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req, res := c.Request(), c.Response()
			met.BumpTime("request.time", "method", req.Method, "path", c.Path()).End()
			met.BumpSum("request.count", 1, "path", c.Path(), "status", strconv.Itoa(res.Status))

			fields := log.Fields{
				"ms":         float64(time.Since(start).Microseconds()) / 1000,
				"httpStatus": res.Status,
				"httpMethod": req.Method,
				"uri":        req.URL.Path,
				"route":      c.Path(),
				"remoteIP":   c.RealIP(),
				"size":       res.Size,
				"userAgent":  req.UserAgent(),
			}
			for _, name := range []string{"owner", "id", "tokenId"} {
				if v := c.Param(name); v != "" {
					fields[name] = v
				}
			}

			lc, ok := c.Get("ctx").(ctx.Ctx)
			if !ok {
				lc = ctx.Background()
			}
			l := lc.WithFields(fields)
			switch {
			case res.Status >= http.StatusInternalServerError:
				l.WithField("nextErr", err).Error("response")
			case res.Status >= http.StatusBadRequest:
				l.WithField("nextErr", err).Warn("response")
			default:
				l.Info("response")
			}
			return nil
		}
	}
}

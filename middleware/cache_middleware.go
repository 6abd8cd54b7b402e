package middleware

import (
	"bytes"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
	"github.com/Beat1ngHeart/Custom-NFT/service/cache"
	"github.com/Beat1ngHeart/Custom-NFT/service/cache/provider"
)

const (
	cacheMiddlewarePfx = "httpCacheMiddleware"

	HeaderXCache = "X-Cache"
)

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// teeWriter copies everything the handler writes into buf
type teeWriter struct {
	http.ResponseWriter
	buf bytes.Buffer
}

func (w *teeWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// requestKey is the path plus the query with keys and values sorted,
// so ?b=2&a=1 and ?a=1&b=2 share an entry
func requestKey(r *http.Request) string {
	q := r.URL.Query()
	for _, vs := range q {
		sort.Strings(vs)
	}
	return r.URL.Path + "?" + q.Encode()
}

// CacheHttp serves repeated GETs of the same url from cacheProvider for ttl.
// Only responses below 400 are kept.
func CacheHttp(cacheProvider provider.Provider, ttl time.Duration) echo.MiddlewareFunc {
	responses := cache.New(cache.ServiceConfig{
		Ttl:   ttl,
		Pfx:   cacheMiddlewarePfx,
		Cache: cacheProvider,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			bc := c.Get("ctx").(ctx.Ctx)
			key := requestKey(c.Request())

			hit := cachedResponse{}
			if err := responses.Get(bc, key, &hit); err == nil {
				c.Response().Header().Set(HeaderXCache, "HIT")
				return c.Blob(hit.Status, hit.ContentType, hit.Body)
			} else if err != cache.ErrNotFound {
				bc.WithFields(log.Fields{"err": err, "key": key}).Warn("cached response unreadable")
			}

			tee := &teeWriter{ResponseWriter: c.Response().Writer}
			c.Response().Writer = tee
			c.Response().Header().Set(HeaderXCache, "MISS")
			if err := next(c); err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			if status >= http.StatusBadRequest {
				return nil
			}
			miss := cachedResponse{
				Status:      status,
				ContentType: c.Response().Header().Get(echo.HeaderContentType),
				Body:        tee.buf.Bytes(),
			}
			if err := responses.Set(bc, key, &miss); err != nil {
				bc.WithFields(log.Fields{"err": err, "key": key}).Warn("response not cached")
			}
			return nil
		}
	}
}

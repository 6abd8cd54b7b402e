package repository

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	bCtx "github.com/Beat1ngHeart/Custom-NFT/base/ctx"
)

func Test_httpReaderRepo_Get(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			w.Write([]byte(r.Header.Get("User-Agent")))
		case "/slow":
			time.Sleep(100 * time.Millisecond)
			w.Write([]byte("late"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	r := NewHttpReaderRepo(srv.Client(), 50*time.Millisecond, map[string]string{"User-Agent": "nft-api"})
	ctx := bCtx.Background()

	t.Run("ok", func(t *testing.T) {
		b, err := r.Get(ctx, srv.URL+"/ok")
		require.NoError(t, err)
		require.Equal(t, "nft-api", string(b))
	})

	t.Run("status", func(t *testing.T) {
		_, err := r.Get(ctx, srv.URL+"/missing")
		require.ErrorIs(t, err, ErrBadStatus)
	})

	t.Run("timeout", func(t *testing.T) {
		_, err := r.Get(ctx, srv.URL+"/slow")
		require.Error(t, err)
	})
}

package pinata

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
)

func signedJwt(t *testing.T, exp time.Time) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": exp.Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func TestNew(t *testing.T) {
	req := require.New(t)

	_, err := New(Config{})
	req.ErrorIs(err, ErrNoCredentials)

	_, err = New(Config{ApiKey: "key"})
	req.ErrorIs(err, ErrNoCredentials)

	_, err = New(Config{Jwt: "not-a-jwt"})
	req.ErrorIs(err, ErrInvalidJwt)

	_, err = New(Config{Jwt: signedJwt(t, time.Now().Add(-time.Hour))})
	req.ErrorIs(err, ErrJwtExpired)

	_, err = New(Config{Jwt: signedJwt(t, time.Now().Add(time.Hour))})
	req.NoError(err)

	_, err = New(Config{ApiKey: "key", ApiSecret: "secret"})
	req.NoError(err)
}

func TestPinWithApiKey(t *testing.T) {
	req := require.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal(pinPath, r.URL.Path)
		req.Equal("key", r.Header.Get("pinata_api_key"))
		req.Equal("secret", r.Header.Get("pinata_secret_api_key"))
		req.Empty(r.Header.Get("Authorization"))

		file, header, err := r.FormFile("file")
		req.NoError(err)
		req.Equal("file.png", header.Filename)
		data, _ := io.ReadAll(file)
		req.Equal("image-bytes", string(data))
		req.JSONEq(`{"name":"cat"}`, r.FormValue("pinataMetadata"))

		w.Write([]byte(`{"IpfsHash":"abc123","PinSize":11}`))
	}))
	defer srv.Close()

	svc, err := New(Config{ApiKey: "key", ApiSecret: "secret", Endpoint: srv.URL})
	req.NoError(err)

	hash, err := svc.Pin(ctx.Background(), strings.NewReader("image-bytes"), "png", WithMetadata(PinataMetadata{Name: "cat"}))
	req.NoError(err)
	req.Equal("abc123", hash)
}

func TestPinJsonWithJwt(t *testing.T) {
	req := require.New(t)
	token := signedJwt(t, time.Now().Add(time.Hour))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req.Equal(pinJsonPath, r.URL.Path)
		req.Equal("Bearer "+token, r.Header.Get("Authorization"))
		req.Empty(r.Header.Get("pinata_api_key"))

		body := map[string]json.RawMessage{}
		req.NoError(json.NewDecoder(r.Body).Decode(&body))
		req.JSONEq(`{"name":"Untitled"}`, string(body["pinataContent"]))
		req.JSONEq(`{"name":"listing-metadata"}`, string(body["pinataMetadata"]))

		w.Write([]byte(`{"IpfsHash":"QmMeta"}`))
	}))
	defer srv.Close()

	svc, err := New(Config{Jwt: token, Endpoint: srv.URL})
	req.NoError(err)

	ref, err := NewPinningClient(svc, "https://gw.example/ipfs/").UploadJson(ctx.Background(), "listing-metadata", map[string]string{"name": "Untitled"})
	req.NoError(err)
	req.Equal(&domain.ContentRef{Cid: "QmMeta", Url: "https://gw.example/ipfs/QmMeta"}, ref)
}

func TestPinFailures(t *testing.T) {
	tests := []struct {
		desc    string
		status  int
		body    string
		wantErr error
	}{
		{desc: "unauthorized", status: http.StatusUnauthorized, body: `{"error":"Invalid API Key"}`, wantErr: ErrRequestFailed},
		{desc: "empty hash", status: http.StatusOK, body: `{}`, wantErr: ErrEmptyIpfsHash},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			req := require.New(t)
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			svc, err := New(Config{ApiKey: "key", ApiSecret: "secret", Endpoint: srv.URL})
			req.NoError(err)

			_, err = NewPinningClient(svc, "").UploadBytes(ctx.Background(), []byte("x"), "png")
			req.True(errors.Is(err, tt.wantErr))
			if tt.status != http.StatusOK {
				req.Contains(err.Error(), "Invalid API Key")
			}
		})
	}
}

package ipfs

import (
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/stretchr/testify/require"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
)

type fakeNode struct {
	added  []string
	pinned []string
	failOn string
}

func (n *fakeNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch r.URL.Path {
	case "/api/v0/add":
		if n.failOn == "add" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"Message":"add failed","Code":0,"Type":"error"}`))
			return
		}
		reader, err := r.MultipartReader()
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		part, err := reader.NextPart()
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		b, _ := ioutil.ReadAll(part)
		n.added = append(n.added, string(b))
		w.Write([]byte(`{"Name":"QmAdded","Hash":"QmAdded","Size":"4"}`))
	case "/api/v0/pin/add":
		if n.failOn == "pin" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"Message":"pin failed","Code":0,"Type":"error"}`))
			return
		}
		n.pinned = append(n.pinned, r.URL.Query().Get("arg"))
		w.Write([]byte(`{"Pins":["QmAdded"]}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func TestUploadBytesAddsThenPins(t *testing.T) {
	req := require.New(t)
	node := &fakeNode{}
	srv := httptest.NewServer(node)
	defer srv.Close()

	p := NewPinningClient(ipfsapi.NewShell(srv.URL), "")
	ref, err := p.UploadBytes(ctx.Background(), []byte("data"), "png")
	req.NoError(err)
	req.Equal(&domain.ContentRef{Cid: "QmAdded", Url: "https://gateway.pinata.cloud/ipfs/QmAdded"}, ref)
	req.Equal([]string{"data"}, node.added)
	req.Equal([]string{"QmAdded"}, node.pinned)
}

func TestUploadJson(t *testing.T) {
	req := require.New(t)
	node := &fakeNode{}
	srv := httptest.NewServer(node)
	defer srv.Close()

	p := NewPinningClient(ipfsapi.NewShell(srv.URL), "https://ipfs.io/ipfs/")
	ref, err := p.UploadJson(ctx.Background(), "doc", map[string]string{"name": "Untitled"})
	req.NoError(err)
	req.Equal("https://ipfs.io/ipfs/QmAdded", ref.Url)
	req.Equal([]string{`{"name":"Untitled"}`}, node.added)
}

func TestUploadFailures(t *testing.T) {
	for _, step := range []string{"add", "pin"} {
		t.Run(step, func(t *testing.T) {
			node := &fakeNode{failOn: step}
			srv := httptest.NewServer(node)
			defer srv.Close()

			p := NewPinningClient(ipfsapi.NewShell(srv.URL), "")
			_, err := p.UploadBytes(ctx.Background(), []byte("data"), "png")
			require.Error(t, err)
			require.True(t, strings.Contains(err.Error(), step+" failed"), err.Error())
		})
	}
}

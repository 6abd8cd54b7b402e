package pinata

import (
	"bytes"

	"golang.org/x/xerrors"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/ipfsuri"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
)

type pinningClient struct {
	svc     Service
	gateway string
}

// NewPinningClient exposes svc as a domain.PinningClient, urls are built on gateway
func NewPinningClient(svc Service, gateway string) domain.PinningClient {
	return &pinningClient{svc: svc, gateway: gateway}
}

func (p *pinningClient) UploadBytes(c ctx.Ctx, payload []byte, ext string) (*domain.ContentRef, error) {
	hash, err := p.svc.Pin(c, bytes.NewReader(payload), ext)
	if err != nil {
		return nil, xerrors.Errorf("pinata pin file: %w", err)
	}
	return p.ref(hash), nil
}

func (p *pinningClient) UploadJson(c ctx.Ctx, name string, doc interface{}) (*domain.ContentRef, error) {
	opts := []Options{}
	if len(name) > 0 {
		opts = append(opts, WithMetadata(PinataMetadata{Name: name}))
	}
	hash, err := p.svc.PinJson(c, doc, opts...)
	if err != nil {
		return nil, xerrors.Errorf("pinata pin json: %w", err)
	}
	return p.ref(hash), nil
}

func (p *pinningClient) ref(hash string) *domain.ContentRef {
	return &domain.ContentRef{
		Cid: domain.Cid(hash),
		Url: ipfsuri.GatewayUrl(p.gateway, hash),
	}
}

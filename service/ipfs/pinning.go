package ipfs

import (
	"bytes"
	"encoding/json"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"golang.org/x/xerrors"

	"github.com/Beat1ngHeart/Custom-NFT/base/ctx"
	"github.com/Beat1ngHeart/Custom-NFT/base/ipfsuri"
	"github.com/Beat1ngHeart/Custom-NFT/base/log"
	"github.com/Beat1ngHeart/Custom-NFT/domain"
)

type nodePinningClient struct {
	shell   *ipfsapi.Shell
	gateway string
}

// NewPinningClient pins through an ipfs node http api. It's used when no pinata credentials are given.
func NewPinningClient(shell *ipfsapi.Shell, gateway string) domain.PinningClient {
	return &nodePinningClient{shell: shell, gateway: gateway}
}

func (p *nodePinningClient) UploadBytes(c ctx.Ctx, payload []byte, ext string) (*domain.ContentRef, error) {
	return p.addAndPin(c, payload)
}

func (p *nodePinningClient) UploadJson(c ctx.Ctx, name string, doc interface{}) (*domain.ContentRef, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		c.WithFields(log.Fields{"err": err, "name": name}).Error("json.Marshal failed")
		return nil, err
	}
	return p.addAndPin(c, payload)
}

func (p *nodePinningClient) addAndPin(c ctx.Ctx, payload []byte) (*domain.ContentRef, error) {
	cid, err := p.shell.Add(bytes.NewReader(payload))
	if err != nil {
		c.WithField("err", err).Error("shell.Add failed")
		return nil, xerrors.Errorf("ipfs add: %w", err)
	}

	if err := p.shell.Pin(cid); err != nil {
		c.WithFields(log.Fields{"err": err, "cid": cid}).Error("shell.Pin failed")
		return nil, xerrors.Errorf("ipfs pin: %w", err)
	}

	return &domain.ContentRef{
		Cid: domain.Cid(cid),
		Url: ipfsuri.GatewayUrl(p.gateway, cid),
	}, nil
}
